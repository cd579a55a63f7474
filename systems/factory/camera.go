package factory

import (
	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera centred on pos.
func CreateCamera(ecs *ecs.ECS, pos mgl64.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: pos})
}
