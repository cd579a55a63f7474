package factory

import (
	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	surface := mustSpace(ecs).AddRect(x, y, w, h, tags.ResolvSolid)
	surface.Object().Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Surface: surface})
	return wall
}

// CreateSlopeWall creates a 45 degree ramp tile. The bounds are
// rectangular; the physics space computes the surface from the slope tag.
func CreateSlopeWall(ecs *ecs.ECS, x, y, w, h float64, slopeType string) *donburi.Entry {
	ramp := archetypes.Ramp.Spawn(ecs)

	surface := mustSpace(ecs).AddRect(x, y, w, h, tags.ResolvRamp, slopeType)
	surface.Object().Data = ramp

	components.Object.SetValue(ramp, components.ObjectData{Surface: surface})
	return ramp
}
