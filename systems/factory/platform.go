package factory

import (
	"slices"

	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/automoto/charmove2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a solid platform that patrols its waypoints. A
// platform with a single waypoint stays put but still carries characters.
func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	surface := mustSpace(ecs).AddRect(p.X, p.Y, p.W, p.H, tags.ResolvSolid, tags.ResolvMovingPlatform)
	surface.Object().Data = platform
	components.Object.SetValue(platform, components.ObjectData{Surface: surface})

	data := components.PlatformData{
		Waypoints: slices.Clone(p.Waypoints),
		Speed:     p.Speed,
	}
	data.StartLeg(0)
	components.Platform.SetValue(platform, data)

	return platform
}
