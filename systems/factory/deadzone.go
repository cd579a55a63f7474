package factory

import (
	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible zone that respawns characters touching it
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	surface := mustSpace(ecs).AddRect(x, y, w, h, tags.ResolvDeadZone)
	surface.Object().Data = zone
	components.Object.SetValue(zone, components.ObjectData{Surface: surface})

	return zone
}
