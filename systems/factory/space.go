package factory

import (
	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/physics"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the physics space covering level. Resolv objects
// are stored in the level's pixels.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	tileSize := level.TileSize
	if tileSize <= 0 {
		tileSize = cfg.Sandbox.TileSize
	}
	spaceData := physics.NewSpace(level.Width, level.Height, cfg.Sandbox.CellSize, tileSize)
	components.Space.Set(space, spaceData)
	return space
}

// mustSpace returns the space created by CreateSpace.
func mustSpace(ecs *ecs.ECS) *physics.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: space must be created before level geometry")
	}
	return components.Space.Get(spaceEntry)
}
