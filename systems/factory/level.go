package factory

import (
	"errors"
	"slices"

	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevels = errors.New("no levels loaded")

// CreateLevel creates the level entity and selects the level called name,
// or the first level when name is unknown.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.Level, names []string, name string) (*donburi.Entry, error) {
	if len(names) == 0 {
		return nil, ErrNoLevels
	}

	levelIndex := slices.Index(names, name)
	if levelIndex < 0 {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: levels[names[levelIndex]],
		LevelIndex:   levelIndex,
		Levels:       levels,
		Names:        names,
	})
	return level, nil
}

// BuildLevel creates the physics space and every piece of level geometry.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level) {
	CreateSpace(ecs, level)

	for _, solid := range level.Solids {
		if solid.SlopeType != "" {
			CreateSlopeWall(ecs, solid.X, solid.Y, solid.W, solid.H, solid.SlopeType)
		} else {
			CreateWall(ecs, solid.X, solid.Y, solid.W, solid.H)
		}
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, dz := range level.DeadZones {
		CreateDeadZone(ecs, dz.X, dz.Y, dz.W, dz.H)
	}
}
