package systems

import (
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/yohamta/donburi/ecs"
)

// NextLevelName returns the level after the current one, wrapping around,
// when the next level action was pressed this frame.
func NextLevelName(ecs *ecs.ECS) (string, bool) {
	if !GetAction(getOrCreateInput(ecs), cfg.ActionNextLevel).JustPressed {
		return "", false
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return "", false
	}
	level := components.Level.Get(levelEntry)
	if len(level.Names) < 2 {
		return "", false
	}
	return level.Names[(level.LevelIndex+1)%len(level.Names)], true
}
