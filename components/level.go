package components

import (
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       map[string]*leveldata.Level
	Names        []string // sorted level names
}

var Level = donburi.NewComponentType[LevelData]()
