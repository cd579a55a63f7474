package systems

import (
	"testing"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/automoto/charmove2d/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// testLevel is a 40x20 level with a floor, a pit covered by a dead zone
// and a platform shuttling between two points.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:     "test",
		Width:    40,
		Height:   20,
		TileSize: 16,
		Solids: []leveldata.SolidRect{
			{Rect: leveldata.Rect{X: 0, Y: 0, W: 20, H: 1}},
			{Rect: leveldata.Rect{X: 24, Y: 0, W: 16, H: 1}},
		},
		DeadZones: []leveldata.Rect{{X: 20, Y: 0, W: 4, H: 1}},
		Platforms: []leveldata.Platform{{
			Rect:      leveldata.Rect{X: 30, Y: 5, W: 3, H: 0.5},
			Name:      "shuttle",
			Speed:     2,
			Waypoints: []mgl64.Vec2{{30, 5}, {34, 5}},
		}},
		Spawns: []leveldata.SpawnPoint{{X: 5, Y: 1}},
	}
}

type testWorld struct {
	ecs       *ecs.ECS
	character *donburi.Entry
}

func (w testWorld) data() *components.CharacterData {
	return components.Character.Get(w.character)
}

func (w testWorld) input() *components.InputData {
	return getOrCreateInput(w.ecs)
}

// step runs the simulation systems that do not read devices.
func (w testWorld) step(frames int) {
	for i := 0; i < frames; i++ {
		UpdatePlatforms(w.ecs)
		UpdateCharacters(w.ecs)
		UpdateEvents(w.ecs)
		NewRespawnSystem(zap.NewNop())(w.ecs)
		UpdateEffects(w.ecs)
		UpdateCamera(w.ecs)
	}
}

// press sets an action as held this frame and released last frame.
func (w testWorld) press(action cfg.ActionID) {
	in := w.input()
	in.Previous[action] = false
	in.Current[action] = true
}

func (w testWorld) releaseAll() {
	in := w.input()
	in.Previous = in.Current
	for i := range in.Current {
		in.Current[i] = false
	}
}

func newTestWorld(t *testing.T) testWorld {
	t.Helper()
	return newTestWorldWith(t, testLevel())
}

func newTestWorldWith(t *testing.T, level *leveldata.Level) testWorld {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateLevel(e, map[string]*leveldata.Level{level.Name: level}, []string{level.Name}, level.Name)
	require.NoError(t, err)
	factory.BuildLevel(e, level)
	SubscribeCharacterEvents(e.World, zap.NewNop())

	character, err := factory.CreateCharacter(e, level.Spawns[0], zap.NewNop())
	require.NoError(t, err)
	BridgeEvents(e.World, character)
	factory.CreateCamera(e, mgl64.Vec2{level.Spawns[0].X, level.Spawns[0].Y})

	return testWorld{ecs: e, character: character}
}
