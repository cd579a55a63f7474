package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/charmove2d/assets"
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/automoto/charmove2d/systems"
	"github.com/automoto/charmove2d/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SandboxScene is a level with one keyboard/gamepad driven character.
type SandboxScene struct {
	ecs       *ecs.ECS
	logger    *zap.Logger
	levelName string
	levels    map[string]*leveldata.Level
	names     []string
	once      sync.Once
	err       error
}

// NewSandboxScene creates the sandbox for the embedded level levelName.
// The scene is built on the first Update.
func NewSandboxScene(logger *zap.Logger, levelName string) *SandboxScene {
	return &SandboxScene{logger: logger, levelName: levelName}
}

func (s *SandboxScene) Update() error {
	s.once.Do(func() {
		s.err = s.configure()
	})
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()

	if name, ok := systems.NextLevelName(s.ecs); ok {
		return s.load(name)
	}
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// ECS returns the scene's world, or nil before the first Update.
func (s *SandboxScene) ECS() *ecs.ECS {
	return s.ecs
}

func (s *SandboxScene) configure() error {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}
	s.levels, s.names = levels, names
	return s.load(s.levelName)
}

// load replaces the world with a fresh one for the level called name.
func (s *SandboxScene) load(name string) error {
	e, err := NewSandboxECS(s.logger, s.levels, s.names, name)
	if err != nil {
		return err
	}
	s.ecs = e
	s.levelName = name
	return nil
}

// NewSandboxECS builds the world for the level called levelName: systems,
// renderers, level geometry, the character and the camera.
func NewSandboxECS(logger *zap.Logger, levels map[string]*leveldata.Level, names []string, levelName string) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.NewTuningSystem(logger))
	// Platforms move before characters so riders follow them this tick
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateCharacters)
	e.AddSystem(systems.UpdateEvents)
	e.AddSystem(systems.NewRespawnSystem(logger))
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.LayerWorld, systems.DrawLevel)
	e.AddRenderer(cfg.LayerWorld, systems.DrawCharacters)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)
	e.AddRenderer(cfg.LayerOverlay, systems.DrawHUD)

	levelEntry, err := factory.CreateLevel(e, levels, names, levelName)
	if err != nil {
		return nil, err
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level.Name != levelName {
		logger.Warn("level not found, using first level",
			zap.String("requested", levelName),
			zap.String("level", level.Name))
	}

	factory.BuildLevel(e, level)
	systems.SubscribeCharacterEvents(e.World, logger)

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("level %q: %w", level.Name, leveldata.ErrNoSpawn)
	}
	spawn := level.Spawns[0]
	character, err := factory.CreateCharacter(e, spawn, logger)
	if err != nil {
		return nil, err
	}
	systems.BridgeEvents(e.World, character)

	// Start on the spawn to prevent panning from (0,0)
	factory.CreateCamera(e, mgl64.Vec2{spawn.X, spawn.Y})

	logger.Info("sandbox ready",
		zap.String("level", level.Name),
		zap.Int("solids", len(level.Solids)),
		zap.Int("platforms", len(level.Platforms)))
	return e, nil
}
