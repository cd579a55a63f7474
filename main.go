package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/fonts"
	"github.com/automoto/charmove2d/logging"
	"github.com/automoto/charmove2d/scenes"
	"github.com/automoto/charmove2d/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(logger *zap.Logger) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(logger, config.Sandbox.Level),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Sandbox.Width, config.Sandbox.Height)
	return config.Sandbox.Width, config.Sandbox.Height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "controller tuning YAML file")
	flag.StringVar(&config.Sandbox.Level, "level", config.Sandbox.Level, "level name under assets/levels")
	flag.BoolVar(&config.Debug.DrawSensing, "debug", config.Debug.DrawSensing, "draw sensor boxes and rays")
	flag.BoolVar(&config.Debug.Verbose, "verbose", config.Debug.Verbose, "debug level logging")
	flag.Parse()

	logger, err := logging.New(config.Debug.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Saved tuning first, an explicit file wins
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, ok, err := systems.LoadTuning(); err != nil {
		logger.Warn("could not load saved tuning", zap.Error(err))
	} else if ok {
		config.Controller = saved
		logger.Info("loaded saved tuning")
	}
	if *configPath != "" {
		tuning, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		config.Controller = tuning
		logger.Info("loaded tuning file", zap.String("path", *configPath))
	}

	ebiten.SetWindowTitle("charmove2d")
	ebiten.SetWindowSize(config.Sandbox.Width, config.Sandbox.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sandbox.TickRate)

	return ebiten.RunGame(NewGame(logger))
}
