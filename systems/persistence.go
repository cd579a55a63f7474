package systems

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/charmove2d/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const tuningKey = "tuning"

// itemStore is the part of gdata.Manager the sandbox uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var tuningStore itemStore

// InitPersistence opens the gdata store used for saved tuning.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "charmove2d",
	})
	if err != nil {
		return fmt.Errorf("open gdata: %w", err)
	}
	tuningStore = m
	return nil
}

// LoadTuning returns the saved controller tuning. ok is false when nothing
// has been saved or persistence is unavailable.
func LoadTuning() (tuning cfg.ControllerConfig, ok bool, err error) {
	if tuningStore == nil {
		return cfg.ControllerConfig{}, false, nil
	}

	data, err := tuningStore.LoadItem(tuningKey)
	if err != nil {
		return cfg.ControllerConfig{}, false, fmt.Errorf("load tuning: %w", err)
	}
	if len(data) == 0 {
		return cfg.ControllerConfig{}, false, nil
	}

	tuning, err = cfg.LoadYAML(bytes.NewReader(data))
	if err != nil {
		return cfg.ControllerConfig{}, false, fmt.Errorf("parse saved tuning: %w", err)
	}
	return tuning, true, nil
}

// SaveTuning stores tuning as YAML.
func SaveTuning(tuning cfg.ControllerConfig) error {
	if tuningStore == nil {
		return nil
	}

	data, err := tuning.ToYAML()
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := tuningStore.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

// NewTuningSystem returns the system saving cfg.Controller when the save
// action is pressed.
func NewTuningSystem(logger *zap.Logger) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if !GetAction(getOrCreateInput(ecs), cfg.ActionSaveTuning).JustPressed {
			return
		}
		if err := SaveTuning(cfg.Controller); err != nil {
			logger.Warn("could not save tuning", zap.Error(err))
			ShowStatus(ecs, "tuning not saved")
			return
		}
		logger.Info("tuning saved")
		ShowStatus(ecs, "tuning saved")
	}
}
