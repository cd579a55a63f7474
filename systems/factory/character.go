package factory

import (
	"fmt"

	"github.com/automoto/charmove2d/archetypes"
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateCharacter places a character with its feet centred on spawn. The
// controller tuning is cfg.Controller with sensing geometry fitted to
// cfg.Sandbox.CharacterSize.
func CreateCharacter(ecs *ecs.ECS, spawn leveldata.SpawnPoint, logger *zap.Logger) (*donburi.Entry, error) {
	size := cfg.Sandbox.CharacterSize
	pos := mgl64.Vec2{spawn.X - size.X()/2, spawn.Y}

	space := mustSpace(ecs)
	body := space.NewBody(pos, size)

	id := uuid.New()
	tuning := cfg.Controller.WithAutoFit(size.Mul(0.5))
	ctrl, err := controller.New(tuning, body, space,
		controller.WithLogger(logger.With(zap.Stringer("character", id))))
	if err != nil {
		space.RemoveBody(body)
		return nil, fmt.Errorf("create character: %w", err)
	}

	character := archetypes.Character.Spawn(ecs)
	body.Object().Data = character

	components.Character.SetValue(character, components.CharacterData{
		ID:         id,
		Controller: ctrl,
		Body:       body,
		Spawn:      pos,
		Pose:       cfg.Idle,
	})

	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(character, components.FlashData{
		Duration: 0,
		R: 1, G: 1, B: 1,
	})

	return character, nil
}
