package systems

import (
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/physics"
	"github.com/automoto/charmove2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// fallMargin is how far below the level a character may fall before it is
// sent back to its spawn.
const fallMargin = 5.0

var deadZoneLayers = []string{tags.ResolvDeadZone}

// NewRespawnSystem returns the system that sends characters back to their
// spawn when they touch a dead zone, fall out of the level or the player
// asks for it.
func NewRespawnSystem(logger *zap.Logger) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		spaceEntry, ok := components.Space.First(ecs.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)
		requested := GetAction(getOrCreateInput(ecs), cfg.ActionRespawn).JustPressed

		tags.Character.Each(ecs.World, func(e *donburi.Entry) {
			character := components.Character.Get(e)
			reason := respawnReason(space, character, requested)
			if reason == "" {
				return
			}
			respawn(character)
			logger.Info("character respawned",
				zap.Stringer("character", character.ID),
				zap.String("reason", reason),
				zap.Int("respawns", character.Respawns))
		})
	}
}

func respawnReason(space *physics.Space, character *components.CharacterData, requested bool) string {
	if requested {
		return "requested"
	}
	if _, hit := space.OverlapBox(character.Body.Bounds(), deadZoneLayers); hit {
		return "dead zone"
	}
	if character.Body.Position().Y() < -fallMargin {
		return "out of bounds"
	}
	return ""
}

func respawn(character *components.CharacterData) {
	character.Controller.Teleport(character.Spawn)
	character.Pose = cfg.Idle
	character.PoseHold = 0
	character.Respawns++
}
