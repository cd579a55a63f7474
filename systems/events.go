package systems

import (
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/controller"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

const rechargeFlashFrames = 6

// CharacterEvent is a controller event republished on the world's event
// queue. Subscribers run when UpdateEvents drains the queue.
type CharacterEvent struct {
	Entry *donburi.Entry
	ID    uuid.UUID
	controller.Event
}

var CharacterEvents = events.NewEventType[CharacterEvent]()

// BridgeEvents forwards every event of the character's controller to
// CharacterEvents.
func BridgeEvents(w donburi.World, entry *donburi.Entry) {
	character := components.Character.Get(entry)
	for _, kind := range controller.EventKinds() {
		character.Controller.On(kind, func(e controller.Event) {
			CharacterEvents.Publish(w, CharacterEvent{Entry: entry, ID: character.ID, Event: e})
		})
	}
}

// SubscribeCharacterEvents registers the sandbox reactions to controller
// events: poses, squash/stretch, flashes, screen shake and debug logs.
func SubscribeCharacterEvents(w donburi.World, logger *zap.Logger) {
	CharacterEvents.Subscribe(w, onCharacterEvent)
	CharacterEvents.Subscribe(w, func(_ donburi.World, e CharacterEvent) {
		fields := []zap.Field{
			zap.Stringer("character", e.ID),
			zap.Stringer("event", e.Kind),
		}
		if e.Kind == controller.EventLedgeNudge {
			fields = append(fields, zap.Float64("direction", e.Direction.X()))
		}
		logger.Debug("character event", fields...)
	})
}

// UpdateEvents delivers the events queued this frame.
func UpdateEvents(ecs *ecs.ECS) {
	CharacterEvents.ProcessEvents(ecs.World)
}

func onCharacterEvent(w donburi.World, e CharacterEvent) {
	if !e.Entry.Valid() {
		return
	}
	character := components.Character.Get(e.Entry)
	ss := cfg.SquashStretch

	switch e.Kind {
	case controller.EventJump:
		holdPose(character, cfg.Jumping)
		TriggerSquashStretch(e.Entry, ss.JumpScaleX, ss.JumpScaleY)
	case controller.EventGrounded:
		TriggerSquashStretch(e.Entry, ss.LandScaleX, ss.LandScaleY)
	case controller.EventDash:
		holdPose(character, cfg.Dashing)
		TriggerSquashStretch(e.Entry, ss.DashScaleX, ss.DashScaleY)
		TriggerScreenShake(w, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeFrames)
	case controller.EventDashRecharged:
		TriggerFlash(e.Entry, rechargeFlashFrames)
	}
}
