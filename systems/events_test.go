package systems

import (
	"testing"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func publish(w testWorld, kind controller.EventKind) {
	CharacterEvents.Publish(w.ecs.World, CharacterEvent{
		Entry: w.character,
		ID:    w.data().ID,
		Event: controller.Event{Kind: kind},
	})
	UpdateEvents(w.ecs)
}

func TestDashEventEffects(t *testing.T) {
	w := newTestWorld(t)

	publish(w, controller.EventDash)

	assert.Equal(t, cfg.Dashing, w.data().Pose)
	require.True(t, w.character.HasComponent(components.SquashStretch))
	ss := components.SquashStretch.Get(w.character)
	assert.Equal(t, cfg.SquashStretch.DashScaleX, ss.ScaleX)

	cameraEntry, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	assert.True(t, cameraEntry.HasComponent(components.ScreenShake))
}

func TestDashRechargedFlashes(t *testing.T) {
	w := newTestWorld(t)

	publish(w, controller.EventDashRecharged)
	assert.Equal(t, rechargeFlashFrames, components.Flash.Get(w.character).Duration)

	for i := 0; i < rechargeFlashFrames; i++ {
		UpdateEffects(w.ecs)
	}
	assert.Zero(t, components.Flash.Get(w.character).Duration)
}

func TestLandingSquashes(t *testing.T) {
	w := newTestWorld(t)

	publish(w, controller.EventGrounded)

	require.True(t, w.character.HasComponent(components.SquashStretch))
	sx, sy := squashStretchScale(w.character)
	assert.Equal(t, cfg.SquashStretch.LandScaleX, sx)
	assert.Equal(t, cfg.SquashStretch.LandScaleY, sy)
}

func TestSquashStretchSettles(t *testing.T) {
	w := newTestWorld(t)
	TriggerSquashStretch(w.character, 1.5, 0.5)

	for i := 0; i < 200; i++ {
		UpdateEffects(w.ecs)
	}

	assert.False(t, w.character.HasComponent(components.SquashStretch))
	sx, sy := squashStretchScale(w.character)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}

func TestBridgeForwardsControllerEvents(t *testing.T) {
	w := newTestWorld(t)

	var kinds []controller.EventKind
	CharacterEvents.Subscribe(w.ecs.World, func(_ donburi.World, e CharacterEvent) {
		kinds = append(kinds, e.Kind)
	})

	// Dropped from just above the floor, the character lands
	w.step(10)
	assert.Contains(t, kinds, controller.EventGrounded)

	w.press(cfg.ActionJump)
	w.step(1)
	assert.Contains(t, kinds, controller.EventJump)
}
