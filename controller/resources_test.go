package controller

import (
	"math/rand"
	"testing"

	"github.com/automoto/charmove2d/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashCycle(t *testing.T) {
	w := floorWorld()
	b := newFakeBody(w, 0, 0)
	c := newTestController(t, w, b)
	r := record(c, EventDash)

	r.step(1)
	c.OnDashPressed()
	r.step(1)

	require.Equal(t, 1, r.count(EventDash))
	assert.Equal(t, 0, c.DashCharges())
	assert.Equal(t, c.Config().Dash.Cooldown, c.DashCooldown())
	assert.Equal(t, 0.0, c.Velocity().X(), "own velocity zeroed")
	assert.Equal(t, mgl64.Vec2{50, 0}, b.Velocity(), "impulse along facing")

	c.OnDashPressed()
	r.step(1)
	assert.Equal(t, 1, r.count(EventDash), "second press during cooldown is ignored")
	assert.InDelta(t, 50/1.25, b.Velocity().X(), 1e-9, "impulse only decays")
	assert.InDelta(t, c.Config().Dash.Cooldown-dt, c.DashCooldown(), 1e-9)
}

func TestDashImpulseDecays(t *testing.T) {
	w := floorWorld()
	b := newFakeBody(w, 0, 0)
	c := newTestController(t, w, b)
	r := &recorder{c: c}

	r.step(1)
	c.OnDashPressed()
	r.step(1)
	start := b.Position().X()
	r.step(60)

	assert.Less(t, b.Velocity().X(), 1e-3)
	assert.Greater(t, b.Position().X()-start, 3.0)
	assert.Less(t, b.Position().X()-start, 5.0)
}

func TestDashDirectionFollowsInput(t *testing.T) {
	w := floorWorld()
	b := newFakeBody(w, 0, 0)
	c := newTestController(t, w, b)
	r := &recorder{c: c}

	r.step(1)
	c.SetInput(mgl64.Vec2{0, 1})
	c.OnDashPressed()
	r.step(1)

	assert.InDelta(t, 0, b.Velocity().X(), 1e-9)
	assert.InDelta(t, 50, b.Velocity().Y(), 1e-9)
}

func TestDashDirectionFallsBackToFacing(t *testing.T) {
	w := floorWorld()
	b := newFakeBody(w, 5, 0)
	c := newTestController(t, w, b)
	r := &recorder{c: c}

	c.SetInput(mgl64.Vec2{-1, 0})
	r.step(3)
	c.SetInput(mgl64.Vec2{})
	r.step(10)
	require.Equal(t, -1.0, c.Facing())
	require.Equal(t, 0.0, c.SmoothedInput())

	c.OnDashPressed()
	r.step(1)
	assert.Equal(t, mgl64.Vec2{-50, 0}, b.Velocity())
}

func TestDashDisabled(t *testing.T) {
	w := floorWorld()
	c := newTestController(t, w, newFakeBody(w, 0, 0), func(cfg *config.ControllerConfig) {
		cfg.Dash.Enabled = false
	})
	r := record(c, EventDash)

	c.OnDashPressed()
	r.step(2)
	assert.Zero(t, r.count(EventDash))
	assert.Equal(t, 1, c.DashCharges())
}

func TestDashRechargeFiresOnceWhenGrounded(t *testing.T) {
	w := floorWorld()
	c := newTestController(t, w, newFakeBody(w, 0, 0))
	r := record(c, EventDashRecharged)

	r.step(1)
	c.OnDashPressed()
	r.step(1)
	r.step(60)

	require.Equal(t, 1, r.count(EventDashRecharged))
	// 0.6s cooldown at 0.02s per tick crosses zero 30 ticks after the dash.
	assert.InDelta(t, 32, r.ticksOf(EventDashRecharged)[0], 1)
	assert.False(t, c.PendingRecharge())
}

func TestDashRechargeDeferredUntilLanding(t *testing.T) {
	w := floorWorld()
	b := newFakeBody(w, 0, 3)
	c := newTestController(t, w, b, func(cfg *config.ControllerConfig) {
		cfg.Jump.Gravity = -1
		cfg.Jump.MaxFallSpeed = -1
	})
	r := record(c, EventGrounded, EventDashRecharged)

	c.OnDashPressed()
	r.step(1)
	require.Equal(t, 0, c.DashCharges())

	require.True(t, r.stepUntil(40, func() bool { return c.DashCooldown() == 0 }))
	require.False(t, c.IsGrounded(), "cooldown must elapse mid-air")
	assert.True(t, c.PendingRecharge())
	assert.Zero(t, r.count(EventDashRecharged))

	require.True(t, r.stepUntil(600, c.IsGrounded))
	r.step(30)

	landing := r.ticksOf(EventGrounded)
	require.Len(t, landing, 1)
	assert.Equal(t, landing, r.ticksOf(EventDashRecharged))
	assert.False(t, c.PendingRecharge())
	assert.Equal(t, 1, c.DashCharges())

	// Stage order: grounded is reported before the recharge.
	require.Len(t, r.events, 2)
	assert.Equal(t, EventGrounded, r.events[0].Kind)
	assert.Equal(t, EventDashRecharged, r.events[1].Kind)
}

func TestDashRechargeWhileAirborneWithCharges(t *testing.T) {
	w := floorWorld()
	c := newTestController(t, w, newFakeBody(w, 0, 3), func(cfg *config.ControllerConfig) {
		cfg.Jump.Gravity = -1
		cfg.Jump.MaxFallSpeed = -1
		cfg.Dash.AirDashes = 2
	})
	r := record(c, EventDashRecharged)

	c.OnDashPressed()
	r.step(1)
	require.Equal(t, 1, c.DashCharges())

	require.True(t, r.stepUntil(40, func() bool { return r.count(EventDashRecharged) == 1 }))
	assert.False(t, c.IsGrounded())
	assert.False(t, c.PendingRecharge())
}

func TestChargeInvariant(t *testing.T) {
	w := floorWorld()
	w.add(-50, 0, 1, 20)
	w.add(49, 0, 1, 20)
	w.add(-10, 4, 6, 0.5)
	w.add(8, 3, 4, 0.5)
	w.add(-30, 0, 3, 0.05)
	b := newFakeBody(w, 0, 0)
	c := newTestController(t, w, b, func(cfg *config.ControllerConfig) {
		cfg.Jump.AirJumps = 2
		cfg.Dash.AirDashes = 2
		cfg.WallJump.RefillAllJumps = false
	})
	maxJumps, maxDashes := c.Config().Jump.AirJumps, c.Config().Dash.AirDashes

	rng := rand.New(rand.NewSource(7))
	for i := range 2000 {
		if rng.Intn(8) == 0 {
			c.OnJumpPressed()
		}
		if rng.Intn(12) == 0 {
			c.OnDashPressed()
		}
		if i%30 == 0 {
			c.SetInput(mgl64.Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1})
		}
		c.Tick(dt)

		require.GreaterOrEqual(t, c.JumpCharges(), 0)
		require.LessOrEqual(t, c.JumpCharges(), maxJumps)
		require.GreaterOrEqual(t, c.DashCharges(), 0)
		require.LessOrEqual(t, c.DashCharges(), maxDashes)
		require.GreaterOrEqual(t, c.DashCooldown(), 0.0)
		require.GreaterOrEqual(t, c.JumpBuffer(), 0.0)
		require.GreaterOrEqual(t, c.DashBuffer(), 0.0)
	}
}
