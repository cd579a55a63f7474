package controller

import (
	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func (c *Controller) decayTimers(dt float64) {
	c.jumpBuffer = max(0, c.jumpBuffer-dt)
	c.dashBuffer = max(0, c.dashBuffer-dt)

	if !c.cfg.Dash.Enabled {
		return
	}
	if c.dashCooldown > 0 && c.dashCooldown-dt <= 0 {
		if c.dashCharges > 0 {
			c.emit(Event{Kind: EventDashRecharged})
		} else {
			c.pendingRecharge = true
		}
	}
	c.dashCooldown = max(0, c.dashCooldown-dt)
}

func (c *Controller) dampExternal() {
	f := c.cfg.ExternalForces.Friction
	v := c.body.Velocity()
	if v == (mgl64.Vec2{}) {
		return
	}
	c.body.SetVelocity(mgl64.Vec2{gamemath.Damp(v.X(), f), gamemath.Damp(v.Y(), f)})
}

// refillOnGround restores charges on every grounded tick, so a landing
// always leaves the character with full charges.
func (c *Controller) refillOnGround() {
	if !c.grounded {
		return
	}
	c.jumpCharges = c.cfg.Jump.AirJumps
	c.dashCharges = c.cfg.Dash.AirDashes
	if c.pendingRecharge {
		c.pendingRecharge = false
		c.emit(Event{Kind: EventDashRecharged})
	}
}

func (c *Controller) tryJump() {
	if !c.canMove || c.jumpBuffer <= 0 || c.jumpCharges <= 0 {
		return
	}
	c.jumpCharges--
	c.jumpBuffer = 0
	c.velocity[1] = gamemath.JumpVelocity(c.cfg.Jump.JumpForce, c.cfg.Jump.Gravity)
	c.emit(Event{Kind: EventJump})

	if c.cfg.WallJump.Enabled && (c.wallGripped || c.wasWallGripped) {
		c.body.ApplyImpulse(mgl64.Vec2{-c.wallSide * c.cfg.WallJump.LaunchForce, 0})
	}
}

func (c *Controller) tryDash() {
	d := c.cfg.Dash
	if !d.Enabled || !c.canMove || c.dashBuffer <= 0 {
		return
	}
	if c.dashCooldown > 0 || c.dashCharges <= 0 {
		return
	}
	c.dashCharges--
	c.dashBuffer = 0
	c.dashCooldown = d.Cooldown

	c.velocity = mgl64.Vec2{}
	c.body.ApplyImpulse(c.dashDirection().Mul(d.Force))
	c.emit(Event{Kind: EventDash})
}

// dashDirection uses the smoothed horizontal and raw vertical input, or the
// facing direction when both are neutral.
func (c *Controller) dashDirection() mgl64.Vec2 {
	dir := mgl64.Vec2{c.smoothedX, gamemath.Clamp(c.input.Y(), -1, 1)}
	if dir.Len() == 0 {
		return mgl64.Vec2{c.facing, 0}
	}
	return dir.Normalize()
}
