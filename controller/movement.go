package controller

import (
	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

func (c *Controller) smoothInput(dt float64) {
	m := c.cfg.Movement
	raw := gamemath.Deadzone(gamemath.Clamp(c.input.X(), -1, 1), m.InputDeadzone)

	if m.InstantDirectionChange && raw != 0 && c.smoothedX != 0 &&
		gamemath.Sign(raw) != gamemath.Sign(c.smoothedX) {
		c.smoothedX = 0
	}

	if raw != 0 {
		c.smoothedX = gamemath.MoveTowards(c.smoothedX, raw, m.Acceleration*dt)
	} else {
		c.smoothedX = gamemath.MoveTowards(c.smoothedX, 0, m.Deceleration*dt)
	}
	c.smoothedX = gamemath.Clamp(c.smoothedX, -1, 1)
}

func (c *Controller) measureVelocity(dt float64) {
	pos := c.body.Position()
	c.measured = pos.Sub(c.lastPos).Mul(1 / dt)
	c.lastPos = pos
}

func (c *Controller) applyGravity(dt float64) {
	j := c.cfg.Jump
	vy := c.velocity.Y()

	g := j.Gravity
	if vy < 0 {
		g *= j.DownGravityMultiplier
	}
	vy += g * dt

	switch {
	case c.grounded && vy < 0:
		vy = j.GroundStickVelocity
	case !c.grounded && vy < j.MaxFallSpeed:
		vy = j.MaxFallSpeed
	case !c.grounded && vy > 0 && c.measured.Y() <= 0:
		// Ceiling contact: bump back down.
		vy = 0
	}
	c.velocity[1] = vy
}

// movementSpeed is faster in the air near the jump apex.
func (c *Controller) movementSpeed() float64 {
	m := c.cfg.Movement
	if c.grounded || m.ApexSpeedThreshold <= 0 {
		return m.GroundSpeed
	}
	t := abs(c.velocity.Y()) / m.ApexSpeedThreshold
	return gamemath.Lerp(m.ApexSpeed, m.GroundSpeed, t)
}

func (c *Controller) composeHorizontal() {
	if !c.canMove {
		c.velocity[0] = 0
		c.walkSpeed = 0
		return
	}
	c.velocity[0] = c.smoothedX * c.movementSpeed()

	c.walkSpeed = c.smoothedX
	if c.measured.X() == 0 {
		c.walkSpeed = 0
	}
}

func (c *Controller) applyWallGrip() {
	if c.wallGripped && c.velocity.Y() <= 0 {
		c.velocity[1] = -c.cfg.WallJump.GripFallSpeed
	}
}

func (c *Controller) composeFinal() {
	c.final = mgl64.Vec2{
		c.velocity.X(),
		gamemath.ApexDeadZone(c.velocity.Y(), c.cfg.Jump.ApexZeroGravityThreshold),
	}
}

// commit moves the body and returns the displacement it actually made.
func (c *Controller) commit(dt float64) mgl64.Vec2 {
	before := c.body.Position()
	c.body.MovePosition(c.final.Add(c.body.Velocity()).Mul(dt))
	return c.body.Position().Sub(before)
}

func (c *Controller) updateFacing() {
	if c.smoothedX == 0 {
		return
	}
	if s := gamemath.Sign(c.smoothedX); s != c.facing {
		c.facing = s
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
