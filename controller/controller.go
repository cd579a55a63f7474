package controller

import (
	"github.com/automoto/charmove2d/config"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Controller integrates the movement of one character. It owns all of the
// character's runtime state and is driven by Tick once per fixed step.
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg   config.ControllerConfig
	body  Body
	query SpatialQuery
	log   *zap.Logger

	listeners    []listenerEntry
	nextListener ListenerID

	facing    float64
	velocity  mgl64.Vec2 // controller-owned velocity
	final     mgl64.Vec2 // velocity committed by the last tick
	input     mgl64.Vec2
	smoothedX float64
	measured  mgl64.Vec2
	lastPos   mgl64.Vec2
	walkSpeed float64
	canMove   bool

	jumpCharges int
	dashCharges int

	jumpBuffer   float64
	dashBuffer   float64
	dashCooldown float64

	grounded       bool
	wasGrounded    bool
	falling        bool
	wallGripped    bool
	wasWallGripped bool
	wallSide       float64

	pendingRecharge bool
	stepping        bool

	platform       Surface
	platformOffset mgl64.Vec2
	platformPos    mgl64.Vec2
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for configuration warnings.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a controller for body. Charge counts are clamped to their
// supported range; other configuration anomalies are logged as warnings.
func New(cfg config.ControllerConfig, body Body, query SpatialQuery, opts ...Option) (*Controller, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if query == nil {
		return nil, ErrNoSpatialQuery
	}

	c := &Controller{
		cfg:   cfg.Normalized(),
		body:  body,
		query: query,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, w := range cfg.Validate() {
		c.log.Warn("controller config", zap.String("warning", w))
	}
	if fr, ok := body.(frictionReporter); ok && fr.SurfaceFriction() != 0 {
		c.log.Warn("body surface has friction; the character may stick to walls",
			zap.Float64("friction", fr.SurfaceFriction()))
	}

	c.facing = config.DirectionRight
	c.canMove = c.cfg.Movement.Enabled
	c.jumpCharges = c.cfg.Jump.AirJumps
	c.dashCharges = c.cfg.Dash.AirDashes
	c.lastPos = body.Position()
	return c, nil
}

// Tick advances the controller by dt seconds. Non-positive dt is ignored.
func (c *Controller) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	c.smoothInput(dt)
	c.decayTimers(dt)
	c.dampExternal()
	surface := c.senseGround()
	c.refillOnGround()
	c.trackPlatform(surface)
	c.measureVelocity(dt)
	c.applyGravity(dt)
	c.applyStep()
	c.tryJump()
	c.tryDash()
	c.composeHorizontal()
	c.senseWall()
	c.applySlope()
	c.applyTopEdge()
	c.applyWallGrip()
	c.composeFinal()
	moved := c.commit(dt)
	c.advancePlatformOffset(moved)
	c.updateFacing()
}

// OnJumpPressed arms the jump buffer.
func (c *Controller) OnJumpPressed() {
	c.jumpBuffer = c.cfg.Jump.BufferTime
}

// OnDashPressed arms the dash buffer.
func (c *Controller) OnDashPressed() {
	c.dashBuffer = c.cfg.Dash.BufferTime
}

// SetInput stores the raw directional input for the next tick.
func (c *Controller) SetInput(v mgl64.Vec2) {
	c.input = v
}

// SetMovementEnabled toggles horizontal movement, jumping and dashing.
func (c *Controller) SetMovementEnabled(enabled bool) {
	c.canMove = enabled
}

// ResetVelocity clears the controller velocity and the body's external velocity.
func (c *Controller) ResetVelocity() {
	c.velocity = mgl64.Vec2{}
	c.final = mgl64.Vec2{}
	c.body.SetVelocity(mgl64.Vec2{})
}

// Teleport moves the body to pos without the jump counting as motion. It
// drops any platform anchor and clears all velocity.
func (c *Controller) Teleport(pos mgl64.Vec2) {
	c.body.SetPosition(pos)
	c.lastPos = pos
	c.platform = nil
	c.stepping = false
	c.ResetVelocity()
}

// Config returns the normalised configuration in use.
func (c *Controller) Config() config.ControllerConfig { return c.cfg }

// Body returns the bound body.
func (c *Controller) Body() Body { return c.body }

func (c *Controller) IsGrounded() bool { return c.grounded }
func (c *Controller) IsFalling() bool { return c.falling }
func (c *Controller) IsWallGripped() bool { return c.wallGripped }
func (c *Controller) IsAnchored() bool { return c.platform != nil }
func (c *Controller) MovementEnabled() bool { return c.canMove }
func (c *Controller) WalkSpeed() float64 { return c.walkSpeed }
func (c *Controller) Facing() float64 { return c.facing }
func (c *Controller) SmoothedInput() float64 { return c.smoothedX }
func (c *Controller) Input() mgl64.Vec2 { return c.input }
func (c *Controller) JumpCharges() int { return c.jumpCharges }
func (c *Controller) DashCharges() int { return c.dashCharges }
func (c *Controller) JumpBuffer() float64 { return c.jumpBuffer }
func (c *Controller) DashBuffer() float64 { return c.dashBuffer }
func (c *Controller) DashCooldown() float64 { return c.dashCooldown }
func (c *Controller) PendingRecharge() bool { return c.pendingRecharge }

// Velocity returns the controller's own velocity before the apex dead-zone.
func (c *Controller) Velocity() mgl64.Vec2 { return c.velocity }

// FinalVelocity returns the controller velocity committed by the last tick,
// excluding the body's external velocity.
func (c *Controller) FinalVelocity() mgl64.Vec2 { return c.final }

// MeasuredVelocity returns the velocity derived from the last position change.
func (c *Controller) MeasuredVelocity() mgl64.Vec2 { return c.measured }
