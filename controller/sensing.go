package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	up   = mgl64.Vec2{0, 1}
	down = mgl64.Vec2{0, -1}
)

func (c *Controller) layers() []string { return c.cfg.GroundCheck.Layers }

func (c *Controller) groundBox() Box {
	b := c.body.Bounds()
	return Box{
		Center: b.Center.Add(c.cfg.GroundCheck.BoxOffset),
		Size:   c.cfg.GroundCheck.BoxSize,
	}
}

func (c *Controller) wallBox() Box {
	b := c.body.Bounds()
	off := c.cfg.WallJump.BoxOffset
	return Box{
		Center: b.Center.Add(mgl64.Vec2{off.X() * c.facing, off.Y()}),
		Size:   c.cfg.WallJump.BoxSize,
	}
}

// stepRays returns the lower and upper step sensors in the facing direction.
func (c *Controller) stepRays() (lower, upper Ray) {
	s := c.cfg.Step
	center := c.body.Bounds().Center
	dir := mgl64.Vec2{c.facing, 0}

	lower = Ray{Origin: center.Add(mgl64.Vec2{0, s.BottomOffsetY}), Direction: dir, Distance: s.Distance}
	upper = Ray{Origin: center.Add(mgl64.Vec2{0, s.BottomOffsetY + s.CheckDistance}), Direction: dir, Distance: s.Distance}
	return lower, upper
}

// topEdgeRays returns the outer and inner upward sensors on the given side.
func (c *Controller) topEdgeRays(side float64) (outer, inner Ray) {
	t := c.cfg.TopEdge
	center := c.body.Bounds().Center

	outer = Ray{Origin: center.Add(mgl64.Vec2{t.XOffset * side, 0}), Direction: up, Distance: t.Distance}
	inner = Ray{Origin: center.Add(mgl64.Vec2{(t.XOffset - t.CheckDistance) * side, 0}), Direction: up, Distance: t.Distance}
	return outer, inner
}

func (c *Controller) slopeRay() Ray {
	b := c.body.Bounds()
	return Ray{
		Origin:    b.Center,
		Direction: down,
		Distance:  b.Size.Y()/2 + c.cfg.Slope.CheckDistance,
	}
}

func (c *Controller) senseGround() Surface {
	surface, hit := c.senseAnchored()
	if !hit {
		surface, hit = c.query.OverlapBox(c.groundBox(), c.layers())
	}

	c.wasGrounded = c.grounded
	c.grounded = hit
	if !c.wasGrounded && c.grounded {
		c.emit(Event{Kind: EventGrounded})
	}
	if c.grounded && c.wallGripped && c.velocity.Y() < 0 {
		// Landing out of a wall slide must not keep the slide speed.
		c.velocity[1] = 0
	}
	c.falling = !c.grounded && c.velocity.Y() < 0

	if !hit {
		return nil
	}
	return surface
}

// senseAnchored re-tests the anchored platform with the ground box moved by
// the platform's displacement since the last tick, so a descending platform
// is still found under the feet before the carry is applied.
func (c *Controller) senseAnchored() (Surface, bool) {
	if c.platform == nil {
		return nil, false
	}
	box := c.groundBox()
	box.Center = box.Center.Add(c.platform.Position().Sub(c.platformPos))
	surface, hit := c.query.OverlapBox(box, []string{c.cfg.MovingPlatform.Tag})
	if !hit || surface != c.platform {
		return nil, false
	}
	return surface, true
}

// applyStep nudges the character up a low obstacle. The nudge repeats while
// the lower sensor still hits, but the step event fires once per obstacle.
func (c *Controller) applyStep() {
	if !c.cfg.Step.Enabled || c.velocity.X() == 0 {
		c.stepping = false
		return
	}
	lower, upper := c.stepRays()
	if _, hit := c.query.Raycast(lower, c.layers()); !hit {
		c.stepping = false
		return
	}
	if _, hit := c.query.Raycast(upper, c.layers()); hit {
		c.stepping = false
		return
	}
	if !c.stepping {
		c.stepping = true
		c.emit(Event{Kind: EventStep})
	}
	c.velocity[1] = c.cfg.Step.MoveForce
}

func (c *Controller) senseWall() {
	c.wasWallGripped = c.wallGripped
	if !c.cfg.WallJump.Enabled || c.grounded {
		c.wallGripped = false
		return
	}

	_, hit := c.query.OverlapBox(c.wallBox(), c.layers())
	c.wallGripped = hit
	if !hit {
		return
	}
	c.wallSide = c.facing
	if c.wasWallGripped {
		return
	}

	c.emit(Event{Kind: EventWallGrab})
	if c.cfg.WallJump.RefillAllJumps {
		c.jumpCharges = c.cfg.Jump.AirJumps
	} else {
		c.jumpCharges = max(c.jumpCharges, 1)
	}
}

func (c *Controller) applySlope() {
	s := c.cfg.Slope
	if !s.Enabled || c.velocity.Y() > 0 {
		return
	}
	hit, ok := c.query.Raycast(c.slopeRay(), c.layers())
	if !ok {
		return
	}
	steep := math.Abs(hit.Normal.X()) > math.Sin(mgl64.DegToRad(s.MaxAngle))
	if steep || (c.grounded && c.smoothedX != 0) {
		c.velocity[1] = -s.SlideSpeed
	}
}

func (c *Controller) applyTopEdge() {
	t := c.cfg.TopEdge
	if !t.Enabled {
		return
	}

	var dir float64
	switch {
	case c.velocity.X() >= 0 && c.hasTopEdge(1):
		dir = 1
	case c.velocity.X() <= 0 && c.hasTopEdge(-1):
		dir = -1
	default:
		return
	}
	c.emit(Event{Kind: EventLedgeNudge, Direction: mgl64.Vec2{dir, 0}})
	c.velocity[0] += -dir * t.MoveForce
}

// hasTopEdge reports a ledge lip above the given side: the outer ray is
// blocked while the inner one is clear.
func (c *Controller) hasTopEdge(side float64) bool {
	outer, inner := c.topEdgeRays(side)
	if _, hit := c.query.Raycast(outer, c.layers()); !hit {
		return false
	}
	_, hit := c.query.Raycast(inner, c.layers())
	return !hit
}

// Geometry is the sensor layout of a controller at its current position,
// exposed for debug drawing.
type Geometry struct {
	GroundBox    Box
	WallBox      Box
	StepLower    Ray
	StepUpper    Ray
	TopEdgeOuter [2]Ray // left, right
	TopEdgeInner [2]Ray
	SlopeRay     Ray
}

// Geometry returns the current sensor boxes and rays.
func (c *Controller) Geometry() Geometry {
	g := Geometry{
		GroundBox: c.groundBox(),
		WallBox:   c.wallBox(),
		SlopeRay:  c.slopeRay(),
	}
	g.StepLower, g.StepUpper = c.stepRays()
	g.TopEdgeOuter[0], g.TopEdgeInner[0] = c.topEdgeRays(-1)
	g.TopEdgeOuter[1], g.TopEdgeInner[1] = c.topEdgeRays(1)
	return g
}
