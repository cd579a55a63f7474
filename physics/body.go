package physics

import (
	"math"

	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	contactEpsilon = 1e-9
	// rampLiftTolerance lets a body climb a 45 degree ramp by slightly more
	// than its horizontal step without treating the ramp as a wall.
	rampLiftTolerance = 0.02
	restTolerance     = 1e-6
)

// Body is a character's kinematic collision box. It carries the external
// (impulse) velocity that a controller adds to its own motion.
type Body struct {
	space    *Space
	obj      *resolv.Object
	velocity mgl64.Vec2
	mass     float64
	friction float64
	blocking []string
}

var _ controller.Body = (*Body)(nil)

// BodyOption configures a Body.
type BodyOption func(*Body)

// WithMass sets the mass that impulses are divided by.
func WithMass(mass float64) BodyOption {
	return func(b *Body) {
		if mass > 0 {
			b.mass = mass
		}
	}
}

// WithFriction sets the surface material friction of the body.
func WithFriction(friction float64) BodyOption {
	return func(b *Body) { b.friction = friction }
}

// WithBlockingTags sets the tags of geometry that stops the body.
func WithBlockingTags(tags ...string) BodyOption {
	return func(b *Body) { b.blocking = tags }
}

// NewBody adds a body with its bottom-left corner at pos.
func (s *Space) NewBody(pos, size mgl64.Vec2, opts ...BodyOption) *Body {
	obj := resolv.NewObject(pos.X()*s.scale, pos.Y()*s.scale, size.X()*s.scale, size.Y()*s.scale, tags.ResolvCharacter)
	s.space.Add(obj)

	b := &Body{
		space:    s,
		obj:      obj,
		mass:     1,
		blocking: []string{tags.ResolvSolid, tags.ResolvRamp},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RemoveBody takes b out of the space.
func (s *Space) RemoveBody(b *Body) {
	s.space.Remove(b.obj)
}

func (b *Body) Object() *resolv.Object { return b.obj }
func (b *Body) Rect() gamemath.Rect { return rectOf(b.obj, b.space.scale) }

func (b *Body) Bounds() controller.Box {
	r := b.Rect()
	return controller.Box{Center: r.Center(), Size: r.Size()}
}

func (b *Body) Position() mgl64.Vec2 { return b.Rect().Min }

func (b *Body) SetPosition(pos mgl64.Vec2) {
	b.obj.X, b.obj.Y = pos.X()*b.space.scale, pos.Y()*b.space.scale
	b.obj.Update()
}

func (b *Body) Velocity() mgl64.Vec2 { return b.velocity }
func (b *Body) SetVelocity(v mgl64.Vec2) { b.velocity = v }
func (b *Body) Mass() float64 { return b.mass }

// ApplyImpulse changes the external velocity by impulse / mass.
func (b *Body) ApplyImpulse(impulse mgl64.Vec2) {
	b.velocity = b.velocity.Add(impulse.Mul(1 / b.mass))
}

// SurfaceFriction reports the material friction of the body.
func (b *Body) SurfaceFriction() float64 { return b.friction }

// MovePosition moves the body by delta, horizontally first, stopping
// flush against blocking geometry and following ramp surfaces. A blocked
// axis zeroes that component of the external velocity.
func (b *Body) MovePosition(delta mgl64.Vec2) {
	r := b.Rect()
	if delta.X() != 0 {
		var blocked bool
		r, blocked = b.moveHorizontal(r, delta.X())
		if blocked {
			b.velocity[0] = 0
		}
	}
	if delta.Y() != 0 {
		var blocked bool
		r, blocked = b.moveVertical(r, delta.Y())
		if blocked {
			b.velocity[1] = 0
		}
	}
	b.SetPosition(r.Min)
}

func sweep(r gamemath.Rect, d mgl64.Vec2) gamemath.Rect {
	t := r.Translate(d)
	return gamemath.Rect{
		Min: mgl64.Vec2{math.Min(r.Min.X(), t.Min.X()), math.Min(r.Min.Y(), t.Min.Y())},
		Max: mgl64.Vec2{math.Max(r.Max.X(), t.Max.X()), math.Max(r.Max.Y(), t.Max.Y())},
	}
}

func overlapsY(a, b gamemath.Rect) bool {
	return a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y()
}

func overlapsX(a, b gamemath.Rect) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X()
}

// clampX shortens dx so r stops at the near side of c.
func clampX(r, c gamemath.Rect, dx float64) (float64, bool) {
	if dx > 0 && c.Min.X() >= r.Max.X()-contactEpsilon && c.Min.X() < r.Max.X()+dx {
		return c.Min.X() - r.Max.X(), true
	}
	if dx < 0 && c.Max.X() <= r.Min.X()+contactEpsilon && c.Max.X() > r.Min.X()+dx {
		return c.Max.X() - r.Min.X(), true
	}
	return dx, false
}

func (b *Body) moveHorizontal(r gamemath.Rect, dx float64) (gamemath.Rect, bool) {
	candidates := b.space.candidates(sweep(r, mgl64.Vec2{dx, 0}), b.blocking)

	blocked := false
	for _, c := range candidates {
		if c.ramp != gamemath.RampNone || !overlapsY(r, c.Rect()) {
			continue
		}
		var hit bool
		if dx, hit = clampX(r, c.Rect(), dx); hit {
			blocked = true
		}
	}

	target := r.Translate(mgl64.Vec2{dx, 0})
	lifted := false
	for _, c := range candidates {
		if c.ramp == gamemath.RampNone || !c.overlaps(target) {
			continue
		}
		lift := rampSurfaceUnder(target, c) - target.Min.Y()
		if lift <= math.Abs(dx)+rampLiftTolerance {
			// Walking up the ramp.
			target = target.Translate(mgl64.Vec2{0, lift})
			lifted = true
			continue
		}
		// The ramp's high side acts as a wall.
		var hit bool
		if dx, hit = clampX(r, c.Rect(), dx); hit {
			blocked = true
			target = r.Translate(mgl64.Vec2{dx, 0})
		}
	}
	if !lifted && !blocked {
		target = b.followRampDown(r, target, math.Abs(dx)+rampLiftTolerance)
	}
	return target, blocked
}

// followRampDown keeps a body that was standing on a surface glued to a
// ramp it walks down, as long as the drop is within reach.
func (b *Body) followRampDown(from, to gamemath.Rect, reach float64) gamemath.Rect {
	area := sweep(from, to.Min.Sub(from.Min))
	area.Min[1] -= reach
	candidates := b.space.candidates(area, b.blocking)

	resting, overRamp := false, false
	drop := math.Inf(1)
	for _, c := range candidates {
		cr := c.Rect()
		if overlapsX(from, cr) && math.Abs(surfaceTop(from, c)-from.Min.Y()) <= restTolerance {
			resting = true
		}
		if !overlapsX(to, cr) {
			continue
		}
		d := to.Min.Y() - surfaceTop(to, c)
		if d < -restTolerance || d >= drop {
			continue
		}
		drop = d
		overRamp = c.ramp != gamemath.RampNone
	}
	if !resting || !overRamp || drop <= restTolerance || drop > reach {
		return to
	}
	return to.Translate(mgl64.Vec2{0, -drop})
}

func surfaceTop(r gamemath.Rect, c *Surface) float64 {
	if c.ramp == gamemath.RampNone {
		return c.Rect().Max.Y()
	}
	return rampSurfaceUnder(r, c)
}

func (b *Body) moveVertical(r gamemath.Rect, dy float64) (gamemath.Rect, bool) {
	candidates := b.space.candidates(sweep(r, mgl64.Vec2{0, dy}), b.blocking)

	blocked := false
	for _, c := range candidates {
		cr := c.Rect()
		if !overlapsX(r, cr) {
			continue
		}
		if c.ramp != gamemath.RampNone && dy < 0 {
			target := r.Translate(mgl64.Vec2{0, dy})
			if !c.overlaps(target) {
				continue
			}
			surface := rampSurfaceUnder(target, c)
			if r.Min.Y() >= surface-contactEpsilon {
				dy = surface - r.Min.Y()
				blocked = true
			}
			continue
		}

		if dy > 0 && cr.Min.Y() >= r.Max.Y()-contactEpsilon && cr.Min.Y() < r.Max.Y()+dy {
			dy = cr.Min.Y() - r.Max.Y()
			blocked = true
		}
		if dy < 0 && cr.Max.Y() <= r.Min.Y()+contactEpsilon && cr.Max.Y() > r.Min.Y()+dy {
			dy = cr.Max.Y() - r.Min.Y()
			blocked = true
		}
	}
	return r.Translate(mgl64.Vec2{0, dy}), blocked
}

// rampSurfaceUnder returns the ramp height under the corner of r that
// reaches deepest into the ramp.
func rampSurfaceUnder(r gamemath.Rect, ramp *Surface) float64 {
	rr := ramp.Rect()
	x := math.Max(r.Min.X(), rr.Min.X())
	if ramp.ramp == gamemath.RampUpRight {
		x = math.Min(r.Max.X(), rr.Max.X())
	}
	return gamemath.RampSurfaceY(rr, ramp.ramp, x)
}
