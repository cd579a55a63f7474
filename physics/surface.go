package physics

import (
	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Surface is a static or moving piece of level geometry in a Space.
// There is exactly one Surface per resolv object, so surfaces compare equal
// only when they refer to the same geometry.
type Surface struct {
	obj   *resolv.Object
	ramp  gamemath.RampKind
	scale float64
}

func rampKindOf(obj *resolv.Object) gamemath.RampKind {
	switch {
	case obj.HasTags(tags.Slope45UpRight):
		return gamemath.RampUpRight
	case obj.HasTags(tags.Slope45UpLeft):
		return gamemath.RampUpLeft
	}
	return gamemath.RampNone
}

func (s *Surface) HasTag(tag string) bool { return s.obj.HasTags(tag) }

// Position returns the bottom-left corner of the surface in world units.
func (s *Surface) Position() mgl64.Vec2 {
	return mgl64.Vec2{s.obj.X / s.scale, s.obj.Y / s.scale}
}

// SetPosition moves the surface and re-registers it in the space cells.
func (s *Surface) SetPosition(p mgl64.Vec2) {
	s.obj.X, s.obj.Y = p.X()*s.scale, p.Y()*s.scale
	s.obj.Update()
}

func (s *Surface) Object() *resolv.Object { return s.obj }
func (s *Surface) Ramp() gamemath.RampKind { return s.ramp }

// Rect returns the bounds of the surface in world units.
func (s *Surface) Rect() gamemath.Rect {
	return rectOf(s.obj, s.scale)
}

// Vertices returns the solid region as a counter-clockwise polygon.
func (s *Surface) Vertices() []mgl64.Vec2 {
	return gamemath.RampVertices(s.Rect(), s.ramp)
}

func (s *Surface) overlaps(r gamemath.Rect) bool {
	return gamemath.BoxOverlapsRamp(r, s.Rect(), s.ramp)
}

func rectOf(obj *resolv.Object, scale float64) gamemath.Rect {
	return gamemath.RectFromXYWH(obj.X/scale, obj.Y/scale, obj.W/scale, obj.H/scale)
}
