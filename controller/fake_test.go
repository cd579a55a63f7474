package controller

import (
	"math"
	"slices"

	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeSurface struct {
	rect gamemath.Rect
	ramp gamemath.RampKind
	tags []string
}

func (s *fakeSurface) HasTag(tag string) bool { return slices.Contains(s.tags, tag) }
func (s *fakeSurface) Position() mgl64.Vec2 { return s.rect.Min }

func (s *fakeSurface) moveBy(d mgl64.Vec2) { s.rect = s.rect.Translate(d) }

func (s *fakeSurface) overlaps(r gamemath.Rect) bool {
	return gamemath.BoxOverlapsRamp(r, s.rect, s.ramp)
}

type fakeWorld struct {
	surfaces []*fakeSurface
}

func (w *fakeWorld) add(x, y, width, height float64, tags ...string) *fakeSurface {
	if len(tags) == 0 {
		tags = []string{"solid"}
	}
	s := &fakeSurface{rect: gamemath.RectFromXYWH(x, y, width, height), tags: tags}
	w.surfaces = append(w.surfaces, s)
	return s
}

func (w *fakeWorld) addRamp(x, y, width, height float64, kind gamemath.RampKind) *fakeSurface {
	s := w.add(x, y, width, height, "ramp")
	s.ramp = kind
	return s
}

func matches(s *fakeSurface, layers []string) bool {
	for _, l := range layers {
		if s.HasTag(l) {
			return true
		}
	}
	return false
}

func (w *fakeWorld) OverlapBox(box Box, layers []string) (Surface, bool) {
	r := gamemath.RectFromCenter(box.Center, box.Size)
	for _, s := range w.surfaces {
		if matches(s, layers) && s.overlaps(r) {
			return s, true
		}
	}
	return nil, false
}

func (w *fakeWorld) Raycast(ray Ray, layers []string) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, s := range w.surfaces {
		if !matches(s, layers) {
			continue
		}
		h, ok := gamemath.RayPolygon(ray.Origin, ray.Direction, ray.Distance, gamemath.RampVertices(s.rect, s.ramp))
		if ok && h.Distance < best.Distance {
			best = Hit{Point: h.Point, Normal: h.Normal, Distance: h.Distance, Surface: s}
			found = true
		}
	}
	return best, found
}

// fakeBody moves per axis and stops flush against rectangular solids.
type fakeBody struct {
	world    *fakeWorld
	rect     gamemath.Rect
	size     mgl64.Vec2
	velocity mgl64.Vec2
	friction float64
}

func newFakeBody(w *fakeWorld, x, y float64) *fakeBody {
	b := &fakeBody{world: w, size: mgl64.Vec2{0.8, 1.6}}
	b.SetPosition(mgl64.Vec2{x, y})
	return b
}

func (b *fakeBody) Bounds() Box {
	return Box{Center: b.rect.Center(), Size: b.size}
}

func (b *fakeBody) Position() mgl64.Vec2 { return b.rect.Min }

// SetPosition rebuilds the rect from a fixed size so that resting against
// the same face always yields the same coordinates.
func (b *fakeBody) SetPosition(p mgl64.Vec2) {
	b.rect = gamemath.RectFromXYWH(p.X(), p.Y(), b.size.X(), b.size.Y())
}

func (b *fakeBody) Velocity() mgl64.Vec2 { return b.velocity }
func (b *fakeBody) SetVelocity(v mgl64.Vec2) { b.velocity = v }
func (b *fakeBody) ApplyImpulse(impulse mgl64.Vec2) { b.velocity = b.velocity.Add(impulse) }
func (b *fakeBody) SurfaceFriction() float64 { return b.friction }

func (b *fakeBody) MovePosition(d mgl64.Vec2) {
	if d.X() != 0 {
		pos := b.rect.Min.Add(mgl64.Vec2{d.X(), 0})
		next := gamemath.RectFromXYWH(pos.X(), pos.Y(), b.size.X(), b.size.Y())
		for _, s := range b.world.surfaces {
			if s.ramp != gamemath.RampNone || !s.rect.Overlaps(next) {
				continue
			}
			if d.X() > 0 {
				pos[0] = s.rect.Min.X() - b.size.X()
			} else {
				pos[0] = s.rect.Max.X()
			}
			next = gamemath.RectFromXYWH(pos.X(), pos.Y(), b.size.X(), b.size.Y())
			b.velocity[0] = 0
		}
		b.rect = next
	}
	if d.Y() != 0 {
		pos := b.rect.Min.Add(mgl64.Vec2{0, d.Y()})
		next := gamemath.RectFromXYWH(pos.X(), pos.Y(), b.size.X(), b.size.Y())
		for _, s := range b.world.surfaces {
			if s.ramp != gamemath.RampNone || !s.rect.Overlaps(next) {
				continue
			}
			if d.Y() > 0 {
				pos[1] = s.rect.Min.Y() - b.size.Y()
			} else {
				pos[1] = s.rect.Max.Y()
			}
			next = gamemath.RectFromXYWH(pos.X(), pos.Y(), b.size.X(), b.size.Y())
			b.velocity[1] = 0
		}
		b.rect = next
	}
}
