package gamemath

import "github.com/go-gl/mathgl/mgl64"

// RampKind describes which way a 45 degree ramp tile rises.
type RampKind int

const (
	// RampNone is a plain rectangle.
	RampNone RampKind = iota
	// RampUpRight rises from its left edge to its right edge.
	RampUpRight
	// RampUpLeft rises from its right edge to its left edge.
	RampUpLeft
)

// RampSurfaceY returns the ramp surface height at world x.
// x is clamped to the ramp's horizontal extent.
func RampSurfaceY(r Rect, kind RampKind, x float64) float64 {
	w := r.Width()
	if w <= 0 {
		return r.Max.Y()
	}
	rel := Clamp((x-r.Min.X())/w, 0, 1)

	switch kind {
	case RampUpRight:
		return r.Min.Y() + r.Height()*rel
	case RampUpLeft:
		return r.Min.Y() + r.Height()*(1-rel)
	default:
		return r.Max.Y()
	}
}

// RampNormal returns the unit normal of the ramp's walkable surface.
func RampNormal(r Rect, kind RampKind) mgl64.Vec2 {
	switch kind {
	case RampUpRight:
		return mgl64.Vec2{-r.Height(), r.Width()}.Normalize()
	case RampUpLeft:
		return mgl64.Vec2{r.Height(), r.Width()}.Normalize()
	default:
		return mgl64.Vec2{0, 1}
	}
}

// RampVertices returns the ramp's solid region as a counter-clockwise polygon.
func RampVertices(r Rect, kind RampKind) []mgl64.Vec2 {
	minX, minY := r.Min.X(), r.Min.Y()
	maxX, maxY := r.Max.X(), r.Max.Y()

	switch kind {
	case RampUpRight:
		return []mgl64.Vec2{{minX, minY}, {maxX, minY}, {maxX, maxY}}
	case RampUpLeft:
		return []mgl64.Vec2{{minX, minY}, {maxX, minY}, {minX, maxY}}
	default:
		return r.Vertices()
	}
}

// BoxOverlapsRamp reports whether box intersects the solid part of a ramp.
func BoxOverlapsRamp(box, ramp Rect, kind RampKind) bool {
	if !box.Overlaps(ramp) {
		return false
	}
	if kind == RampNone {
		return true
	}

	// The box corner deepest into the solid region decides the overlap.
	y := max(box.Min.Y(), ramp.Min.Y())
	var x float64
	if kind == RampUpRight {
		x = min(box.Max.X(), ramp.Max.X())
	} else {
		x = max(box.Min.X(), ramp.Min.X())
	}
	return y < RampSurfaceY(ramp, kind, x)
}
