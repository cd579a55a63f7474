package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const parallelEpsilon = 1e-12

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	Min, Max mgl64.Vec2
}

// RectFromCenter builds a rectangle from its centre and full size.
func RectFromCenter(center, size mgl64.Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// RectFromXYWH builds a rectangle from its bottom-left corner and size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Min: mgl64.Vec2{x, y}, Max: mgl64.Vec2{x + w, y + h}}
}

func (r Rect) Width() float64  { return r.Max.X() - r.Min.X() }
func (r Rect) Height() float64 { return r.Max.Y() - r.Min.Y() }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Size returns the full width and height.
func (r Rect) Size() mgl64.Vec2 {
	return r.Max.Sub(r.Min)
}

// Overlaps reports strict intersection; rectangles that only touch do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X() < o.Max.X() && r.Max.X() > o.Min.X() &&
		r.Min.Y() < o.Max.Y() && r.Max.Y() > o.Min.Y()
}

// Translate offsets the rectangle by d.
func (r Rect) Translate(d mgl64.Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Vertices returns the corners counter-clockwise from the bottom-left.
func (r Rect) Vertices() []mgl64.Vec2 {
	return []mgl64.Vec2{
		{r.Min.X(), r.Min.Y()},
		{r.Max.X(), r.Min.Y()},
		{r.Max.X(), r.Max.Y()},
		{r.Min.X(), r.Max.Y()},
	}
}

// RayHit is the closest front-facing intersection of a ray with a polygon.
type RayHit struct {
	Point    mgl64.Vec2
	Normal   mgl64.Vec2
	Distance float64
}

// RayPolygon casts a ray against a counter-clockwise polygon. Only edges
// facing the ray are considered, so a ray starting inside the polygon
// does not report its exit point.
func RayPolygon(origin, dir mgl64.Vec2, maxDist float64, vertices []mgl64.Vec2) (RayHit, bool) {
	if dir.Len() == 0 || len(vertices) < 2 {
		return RayHit{}, false
	}
	dir = dir.Normalize()

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		edge := b.Sub(a)
		if edge.Len() == 0 {
			continue
		}
		normal := mgl64.Vec2{edge.Y(), -edge.X()}.Normalize()
		if dir.Dot(normal) >= 0 {
			continue
		}

		t, ok := raySegment(origin, dir, a, edge)
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = RayHit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}
		found = true
	}
	return best, found
}

func raySegment(origin, dir, a, edge mgl64.Vec2) (float64, bool) {
	denom := cross(dir, edge)
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	ap := a.Sub(origin)
	t := cross(ap, edge) / denom
	u := cross(ap, dir) / denom
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

func cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
