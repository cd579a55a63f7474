package controller

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned query box in world space.
type Box struct {
	Center mgl64.Vec2
	Size   mgl64.Vec2
}

// Ray is a query ray. Direction need not be normalised.
type Ray struct {
	Origin    mgl64.Vec2
	Direction mgl64.Vec2
	Distance  float64
}

// End returns the far end point of the ray.
func (r Ray) End() mgl64.Vec2 {
	if r.Direction.Len() == 0 {
		return r.Origin
	}
	return r.Origin.Add(r.Direction.Normalize().Mul(r.Distance))
}

// Hit is the first intersection reported by a raycast.
type Hit struct {
	Point    mgl64.Vec2
	Normal   mgl64.Vec2
	Distance float64
	Surface  Surface
}

// Surface identifies a piece of level geometry returned by a query.
// Implementations must be comparable; the controller compares surfaces
// with == to tell whether it is still standing on the same platform.
type Surface interface {
	HasTag(tag string) bool
	Position() mgl64.Vec2
}

// SpatialQuery answers overlap and ray questions against level geometry
// restricted to the given layers.
type SpatialQuery interface {
	OverlapBox(box Box, layers []string) (Surface, bool)
	Raycast(ray Ray, layers []string) (Hit, bool)
}

// Body is the physical body moved by a controller. Position is the
// bottom-left corner of the collision box. Velocity is the external
// (impulse) velocity, separate from the controller's own velocity.
type Body interface {
	Bounds() Box
	Position() mgl64.Vec2
	SetPosition(pos mgl64.Vec2)
	MovePosition(delta mgl64.Vec2)
	Velocity() mgl64.Vec2
	SetVelocity(v mgl64.Vec2)
	ApplyImpulse(impulse mgl64.Vec2)
}

// frictionReporter is implemented by bodies that expose a surface
// material friction.
type frictionReporter interface {
	SurfaceFriction() float64
}
