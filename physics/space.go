package physics

import (
	"math"
	"slices"

	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// probeMargin widens broad phase queries by one resolv unit, since resolv
// maps an object to the cells covering [X, X+W-1].
const probeMargin = 1

// Space is the spatial query provider used by character controllers. It
// keeps a resolv space for the broad phase and runs exact box, ramp and
// ray tests on the candidates it returns.
//
// The public API works in world units. Resolv objects are stored in level
// pixels, scale pixels per unit.
type Space struct {
	space    *resolv.Space
	probe    *resolv.Object
	scale    float64
	surfaces map[*resolv.Object]*Surface
	order    []*Surface
}

var _ controller.SpatialQuery = (*Space)(nil)

// NewSpace creates a space covering [0,width]x[0,height] world units with
// resolv cells of cellSize pixels. Geometry outside that area is never
// reported by queries.
func NewSpace(width, height float64, cellSize int, scale float64) *Space {
	if cellSize <= 0 {
		cellSize = 16
	}
	if scale <= 0 {
		scale = 1
	}
	rs := resolv.NewSpace(int(math.Ceil(width*scale)), int(math.Ceil(height*scale)), cellSize, cellSize)

	// The probe is never added to the space so it never shows up in
	// other objects' checks.
	probe := resolv.NewObject(0, 0, 0, 0)
	probe.Space = rs

	return &Space{
		space:    rs,
		probe:    probe,
		scale:    scale,
		surfaces: make(map[*resolv.Object]*Surface),
	}
}

// Resolv returns the underlying resolv space.
func (s *Space) Resolv() *resolv.Space { return s.space }

// Scale returns the number of resolv units per world unit.
func (s *Space) Scale() float64 { return s.scale }

// AddRect creates and registers a rectangle of level geometry, given in
// world units.
func (s *Space) AddRect(x, y, w, h float64, tags ...string) *Surface {
	obj := resolv.NewObject(x*s.scale, y*s.scale, w*s.scale, h*s.scale, tags...)
	s.space.Add(obj)

	surface := &Surface{obj: obj, ramp: rampKindOf(obj), scale: s.scale}
	s.surfaces[obj] = surface
	s.order = append(s.order, surface)
	return surface
}

// Remove unregisters a surface.
func (s *Space) Remove(surface *Surface) {
	s.space.Remove(surface.obj)
	delete(s.surfaces, surface.obj)
	s.order = slices.DeleteFunc(s.order, func(o *Surface) bool { return o == surface })
}

// SurfaceOf returns the surface registered for obj.
func (s *Space) SurfaceOf(obj *resolv.Object) (*Surface, bool) {
	surface, ok := s.surfaces[obj]
	return surface, ok
}

// Surfaces returns every registered surface in insertion order.
func (s *Space) Surfaces() []*Surface {
	return slices.Clone(s.order)
}

// candidates returns the surfaces whose cells touch r and carry any of layers.
func (s *Space) candidates(r gamemath.Rect, layers []string) []*Surface {
	if len(layers) == 0 {
		return nil
	}
	s.probe.X = r.Min.X()*s.scale - probeMargin
	s.probe.Y = r.Min.Y()*s.scale - probeMargin
	s.probe.W = r.Width()*s.scale + 2*probeMargin
	s.probe.H = r.Height()*s.scale + 2*probeMargin

	check := s.probe.Check(0, 0, layers...)
	if check == nil {
		return nil
	}
	out := make([]*Surface, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if surface, ok := s.surfaces[obj]; ok {
			out = append(out, surface)
		}
	}
	return out
}

// OverlapBox returns the first surface on layers that strictly intersects box.
func (s *Space) OverlapBox(box controller.Box, layers []string) (controller.Surface, bool) {
	r := gamemath.RectFromCenter(box.Center, box.Size)
	for _, surface := range s.candidates(r, layers) {
		if surface.overlaps(r) {
			return surface, true
		}
	}
	return nil, false
}

// Raycast returns the closest surface on layers whose boundary faces the ray.
func (s *Space) Raycast(ray controller.Ray, layers []string) (controller.Hit, bool) {
	if ray.Distance <= 0 || ray.Direction.Len() == 0 {
		return controller.Hit{}, false
	}
	end := ray.End()
	bounds := gamemath.Rect{
		Min: mgl64.Vec2{math.Min(ray.Origin.X(), end.X()), math.Min(ray.Origin.Y(), end.Y())},
		Max: mgl64.Vec2{math.Max(ray.Origin.X(), end.X()), math.Max(ray.Origin.Y(), end.Y())},
	}

	best := controller.Hit{Distance: math.Inf(1)}
	found := false
	for _, surface := range s.candidates(bounds, layers) {
		h, ok := gamemath.RayPolygon(ray.Origin, ray.Direction, ray.Distance, surface.Vertices())
		if !ok || h.Distance >= best.Distance {
			continue
		}
		best = controller.Hit{Point: h.Point, Normal: h.Normal, Distance: h.Distance, Surface: surface}
		found = true
	}
	return best, found
}
