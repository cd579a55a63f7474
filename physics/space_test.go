package physics

import (
	"testing"

	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solidLayers = []string{tags.ResolvSolid, tags.ResolvRamp}

// newTestSpace returns a 40x20 space with a floor whose top is at y=1.
func newTestSpace() (*Space, *Surface) {
	s := NewSpace(40, 20, 16, 16)
	floor := s.AddRect(0, 0, 40, 1, tags.ResolvSolid)
	return s, floor
}

func box(cx, cy, w, h float64) controller.Box {
	return controller.Box{Center: mgl64.Vec2{cx, cy}, Size: mgl64.Vec2{w, h}}
}

func TestOverlapBoxSolid(t *testing.T) {
	s, floor := newTestSpace()

	got, ok := s.OverlapBox(box(5, 1.05, 0.4, 0.2), solidLayers)
	require.True(t, ok)
	assert.Same(t, floor, got)

	_, ok = s.OverlapBox(box(5, 1.2, 0.4, 0.2), solidLayers)
	assert.False(t, ok)

	_, ok = s.OverlapBox(box(5, 1.1, 0.4, 0.2), solidLayers)
	assert.False(t, ok, "touching is not overlapping")
}

func TestOverlapBoxFiltersLayers(t *testing.T) {
	s, _ := newTestSpace()

	_, ok := s.OverlapBox(box(5, 1, 0.4, 0.2), []string{tags.ResolvRamp})
	assert.False(t, ok)

	_, ok = s.OverlapBox(box(5, 1, 0.4, 0.2), nil)
	assert.False(t, ok)
}

func TestOverlapBoxRampUsesSurface(t *testing.T) {
	s, _ := newTestSpace()
	ramp := s.AddRect(10, 1, 1, 1, tags.ResolvRamp, tags.Slope45UpRight)

	got, ok := s.OverlapBox(box(10.2, 1.1, 0.2, 0.2), []string{tags.ResolvRamp})
	require.True(t, ok)
	assert.Same(t, ramp, got)

	// Inside the bounding box but above the slope.
	_, ok = s.OverlapBox(box(10.2, 1.8, 0.2, 0.2), []string{tags.ResolvRamp})
	assert.False(t, ok)
}

func TestRaycastClosestHit(t *testing.T) {
	s, floor := newTestSpace()
	ledge := s.AddRect(4, 2, 2, 0.5, tags.ResolvSolid)

	hit, ok := s.Raycast(controller.Ray{Origin: mgl64.Vec2{5, 4}, Direction: mgl64.Vec2{0, -1}, Distance: 5}, solidLayers)
	require.True(t, ok)
	assert.Same(t, ledge, hit.Surface)
	assert.InDelta(t, 1.5, hit.Distance, 1e-9)
	assert.InDelta(t, 2.5, hit.Point.Y(), 1e-9)
	assert.InDelta(t, 1, hit.Normal.Y(), 1e-9)

	hit, ok = s.Raycast(controller.Ray{Origin: mgl64.Vec2{8, 4}, Direction: mgl64.Vec2{0, -1}, Distance: 5}, solidLayers)
	require.True(t, ok)
	assert.Same(t, floor, hit.Surface)
	assert.InDelta(t, 3, hit.Distance, 1e-9)
}

func TestRaycastRespectsDistance(t *testing.T) {
	s, _ := newTestSpace()

	_, ok := s.Raycast(controller.Ray{Origin: mgl64.Vec2{5, 4}, Direction: mgl64.Vec2{0, -1}, Distance: 2}, solidLayers)
	assert.False(t, ok)

	_, ok = s.Raycast(controller.Ray{Origin: mgl64.Vec2{5, 4}, Direction: mgl64.Vec2{0, -1}, Distance: 0}, solidLayers)
	assert.False(t, ok)
}

func TestRaycastRampNormal(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)

	hit, ok := s.Raycast(controller.Ray{Origin: mgl64.Vec2{11, 4}, Direction: mgl64.Vec2{0, -1}, Distance: 5}, []string{tags.ResolvRamp})
	require.True(t, ok)
	assert.InDelta(t, 2, hit.Point.Y(), 1e-9)
	assert.Less(t, hit.Normal.X(), 0.0)
	assert.Greater(t, hit.Normal.Y(), 0.0)
}

func TestRemoveSurface(t *testing.T) {
	s, floor := newTestSpace()
	wall := s.AddRect(8, 1, 1, 5, tags.ResolvSolid)
	assert.Equal(t, []*Surface{floor, wall}, s.Surfaces())

	s.Remove(floor)

	_, ok := s.OverlapBox(box(5, 1, 0.4, 0.2), solidLayers)
	assert.False(t, ok)
	_, ok = s.SurfaceOf(floor.Object())
	assert.False(t, ok)
	assert.Equal(t, []*Surface{wall}, s.Surfaces())
}

func TestSurfaceSetPositionMovesQueries(t *testing.T) {
	s, _ := newTestSpace()
	platform := s.AddRect(2, 5, 3, 0.5, tags.ResolvSolid, tags.ResolvMovingPlatform)

	platform.SetPosition(mgl64.Vec2{20, 8})

	assert.Equal(t, mgl64.Vec2{20, 8}, platform.Position())
	_, ok := s.OverlapBox(box(3, 5.25, 0.5, 0.5), solidLayers)
	assert.False(t, ok)
	got, ok := s.OverlapBox(box(21, 8.25, 0.5, 0.5), solidLayers)
	require.True(t, ok)
	assert.Same(t, platform, got)
	assert.True(t, got.HasTag(tags.ResolvMovingPlatform))
}

func TestBodyIsNotASurface(t *testing.T) {
	s := NewSpace(40, 20, 16, 16)
	s.NewBody(mgl64.Vec2{5, 5}, mgl64.Vec2{0.8, 1.6})

	_, ok := s.OverlapBox(box(5.4, 5.8, 1, 1), []string{tags.ResolvCharacter})
	assert.False(t, ok)
}
