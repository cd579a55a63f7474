package physics

import (
	"testing"

	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var characterSize = mgl64.Vec2{0.8, 1.6}

func TestBodyBounds(t *testing.T) {
	s, _ := newTestSpace()
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	assert.Equal(t, mgl64.Vec2{5, 1}, b.Position())
	bounds := b.Bounds()
	assert.InDelta(t, 5.4, bounds.Center.X(), 1e-9)
	assert.InDelta(t, 1.8, bounds.Center.Y(), 1e-9)
	assert.InDelta(t, 0.8, bounds.Size.X(), 1e-9)
	assert.InDelta(t, 1.6, bounds.Size.Y(), 1e-9)
}

func TestBodyLandsOnFloor(t *testing.T) {
	s, _ := newTestSpace()
	b := s.NewBody(mgl64.Vec2{5, 2}, characterSize)
	b.SetVelocity(mgl64.Vec2{0, -4})

	b.MovePosition(mgl64.Vec2{0, -3})

	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
	assert.Equal(t, 0.0, b.Velocity().Y())
}

func TestBodySlidesAlongFloor(t *testing.T) {
	s, _ := newTestSpace()
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	b.MovePosition(mgl64.Vec2{1, 0})

	assert.InDelta(t, 6, b.Position().X(), 1e-9)
	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
}

func TestBodyStopsAtWall(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(8, 1, 1, 5, tags.ResolvSolid)
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)
	b.SetVelocity(mgl64.Vec2{6, 1})

	b.MovePosition(mgl64.Vec2{5, 0})

	assert.InDelta(t, 7.2, b.Position().X(), 1e-9)
	assert.Equal(t, mgl64.Vec2{0, 1}, b.Velocity())
}

func TestBodyStopsAtCeiling(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(4, 3, 4, 1, tags.ResolvSolid)
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	b.MovePosition(mgl64.Vec2{0, 1})

	assert.InDelta(t, 1.4, b.Position().Y(), 1e-9)
}

func TestBodyDoesNotTunnelThroughThinWall(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(7, 1, 0.1, 5, tags.ResolvSolid)
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	b.MovePosition(mgl64.Vec2{4, 0})

	assert.InDelta(t, 6.2, b.Position().X(), 1e-9)
}

func TestBodyClimbsRamp(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)
	b := s.NewBody(mgl64.Vec2{9, 1}, characterSize)

	for range 10 {
		b.MovePosition(mgl64.Vec2{0.1, 0})
	}

	assert.InDelta(t, 10, b.Position().X(), 1e-6)
	assert.InDelta(t, 1.8, b.Position().Y(), 1e-6)
}

func TestBodyBlockedByRampHighSide(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)
	b := s.NewBody(mgl64.Vec2{12.5, 1}, characterSize)

	b.MovePosition(mgl64.Vec2{-1, 0})

	assert.InDelta(t, 12, b.Position().X(), 1e-9)
	assert.InDelta(t, 1, b.Position().Y(), 1e-9)
}

func TestBodyLandsOnRamp(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)
	b := s.NewBody(mgl64.Vec2{10.5, 4}, characterSize)

	b.MovePosition(mgl64.Vec2{0, -3})

	assert.InDelta(t, 2.3, b.Position().Y(), 1e-9)
}

func TestBodyIgnoresNonBlockingTags(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(7, 1, 1, 5, tags.ResolvDeadZone)
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	b.MovePosition(mgl64.Vec2{3, 0})

	assert.InDelta(t, 8, b.Position().X(), 1e-9)
}

func TestBodyImpulseUsesMass(t *testing.T) {
	s, _ := newTestSpace()
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize, WithMass(2), WithFriction(0.3))

	b.ApplyImpulse(mgl64.Vec2{4, -2})

	assert.Equal(t, mgl64.Vec2{2, -1}, b.Velocity())
	assert.Equal(t, 2.0, b.Mass())
	assert.Equal(t, 0.3, b.SurfaceFriction())
}

func TestRemoveBody(t *testing.T) {
	s, _ := newTestSpace()
	b := s.NewBody(mgl64.Vec2{5, 1}, characterSize)

	s.RemoveBody(b)

	assert.NotContains(t, s.Resolv().Objects(), b.Object())
}

func TestBodyFollowsRampDown(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)
	b := s.NewBody(mgl64.Vec2{10.5, 2.3}, characterSize)

	for range 10 {
		b.MovePosition(mgl64.Vec2{-0.1, 0})
	}

	assert.InDelta(t, 9.5, b.Position().X(), 1e-6)
	assert.InDelta(t, 1.3, b.Position().Y(), 1e-6)
}

func TestBodyLeavesRampWhenAirborne(t *testing.T) {
	s, _ := newTestSpace()
	s.AddRect(10, 1, 2, 2, tags.ResolvRamp, tags.Slope45UpRight)
	b := s.NewBody(mgl64.Vec2{10.5, 2.5}, characterSize)

	b.MovePosition(mgl64.Vec2{-0.1, 0})

	assert.InDelta(t, 2.5, b.Position().Y(), 1e-9)
}
