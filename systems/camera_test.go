package systems

import (
	"testing"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampAxis(t *testing.T) {
	assert.Equal(t, 5.0, clampAxis(1, 40, 10), "left edge")
	assert.Equal(t, 35.0, clampAxis(39, 40, 10), "right edge")
	assert.Equal(t, 12.0, clampAxis(12, 40, 10))
	assert.Equal(t, 4.0, clampAxis(1, 8, 10), "small levels are centred")
}

func TestCameraFollowsCharacter(t *testing.T) {
	w := newTestWorld(t)
	w.data().Controller.Teleport(mgl64.Vec2{15, 1})

	for i := 0; i < 300; i++ {
		UpdateCamera(w.ecs)
	}

	cameraEntry, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)

	center := w.data().Body.Bounds().Center
	view := viewportSize()
	assert.InDelta(t, center.X(), camera.Position.X(), 1e-3)
	assert.InDelta(t, view.Y()/2, camera.Position.Y(), 1e-3, "clamped to the level bottom")
}

func TestScreenShakeDecays(t *testing.T) {
	w := newTestWorld(t)
	cameraEntry, ok := components.Camera.First(w.ecs.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)

	TriggerScreenShake(w.ecs.World, 4, 3)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))

	// A weaker shake does not override the active one
	TriggerScreenShake(w.ecs.World, 1, 10)
	assert.Equal(t, 4.0, components.ScreenShake.Get(cameraEntry).Intensity)

	UpdateCamera(w.ecs)
	assert.NotEqual(t, mgl64.Vec2{}, camera.Shake)

	UpdateCamera(w.ecs)
	UpdateCamera(w.ecs)
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))

	UpdateCamera(w.ecs)
	assert.Equal(t, mgl64.Vec2{}, camera.Shake)
}

func TestViewFlipsY(t *testing.T) {
	camera := &components.CameraData{Position: mgl64.Vec2{10, 5}}
	v := newView(camera, 640, 360)
	ppu := float32(cfg.Sandbox.TileSize * cfg.Sandbox.Zoom)

	x, y := v.toScreen(mgl64.Vec2{10, 5})
	assert.Equal(t, float32(320), x)
	assert.Equal(t, float32(180), y)

	x, y = v.toScreen(mgl64.Vec2{11, 6})
	assert.Equal(t, 320+ppu, x)
	assert.Equal(t, 180-ppu, y, "up in the world is up on screen")

	rx, ry, rw, rh := v.rect(mgl64.Vec2{10, 5}, mgl64.Vec2{1, 2})
	assert.Equal(t, float32(320), rx)
	assert.Equal(t, 180-2*ppu, ry)
	assert.Equal(t, ppu, rw)
	assert.Equal(t, 2*ppu, rh)

	assert.True(t, v.visible(mgl64.Vec2{10, 5}, mgl64.Vec2{1, 1}))
	assert.False(t, v.visible(mgl64.Vec2{100, 5}, mgl64.Vec2{1, 1}))
}
