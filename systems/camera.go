package systems

import (
	"math"

	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pixelsPerUnit is the on-screen size of one world unit.
func pixelsPerUnit() float64 {
	return config.Sandbox.TileSize * config.Sandbox.Zoom
}

// viewportSize returns the visible area in world units.
func viewportSize() mgl64.Vec2 {
	ppu := pixelsPerUnit()
	return mgl64.Vec2{float64(config.Sandbox.Width) / ppu, float64(config.Sandbox.Height) / ppu}
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	characterEntry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(characterEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	levelSize := mgl64.Vec2{levelData.CurrentLevel.Width, levelData.CurrentLevel.Height}
	followCharacter(camera, character, levelSize, viewportSize())
}

// followCharacter eases the camera towards the character's centre plus a
// look-ahead in the facing direction, kept inside the level.
func followCharacter(camera *components.CameraData, character *components.CharacterData, levelSize, viewport mgl64.Vec2) {
	c := character.Controller

	// Only update look-ahead when moving - freeze offset when idle
	if math.Abs(c.MeasuredVelocity().X()) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := c.Facing() * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	center := character.Body.Bounds().Center
	target := mgl64.Vec2{
		clampAxis(center.X()+camera.LookAheadX, levelSize.X(), viewport.X()),
		clampAxis(center.Y(), levelSize.Y(), viewport.Y()),
	}

	camera.Position = camera.Position.Add(target.Sub(camera.Position).Mul(config.Camera.FollowSmoothing))
}

// clampAxis keeps a camera coordinate where the level fills the view. A
// level smaller than the view is centred.
func clampAxis(v, level, view float64) float64 {
	if level <= view {
		return level / 2
	}
	return math.Max(view/2, math.Min(level-view/2, v))
}

// updateScreenShake sets the shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake = mgl64.Vec2{}
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake = mgl64.Vec2{
		math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity,
		math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity,
	}

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// view maps world coordinates (Y up) to screen pixels (Y down).
type view struct {
	camera mgl64.Vec2
	shake  mgl64.Vec2
	width  float64
	height float64
	scale  float64
}

func newView(camera *components.CameraData, width, height int) view {
	return view{
		camera: camera.Position,
		shake:  camera.Shake,
		width:  float64(width),
		height: float64(height),
		scale:  pixelsPerUnit(),
	}
}

func (v view) toScreen(p mgl64.Vec2) (float32, float32) {
	x := (p.X()-v.camera.X())*v.scale + v.width/2 + v.shake.X()
	y := v.height/2 - (p.Y()-v.camera.Y())*v.scale + v.shake.Y()
	return float32(x), float32(y)
}

// rect returns the screen rectangle (top-left and size) of a world box
// given by its bottom-left corner and size.
func (v view) rect(corner, size mgl64.Vec2) (x, y, w, h float32) {
	x, y = v.toScreen(mgl64.Vec2{corner.X(), corner.Y() + size.Y()})
	return x, y, float32(size.X() * v.scale), float32(size.Y() * v.scale)
}

// visible reports whether a world box intersects the screen.
func (v view) visible(corner, size mgl64.Vec2) bool {
	x, y, w, h := v.rect(corner, size)
	return x+w >= 0 && y+h >= 0 && float64(x) <= v.width && float64(y) <= v.height
}

// currentView returns the view of the camera entity.
func currentView(e *ecs.ECS, width, height int) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	return newView(components.Camera.Get(cameraEntry), width, height), true
}
