package systems

import (
	"image/color"

	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid    = color.RGBA{100, 100, 100, 255} // Grey
	debugRamp     = color.RGBA{0, 255, 255, 255}   // Cyan
	debugPlatform = color.RGBA{255, 200, 0, 255}
	debugDeadZone = color.RGBA{255, 0, 0, 255}
	debugBody     = color.RGBA{0, 0, 255, 255}
	debugGround   = color.RGBA{0, 255, 0, 255}
	debugWall     = color.RGBA{255, 0, 255, 255}
	debugRay      = color.RGBA{255, 255, 0, 255}
	debugRayHit   = color.RGBA{255, 120, 0, 255}
)

// DrawDebug outlines every surface in the physics space and each
// character's sensor boxes and rays.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	v, ok := currentView(ecs, width, height)
	if !ok {
		return // No camera yet
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, s := range space.Surfaces() {
		r := s.Rect()
		if !v.visible(r.Min, r.Size()) {
			continue
		}

		// Determine color based on tags
		c := debugSolid
		switch {
		case s.HasTag(tags.ResolvDeadZone):
			c = debugDeadZone
		case s.HasTag(tags.ResolvMovingPlatform):
			c = debugPlatform
		case s.HasTag(tags.ResolvRamp):
			c = debugRamp
		}
		drawOutline(screen, v, s.Vertices(), c)
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		drawOutline(screen, v, character.Body.Rect().Vertices(), debugBody)

		g := character.Controller.Geometry()
		drawBox(screen, v, g.GroundBox, debugGround)
		drawBox(screen, v, g.WallBox, debugWall)

		rays := []controller.Ray{g.StepLower, g.StepUpper, g.SlopeRay}
		rays = append(rays, g.TopEdgeOuter[:]...)
		rays = append(rays, g.TopEdgeInner[:]...)
		layers := character.Controller.Config().GroundCheck.Layers
		for _, ray := range rays {
			c := debugRay
			if _, hit := space.Raycast(ray, layers); hit {
				c = debugRayHit
			}
			drawSegment(screen, v, ray.Origin, ray.End(), c)
		}
	})
}

func drawBox(screen *ebiten.Image, v view, b controller.Box, c color.Color) {
	x, y, w, h := v.rect(b.Center.Sub(b.Size.Mul(0.5)), b.Size)
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}

func drawOutline(screen *ebiten.Image, v view, vertices []mgl64.Vec2, c color.Color) {
	for i := range vertices {
		drawSegment(screen, v, vertices[i], vertices[(i+1)%len(vertices)], c)
	}
}

func drawSegment(screen *ebiten.Image, v view, from, to mgl64.Vec2, c color.Color) {
	x0, y0 := v.toScreen(from)
	x1, y1 := v.toScreen(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
}
