package systems

import (
	"image"
	"image/color"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/physics"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor     = color.RGBA{R: 70, G: 74, B: 90, A: 255}
	rampColor     = color.RGBA{R: 90, G: 96, B: 116, A: 255}
	platformColor = color.RGBA{R: 160, G: 120, B: 60, A: 255}
	deadZoneColor = color.RGBA{R: 120, G: 20, B: 20, A: 90}
	skyColor      = color.RGBA{R: 24, G: 26, B: 36, A: 255}
)

// Source for untextured triangles; created on first use.
var whiteSubImage *ebiten.Image

func triangleSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawLevel renders walls, ramps, moving platforms and dead zones.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	v, ok := currentView(ecs, width, height)
	if !ok {
		return
	}

	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		drawSurfaceRect(screen, v, components.Object.Get(e).Surface, deadZoneColor)
	})
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		drawSurfaceRect(screen, v, components.Object.Get(e).Surface, wallColor)
	})
	tags.Ramp.Each(ecs.World, func(e *donburi.Entry) {
		drawRamp(screen, v, components.Object.Get(e).Surface)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawSurfaceRect(screen, v, components.Object.Get(e).Surface, platformColor)
	})
}

func drawSurfaceRect(screen *ebiten.Image, v view, s *physics.Surface, c color.Color) {
	r := s.Rect()
	if !v.visible(r.Min, r.Size()) {
		return
	}
	x, y, w, h := v.rect(r.Min, r.Size())
	vector.FillRect(screen, x, y, w, h, c, false)
}

// drawRamp fills the solid triangle of a ramp tile.
func drawRamp(screen *ebiten.Image, v view, s *physics.Surface) {
	r := s.Rect()
	if !v.visible(r.Min, r.Size()) {
		return
	}
	drawPolygon(screen, v, s.Vertices(), rampColor)
}

// drawPolygon fills a convex polygon as a triangle fan.
func drawPolygon(screen *ebiten.Image, v view, vertices []mgl64.Vec2, c color.RGBA) {
	if len(vertices) < 3 {
		return
	}
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255

	vs := make([]ebiten.Vertex, len(vertices))
	for i, p := range vertices {
		x, y := v.toScreen(p)
		vs[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	is := make([]uint16, 0, 3*(len(vertices)-2))
	for i := 1; i < len(vertices)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vs, is, triangleSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawCharacters renders every character as a box coloured by its pose,
// scaled around the feet by squash/stretch, with a marker on the facing side.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	v, ok := currentView(ecs, width, height)
	if !ok {
		return
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		r := character.Body.Rect()

		sx, sy := squashStretchScale(e)
		size := mgl64.Vec2{r.Width() * sx, r.Height() * sy}
		feet := mgl64.Vec2{r.Center().X(), r.Min.Y()}
		corner := mgl64.Vec2{feet.X() - size.X()/2, feet.Y()}
		if !v.visible(corner, size) {
			return
		}

		style, ok := cfg.PoseStyles[character.Pose]
		if !ok {
			style = cfg.PoseStyles[cfg.Idle]
		}
		fill := color.Color(style.Fill)
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			fill = color.RGBA{
				R: uint8(255 * flash.R),
				G: uint8(255 * flash.G),
				B: uint8(255 * flash.B),
				A: 255,
			}
		}

		x, y, w, h := v.rect(corner, size)
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, style.Outline, false)

		// Eye on the facing side
		eyeW := w / 4
		eyeX := x + w - eyeW - 2
		if character.Controller.Facing() < 0 {
			eyeX = x + 2
		}
		vector.FillRect(screen, eyeX, y+h/5, eyeW, h/8, style.Outline, false)
	})
}
