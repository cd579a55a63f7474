package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 100
	hudBarHeight = 6
	hudMargin    = 10
	hudLine      = 14
)

const controlsHint = "Move: arrows/WASD  Jump: Space  Dash: C  Respawn: R  Next level: N  Debug: F1  Save: F5"

var (
	hudBarBackground = color.RGBA{40, 40, 40, 255}
	hudBarFill       = color.RGBA{40, 220, 40, 255}
)

// DrawHUD renders the first character's resources and state in the
// top-left corner, plus the status line and a controls hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if characterEntry, ok := components.Character.First(ecs.World); ok {
		character := components.Character.Get(characterEntry)
		c := character.Controller

		lines := []string{
			fmt.Sprintf("jumps %d  dashes %d", c.JumpCharges(), c.DashCharges()),
			fmt.Sprintf("pose %s  facing %+.0f", character.Pose, c.Facing()),
			fmt.Sprintf("grounded %t  wall %t  platform %t", c.IsGrounded(), c.IsWallGripped(), c.IsAnchored()),
			fmt.Sprintf("vel %+.2f %+.2f", c.MeasuredVelocity().X(), c.MeasuredVelocity().Y()),
			fmt.Sprintf("respawns %d", character.Respawns),
		}
		y := hudMargin
		for _, line := range lines {
			y += hudLine
			text.Draw(screen, line, face, hudMargin, y, cfg.White)
		}

		// Dash cooldown: the bar fills back up as the cooldown runs out
		y += hudLine / 2
		vector.FillRect(screen, hudMargin, float32(y), hudBarWidth, hudBarHeight, hudBarBackground, false)
		vector.FillRect(screen, hudMargin, float32(y), hudBarWidth*cooldownRatio(c.DashCooldown(), c.Config().Dash.Cooldown), hudBarHeight, hudBarFill, false)
	}

	settings := GetOrCreateSettings(ecs)
	if settings.Status != "" {
		bounds := text.BoundString(face, settings.Status)
		text.Draw(screen, settings.Status, face, width-bounds.Dx()-hudMargin, hudMargin+hudLine, cfg.Yellow)
	}

	text.Draw(screen, controlsHint, face, hudMargin, height-hudMargin, cfg.Grey)
}

// cooldownRatio returns how far a cooldown has recovered, from 0 (just
// started) to 1 (ready).
func cooldownRatio(remaining, total float64) float32 {
	if total <= 0 || remaining <= 0 {
		return 1
	}
	if remaining >= total {
		return 0
	}
	return float32(1 - remaining/total)
}
