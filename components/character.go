package components

import (
	"github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/controller"
	"github.com/automoto/charmove2d/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	ID         uuid.UUID
	Controller *controller.Controller
	Body       *physics.Body
	Spawn      mgl64.Vec2 // bottom-left corner used on respawn
	Pose       config.PoseID
	PoseHold   float64 // seconds left before Pose may change
	Respawns   int
}

var Character = donburi.NewComponentType[CharacterData]()
