package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position   mgl64.Vec2 // world units
	LookAheadX float64    // Current smoothed X offset for look-ahead
	Shake      mgl64.Vec2 // screen pixel offset from the active shake
}

var Camera = donburi.NewComponentType[CameraData]()
