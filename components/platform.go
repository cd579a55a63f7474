package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// minLegDuration keeps zero-length legs from producing a zero duration tween.
const minLegDuration = 1e-3

// PlatformData drives a moving platform along its waypoints, looping from
// the last back to the first. Each leg is a 0..1 tween between two
// consecutive waypoints.
type PlatformData struct {
	Waypoints []mgl64.Vec2
	Speed     float64 // world units per second
	Leg       int     // index of the waypoint the current leg starts from
	Tween     *gween.Tween
}

// StartLeg begins the leg leaving waypoint leg (wrapped).
func (p *PlatformData) StartLeg(leg int) {
	n := len(p.Waypoints)
	if n < 2 || p.Speed <= 0 {
		p.Tween = nil
		return
	}
	p.Leg = leg % n
	from, to := p.Waypoints[p.Leg], p.Waypoints[(p.Leg+1)%n]
	duration := math.Max(to.Sub(from).Len()/p.Speed, minLegDuration)
	p.Tween = gween.New(0, 1, float32(duration), ease.Linear)
}

// LegEnds returns the endpoints of the current leg.
func (p *PlatformData) LegEnds() (from, to mgl64.Vec2) {
	n := len(p.Waypoints)
	return p.Waypoints[p.Leg], p.Waypoints[(p.Leg+1)%n]
}

var Platform = donburi.NewComponentType[PlatformData]()
