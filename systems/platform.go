package systems

import (
	"github.com/automoto/charmove2d/components"
	"github.com/automoto/charmove2d/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every patrolling platform. It runs before
// UpdateCharacters so anchored characters follow in the same frame.
func UpdatePlatforms(ecs *ecs.ECS) {
	dt := TickSeconds()
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		if platform.Tween == nil {
			return
		}
		obj := components.Object.Get(e)
		obj.SetPosition(stepPlatform(platform, dt))
	})
}

// stepPlatform advances the platform's leg tween by dt and returns the
// new position. Finishing a leg starts the next one.
func stepPlatform(p *components.PlatformData, dt float64) mgl64.Vec2 {
	from, to := p.LegEnds()
	progress, finished := p.Tween.Update(float32(dt))
	pos := from.Add(to.Sub(from).Mul(float64(progress)))
	if finished {
		p.StartLeg(p.Leg + 1)
		return to
	}
	return pos
}
