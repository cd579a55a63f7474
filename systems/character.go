package systems

import (
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters feeds input to every character controller and ticks it.
// Must run after UpdateInput and UpdatePlatforms, and before UpdateEvents.
func UpdateCharacters(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := TickSeconds()

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		driveCharacter(character, input)
		character.Controller.Tick(dt)
		updatePose(character, dt)
	})
}

// TickSeconds is the fixed simulation step.
func TickSeconds() float64 {
	if cfg.Sandbox.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.Sandbox.TickRate)
}

func driveCharacter(character *components.CharacterData, input *components.InputData) {
	c := character.Controller
	c.SetInput(input.Move)
	if GetAction(input, cfg.ActionJump).JustPressed {
		c.OnJumpPressed()
	}
	if GetAction(input, cfg.ActionDash).JustPressed {
		c.OnDashPressed()
	}
}
