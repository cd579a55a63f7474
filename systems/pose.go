package systems

import (
	"math"

	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/automoto/charmove2d/controller"
)

// derivePose maps the controller's animation-facing outputs to a pose.
func derivePose(c *controller.Controller) cfg.PoseID {
	switch {
	case c.IsWallGripped():
		return cfg.WallSlide
	case !c.IsGrounded() && c.IsFalling():
		return cfg.Falling
	case !c.IsGrounded():
		return cfg.Jumping
	case math.Abs(c.WalkSpeed()) > 0:
		return cfg.Running
	}
	return cfg.Idle
}

// updatePose re-derives the pose unless a held pose is still showing.
func updatePose(character *components.CharacterData, dt float64) {
	if character.PoseHold > 0 {
		character.PoseHold -= dt
		if character.PoseHold > 0 {
			return
		}
		character.PoseHold = 0
	}
	character.Pose = derivePose(character.Controller)
}

// holdPose shows pose for its configured hold time.
func holdPose(character *components.CharacterData, pose cfg.PoseID) {
	character.Pose = pose
	character.PoseHold = cfg.PoseStyles[pose].Hold
}
