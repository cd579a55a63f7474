package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Wall      = donburi.NewTag().SetName("Wall")
	Ramp      = donburi.NewTag().SetName("Ramp")
	Platform  = donburi.NewTag().SetName("Platform")
	DeadZone  = donburi.NewTag().SetName("DeadZone")
)

// Resolv tags for physics collision
const (
	ResolvSolid          = "solid"
	ResolvRamp           = "ramp"
	ResolvMovingPlatform = "moving_platform"
	ResolvCharacter      = "character"
	ResolvDeadZone       = "deadzone"

	// Slope type tags
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
