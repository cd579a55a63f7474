package config

// PoseID is the visual state of a character, derived from its controller
// every tick. It drives colouring and squash/stretch only.
type PoseID int

const (
	PoseNone PoseID = iota
	Idle
	Running
	Jumping
	Falling
	WallSlide
	Dashing
)

var poseNames = map[PoseID]string{
	PoseNone:  "none",
	Idle:      "idle",
	Running:   "running",
	Jumping:   "jumping",
	Falling:   "falling",
	WallSlide: "wall_slide",
	Dashing:   "dashing",
}

func (p PoseID) String() string {
	if name, ok := poseNames[p]; ok {
		return name
	}
	return "unknown"
}
