package config

import "image/color"

// PoseStyle describes how a pose is drawn by the sandbox renderer.
type PoseStyle struct {
	Fill    color.RGBA
	Outline color.RGBA
	// Seconds the pose is held after the controller leaves it, so one-tick
	// states like a dash are visible.
	Hold float64
}

// PoseStyles maps each pose to its appearance.
var PoseStyles = map[PoseID]PoseStyle{
	Idle:      {Fill: LightBlue, Outline: White},
	Running:   {Fill: Blue, Outline: White},
	Jumping:   {Fill: LightGreen, Outline: White, Hold: 0.1},
	Falling:   {Fill: DarkBlue, Outline: White},
	WallSlide: {Fill: Orange, Outline: Yellow},
	Dashing:   {Fill: Magenta, Outline: White, Hold: 0.15},
}
