package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// GroundCheckConfig describes the box used to detect ground under the feet.
type GroundCheckConfig struct {
	Layers    []string   `yaml:"layers"`     // resolv tags treated as ground
	AutoFit   bool       `yaml:"auto_fit"`   // derive the box from the collision shape
	BoxOffset mgl64.Vec2 `yaml:"box_offset"` // from the shape centre
	BoxSize   mgl64.Vec2 `yaml:"box_size"`
}

// MovementConfig contains horizontal movement tuning.
type MovementConfig struct {
	Enabled                bool    `yaml:"enabled"`
	GroundSpeed            float64 `yaml:"ground_speed"`
	ApexSpeed              float64 `yaml:"apex_speed"`           // air speed near the jump apex
	ApexSpeedThreshold     float64 `yaml:"apex_speed_threshold"` // |vy| at which air speed equals ground speed
	Acceleration           float64 `yaml:"acceleration"`         // smoothed input units per second
	Deceleration           float64 `yaml:"deceleration"`
	InstantDirectionChange bool    `yaml:"instant_direction_change"`
	InputDeadzone          float64 `yaml:"input_deadzone"`
}

// ExternalForcesConfig controls decay of impulse velocity (dash, wall jump).
type ExternalForcesConfig struct {
	Friction float64 `yaml:"friction"` // divisor applied every tick
}

// SlopeConfig controls slope adherence.
type SlopeConfig struct {
	Enabled       bool    `yaml:"enabled"`
	MaxAngle      float64 `yaml:"max_angle"`      // degrees
	SlideSpeed    float64 `yaml:"slide_speed"`    // downward speed forced on slopes
	CheckDistance float64 `yaml:"check_distance"` // probe reach below the feet
}

// JumpConfig contains gravity and jump arc tuning.
type JumpConfig struct {
	Gravity                  float64 `yaml:"gravity"`
	JumpForce                float64 `yaml:"jump_force"` // apex height of a jump
	DownGravityMultiplier    float64 `yaml:"down_gravity_multiplier"`
	MaxFallSpeed             float64 `yaml:"max_fall_speed"` // negative
	ApexZeroGravityThreshold float64 `yaml:"apex_zero_gravity_threshold"`
	AirJumps                 int     `yaml:"air_jumps"`
	GroundStickVelocity      float64 `yaml:"ground_stick_velocity"` // vy while standing
	BufferTime               float64 `yaml:"buffer_time"`
}

// WallJumpConfig contains wall grip and wall jump tuning.
type WallJumpConfig struct {
	Enabled        bool       `yaml:"enabled"`
	AutoFit        bool       `yaml:"auto_fit"`
	BoxOffset      mgl64.Vec2 `yaml:"box_offset"` // X is mirrored by facing
	BoxSize        mgl64.Vec2 `yaml:"box_size"`
	GripFallSpeed  float64    `yaml:"grip_fall_speed"`
	LaunchForce    float64    `yaml:"launch_force"`
	RefillAllJumps bool       `yaml:"refill_all_jumps"`
}

// DashConfig contains dash tuning.
type DashConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Force      float64 `yaml:"force"`
	Cooldown   float64 `yaml:"cooldown"`
	AirDashes  int     `yaml:"air_dashes"`
	BufferTime float64 `yaml:"buffer_time"`
}

// StepConfig describes the step-up sensors.
type StepConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AutoFit       bool    `yaml:"auto_fit"`
	BottomOffsetY float64 `yaml:"bottom_offset_y"`
	CheckDistance float64 `yaml:"check_distance"` // gap between the two rays
	Distance      float64 `yaml:"distance"`       // ray length
	MoveForce     float64 `yaml:"move_force"`
}

// TopEdgeConfig describes the ledge nudge sensors.
type TopEdgeConfig struct {
	Enabled       bool    `yaml:"enabled"`
	AutoFit       bool    `yaml:"auto_fit"`
	XOffset       float64 `yaml:"x_offset"`
	CheckDistance float64 `yaml:"check_distance"`
	Distance      float64 `yaml:"distance"`
	MoveForce     float64 `yaml:"move_force"`
}

// MovingPlatformConfig identifies platform geometry.
type MovingPlatformConfig struct {
	Tag string `yaml:"tag"`
}

// ControllerConfig groups every tuning value of a character controller.
// It is supplied once at construction and never mutated by the controller.
type ControllerConfig struct {
	GroundCheck    GroundCheckConfig    `yaml:"ground_check"`
	Movement       MovementConfig       `yaml:"movement"`
	ExternalForces ExternalForcesConfig `yaml:"external_forces"`
	Slope          SlopeConfig          `yaml:"slope"`
	Jump           JumpConfig           `yaml:"jump"`
	WallJump       WallJumpConfig       `yaml:"wall_jump"`
	Dash           DashConfig           `yaml:"dash"`
	Step           StepConfig           `yaml:"step"`
	TopEdge        TopEdgeConfig        `yaml:"top_edge"`
	MovingPlatform MovingPlatformConfig `yaml:"moving_platform"`
}

// SandboxConfig holds window and world settings for the sandbox.
type SandboxConfig struct {
	Width         int
	Height        int
	TickRate      int     // fixed simulation steps per second
	TileSize      float64 // pixels per world unit in level files
	Zoom          float64 // screen pixels per level pixel
	CellSize      int     // resolv cell size in level pixels
	Level         string  // level name under assets/levels
	CharacterSize mgl64.Vec2
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	DashScaleX float64
	DashScaleY float64
	LerpSpeed  float64 // how fast to return to normal scale
}

// CameraConfig contains sandbox camera follow tuning.
type CameraConfig struct {
	FollowSmoothing         float64 // fraction of the distance covered per frame
	LookAheadDistanceX      float64 // world units ahead of the facing direction
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64 // min |vx| before look-ahead moves
	ShakeIntensity          float64 // pixels, on dash
	ShakeFrames             int
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	DrawSensing bool // Draw sensor boxes and rays
	Verbose     bool // Debug level logging
}

// Global configuration instances
var Controller ControllerConfig
var Sandbox SandboxConfig
var SquashStretch SquashStretchConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
