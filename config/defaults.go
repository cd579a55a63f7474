package config

import "github.com/go-gl/mathgl/mgl64"

// Default returns the stock controller tuning.
func Default() ControllerConfig {
	return ControllerConfig{
		GroundCheck: GroundCheckConfig{
			Layers:  []string{"solid", "ramp"},
			AutoFit: true,
		},
		Movement: MovementConfig{
			Enabled:                true,
			GroundSpeed:            5,
			ApexSpeed:              7,
			ApexSpeedThreshold:     10,
			Acceleration:           10,
			Deceleration:           10,
			InstantDirectionChange: true,
			InputDeadzone:          0.1,
		},
		ExternalForces: ExternalForcesConfig{
			Friction: 1.25,
		},
		Slope: SlopeConfig{
			Enabled:       true,
			MaxAngle:      10,
			SlideSpeed:    6,
			CheckDistance: 0.6,
		},
		Jump: JumpConfig{
			Gravity:                  -20,
			JumpForce:                2.5,
			DownGravityMultiplier:    1.25,
			MaxFallSpeed:             -10,
			ApexZeroGravityThreshold: 0.4,
			AirJumps:                 1,
			GroundStickVelocity:      -0.2,
			BufferTime:               0.1,
		},
		WallJump: WallJumpConfig{
			Enabled:        true,
			AutoFit:        true,
			GripFallSpeed:  2,
			LaunchForce:    8,
			RefillAllJumps: true,
		},
		Dash: DashConfig{
			Enabled:    true,
			Force:      50,
			Cooldown:   0.6,
			AirDashes:  1,
			BufferTime: 0.1,
		},
		Step: StepConfig{
			Enabled: true,
			AutoFit: true,
		},
		TopEdge: TopEdgeConfig{
			Enabled: true,
			AutoFit: true,
		},
		MovingPlatform: MovingPlatformConfig{
			Tag: "moving_platform",
		},
	}
}

func init() {
	Controller = Default()

	Sandbox = SandboxConfig{
		Width:         640,
		Height:        360,
		TickRate:      60,
		TileSize:      16,
		Zoom:          2,
		CellSize:      16,
		Level:         "sandbox",
		CharacterSize: mgl64.Vec2{0.8, 1.6},
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.8,
		JumpScaleY: 1.2,
		LandScaleX: 1.2,
		LandScaleY: 0.8,
		DashScaleX: 1.3,
		DashScaleY: 0.85,
		LerpSpeed:  0.15,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      2,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
		ShakeIntensity:          3,
		ShakeFrames:             8,
	}
}
