package config

import "github.com/go-gl/mathgl/mgl64"

// SensingGeometry is the sensor layout derived from a collision shape.
type SensingGeometry struct {
	GroundBoxOffset mgl64.Vec2
	GroundBoxSize   mgl64.Vec2

	WallBoxOffset mgl64.Vec2
	WallBoxSize   mgl64.Vec2

	StepBottomOffsetY float64
	StepCheckDistance float64
	StepDistance      float64
	StepMoveForce     float64

	TopEdgeXOffset       float64
	TopEdgeCheckDistance float64
	TopEdgeDistance      float64
	TopEdgeMoveForce     float64
}

// DeriveSensingGeometry computes sensor boxes and rays from the half-size
// of the character's collision shape. It has no side effects.
func DeriveSensingGeometry(extents mgl64.Vec2) SensingGeometry {
	ex, ey := extents.X(), extents.Y()

	return SensingGeometry{
		GroundBoxOffset: mgl64.Vec2{0, -ey},
		GroundBoxSize:   mgl64.Vec2{ex*2 - 0.025, 0.01},

		WallBoxOffset: mgl64.Vec2{ex + 0.025, 0},
		WallBoxSize:   mgl64.Vec2{0.05, ey * 2 * 0.8},

		StepBottomOffsetY: -ey + 0.01,
		StepCheckDistance: 0.1,
		StepDistance:      ex + 0.05,
		StepMoveForce:     1,

		TopEdgeXOffset:       ex,
		TopEdgeCheckDistance: 0.15,
		TopEdgeDistance:      ey + 0.5,
		TopEdgeMoveForce:     3,
	}
}

// WithAutoFit returns a copy of c where every group that has AutoFit set
// takes its sensor layout from DeriveSensingGeometry(extents).
func (c ControllerConfig) WithAutoFit(extents mgl64.Vec2) ControllerConfig {
	g := DeriveSensingGeometry(extents)

	if c.GroundCheck.AutoFit {
		c.GroundCheck.BoxOffset = g.GroundBoxOffset
		c.GroundCheck.BoxSize = g.GroundBoxSize
	}
	if c.WallJump.AutoFit {
		c.WallJump.BoxOffset = g.WallBoxOffset
		c.WallJump.BoxSize = g.WallBoxSize
	}
	if c.Step.AutoFit {
		c.Step.BottomOffsetY = g.StepBottomOffsetY
		c.Step.CheckDistance = g.StepCheckDistance
		c.Step.Distance = g.StepDistance
		c.Step.MoveForce = g.StepMoveForce
	}
	if c.TopEdge.AutoFit {
		c.TopEdge.XOffset = g.TopEdgeXOffset
		c.TopEdge.CheckDistance = g.TopEdgeCheckDistance
		c.TopEdge.Distance = g.TopEdgeDistance
		c.TopEdge.MoveForce = g.TopEdgeMoveForce
	}
	c.GroundCheck.Layers = append([]string(nil), c.GroundCheck.Layers...)
	return c
}
