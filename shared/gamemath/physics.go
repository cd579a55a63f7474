package gamemath

import "math"

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Clamp constrains value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt constrains value to the range [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp interpolates from a to b by t, with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Deadzone zeroes values whose magnitude is below threshold.
func Deadzone(v, threshold float64) float64 {
	if v > -threshold && v < threshold {
		return 0
	}
	return v
}

// JumpVelocity returns the launch speed that reaches height under gravity.
// The sign of gravity is ignored.
func JumpVelocity(height, gravity float64) float64 {
	if height <= 0 {
		return 0
	}
	return math.Sqrt(2 * height * math.Abs(gravity))
}

// ApexDeadZone returns 0 when vy lies strictly inside (-threshold, threshold).
func ApexDeadZone(vy, threshold float64) float64 {
	if vy > -threshold && vy < threshold {
		return 0
	}
	return vy
}

// Damp divides v by friction. Friction values at or below 1 leave v unchanged.
func Damp(v, friction float64) float64 {
	if friction <= 1 {
		return v
	}
	return v / friction
}
