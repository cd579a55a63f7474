package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	minCharges = 1
	maxCharges = 10
)

// LoadYAML decodes a tuning document on top of Default. Keys missing from
// the document keep their default values.
func LoadYAML(r io.Reader) (ControllerConfig, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return ControllerConfig{}, fmt.Errorf("decode controller config: %w", err)
	}
	return c, nil
}

// LoadFile reads a YAML tuning file from disk.
func LoadFile(path string) (ControllerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ControllerConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadYAML(bytes.NewReader(data))
}

// ToYAML encodes c as a tuning document.
func (c ControllerConfig) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode controller config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Normalized clamps charge counts into the supported range.
func (c ControllerConfig) Normalized() ControllerConfig {
	c.Jump.AirJumps = clampCharges(c.Jump.AirJumps)
	c.Dash.AirDashes = clampCharges(c.Dash.AirDashes)
	return c
}

// Validate reports configuration anomalies. None of them stop a
// controller from running; callers are expected to log them.
func (c ControllerConfig) Validate() []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if len(c.GroundCheck.Layers) == 0 {
		warn("ground check has no layers; the character will never be grounded")
	}
	if !c.GroundCheck.AutoFit && (c.GroundCheck.BoxSize.X() <= 0 || c.GroundCheck.BoxSize.Y() <= 0) {
		warn("ground check box has no area (%v)", c.GroundCheck.BoxSize)
	}
	if c.ExternalForces.Friction <= 1 {
		warn("external force friction %.3f is not above 1; impulses will not decay", c.ExternalForces.Friction)
	}
	if c.Jump.Gravity >= 0 {
		warn("gravity %.3f is not negative", c.Jump.Gravity)
	}
	if c.Jump.MaxFallSpeed >= 0 {
		warn("max fall speed %.3f is not negative", c.Jump.MaxFallSpeed)
	}
	if c.Jump.ApexZeroGravityThreshold < 0 {
		warn("apex zero gravity threshold %.3f is negative", c.Jump.ApexZeroGravityThreshold)
	}
	if c.Jump.AirJumps != clampCharges(c.Jump.AirJumps) {
		warn("air jumps %d outside [%d, %d]; clamped", c.Jump.AirJumps, minCharges, maxCharges)
	}
	if c.Dash.AirDashes != clampCharges(c.Dash.AirDashes) {
		warn("air dashes %d outside [%d, %d]; clamped", c.Dash.AirDashes, minCharges, maxCharges)
	}
	if c.MovingPlatform.Tag == "" {
		warn("moving platform tag is empty; platforms will not carry the character")
	}
	return warnings
}

func clampCharges(n int) int {
	if n < minCharges {
		return minCharges
	}
	if n > maxCharges {
		return maxCharges
	}
	return n
}
