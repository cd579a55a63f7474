// Package controller implements a deterministic per-tick 2D character
// movement integrator.
//
// A Controller owns one character's kinematic state. Every fixed step the
// host writes the raw input with SetInput, forwards button edges through
// OnJumpPressed and OnDashPressed, and calls Tick. Tick senses ground and
// walls through a SpatialQuery, integrates gravity, jumps, dashes and the
// step, ledge, slope and platform assists, and moves the Body. Discrete
// events are delivered synchronously to listeners registered with On.
package controller
