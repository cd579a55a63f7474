// Package leveldata provides TMX level parsing for the sandbox.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// All coordinates are world units with the Y axis pointing up. One tile is
// one world unit.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Level holds everything the sandbox builds from a TMX file.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	TileSize  float64 // pixels per world unit in the source map
	Solids    []SolidRect
	Platforms []Platform
	Spawns    []SpawnPoint
	DeadZones []Rect
}

// Rect is an axis-aligned area given by its bottom-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// SolidRect is a run of solid tiles or a single ramp tile.
type SolidRect struct {
	Rect
	SlopeType string // "", "45_up_right", "45_up_left"
}

// Platform is a moving platform that patrols its waypoints at Speed.
// Waypoints are positions of the platform's bottom-left corner; the first
// is the starting position.
type Platform struct {
	Rect
	Name      string
	Speed     float64
	Waypoints []mgl64.Vec2
}

// SpawnPoint is where a character's feet are placed.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
