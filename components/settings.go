package components

import "github.com/yohamta/donburi"

// SettingsData holds sandbox toggles changed at runtime.
type SettingsData struct {
	Debug  bool // draw sensing geometry and collision objects
	Status string
	// Frames left to show Status.
	StatusFrames int
}

var Settings = donburi.NewComponentType[SettingsData]()
