package systems

import (
	"github.com/automoto/charmove2d/components"
	cfg "github.com/automoto/charmove2d/config"
	"github.com/yohamta/donburi/ecs"
)

const statusFrames = 120

// GetOrCreateSettings returns the singleton settings component.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.DrawSensing,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay and ages the status message.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if settings.StatusFrames > 0 {
		settings.StatusFrames--
		if settings.StatusFrames == 0 {
			settings.Status = ""
		}
	}
}

// ShowStatus displays msg in the HUD for a couple of seconds.
func ShowStatus(ecs *ecs.ECS, msg string) {
	settings := GetOrCreateSettings(ecs)
	settings.Status = msg
	settings.StatusFrames = statusFrames
}
