package config

// Render layers, passed to donburi as ecs.LayerID.
const (
	LayerWorld = iota
	LayerOverlay
)
