package config

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionToggleDebug
	ActionRespawn
	ActionSaveTuning
	ActionNextLevel
	ActionCount // Must be last - used for array sizing
)
