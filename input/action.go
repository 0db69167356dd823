package input

// Action is one logical control action
type Action uint8

const (
	ActionNone Action = iota

	// Select-then-act slots, meaning depends on whether an output is selected
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5

	// Acting on the selected output
	ActionOutputOn
	ActionOutputOff
	ActionBlendOn
	ActionBlendOff
	ActionPress
	ActionDisconnect
	ActionLighter
	ActionDarker
	ActionCancel

	// Clock
	ActionPause
	ActionSlower
	ActionFaster

	// Host
	ActionRestart
	ActionToggleMute
	ActionQuit

	actionCount
)

// IsHost reports actions the host loop handles itself instead of publishing
func (a Action) IsHost() bool {
	return a == ActionRestart || a == ActionToggleMute || a == ActionQuit
}

// IsClock reports actions that drive the virtual clock
func (a Action) IsClock() bool {
	return a == ActionPause || a == ActionSlower || a == ActionFaster
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}
