package input

// actionNames is the canonical name of every action, used by keymap documents
var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionSlot1:      "slot_1",
	ActionSlot2:      "slot_2",
	ActionSlot3:      "slot_3",
	ActionSlot4:      "slot_4",
	ActionSlot5:      "slot_5",
	ActionOutputOn:   "output_on",
	ActionOutputOff:  "output_off",
	ActionBlendOn:    "blend_on",
	ActionBlendOff:   "blend_off",
	ActionPress:      "press",
	ActionDisconnect: "disconnect",
	ActionLighter:    "lighter",
	ActionDarker:     "darker",
	ActionCancel:     "cancel",
	ActionPause:      "pause",
	ActionSlower:     "slower",
	ActionFaster:     "faster",
	ActionRestart:    "restart",
	ActionToggleMute: "toggle_mute",
	ActionQuit:       "quit",
}

// actionRegistry maps canonical action names to actions
var actionRegistry map[string]Action

func init() {
	actionRegistry = make(map[string]Action, actionCount)
	for a, name := range actionNames {
		actionRegistry[name] = Action(a)
	}
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
