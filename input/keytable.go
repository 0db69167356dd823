package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionOutputOn,
			tcell.KeyDown:   ActionOutputOff,
			tcell.KeyRight:  ActionBlendOn,
			tcell.KeyLeft:   ActionBlendOff,
			tcell.KeyEscape: ActionCancel,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'1': ActionSlot1,
			'2': ActionSlot2,
			'3': ActionSlot3,
			'4': ActionSlot4,
			'5': ActionSlot5,
			' ': ActionPress,
			'x': ActionDisconnect,
			'+': ActionLighter,
			'=': ActionLighter,
			'-': ActionDarker,
			'p': ActionPause,
			'[': ActionSlower,
			']': ActionFaster,
			'r': ActionRestart,
			'm': ActionToggleMute,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.Keys[ev.Key()]
	return a, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}
