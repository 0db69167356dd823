package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), ActionSlot3},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPress},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionOutputOn},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionBlendOff},
	}
	for _, tt := range tests {
		if got, ok := kt.Lookup(tt.ev); !ok || got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.ev.Name(), got, tt.want)
		}
	}

	if _, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("unbound rune should miss")
	}
}

func TestLoadKeyConfigMerge(t *testing.T) {
	doc := `
[keys]
Enter = "press"

[runes]
space = "none"
j = "slot_1"
`
	override, err := LoadKeyConfig([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	if kt.Keys[tcell.KeyEnter] != ActionPress {
		t.Error("enter should press")
	}
	if _, ok := kt.Runes[' ']; ok {
		t.Error("none should unbind space")
	}
	if kt.Runes['j'] != ActionSlot1 {
		t.Error("j should select slot 1")
	}
	if kt.Runes['1'] != ActionSlot1 {
		t.Error("untouched defaults must survive")
	}
	if DefaultKeyTable().Runes[' '] != ActionPress {
		t.Error("merge must not mutate the base")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	docs := map[string]string{
		"unknown action":  "[runes]\nq = \"explode\"\n",
		"unknown key":     "[keys]\nNotAKey = \"press\"\n",
		"long rune":       "[runes]\nab = \"press\"\n",
		"unknown section": "[mouse]\nleft = \"press\"\n",
		"malformed":       "[runes\n",
	}
	for name, doc := range docs {
		if _, err := LoadKeyConfig([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for a := ActionNone; a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Errorf("round trip failed for %d", a)
		}
	}
}
