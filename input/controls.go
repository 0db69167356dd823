package input

import (
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// Controls is the two-step select-then-act layer over the routing table
// With nothing selected the slots pick an output, with an output selected they pick its input
type Controls struct {
	selected    tap.DrinkOutput
	hasSelected bool
}

// Selected returns the output awaiting an action
func (c *Controls) Selected() (tap.DrinkOutput, bool) {
	return c.selected, c.hasSelected
}

// Clear drops the current selection
func (c *Controls) Clear() {
	c.hasSelected = false
}

// Apply executes a routing action against s
// Returns false for actions outside the routing layer
func (c *Controls) Apply(a Action, s *tap.State) bool {
	if a == ActionCancel {
		c.Clear()
		return true
	}

	slot, isSlot := slotIndex(a)

	if !c.hasSelected {
		if isSlot {
			c.selected = tap.Outputs[slot]
			c.hasSelected = true
		}
		return isSlot
	}

	output := c.selected
	switch {
	case isSlot:
		s.MakeConnection(output, tap.Inputs[slot])
	case a == ActionOutputOn:
		s.OutputSwitch(true, output)
	case a == ActionOutputOff:
		s.OutputSwitch(false, output)
	case a == ActionBlendOn:
		s.MixerSwitch(true, output)
	case a == ActionBlendOff:
		s.MixerSwitch(false, output)
	case a == ActionPress:
		s.DropPressed(output)
	case a == ActionDisconnect:
		s.Disconnect(output)
	case a == ActionLighter:
		s.AdjustLightness(output, parameter.LightnessStep)
	case a == ActionDarker:
		s.AdjustLightness(output, -parameter.LightnessStep)
	default:
		return false
	}

	c.Clear()
	return true
}

func slotIndex(a Action) (int, bool) {
	if a >= ActionSlot1 && a <= ActionSlot5 {
		return int(a - ActionSlot1), true
	}
	return 0, false
}
