// Package tap owns the routing table between pour points and liquid sources
// and the per-output dispensing state.
//
// All operations are total: invalid combinations such as a mixer switch on a
// color output or disconnecting an unrouted output are silent no-ops.
package tap

import (
	"time"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// State is the routing table plus output registry
type State struct {
	connections map[DrinkOutput]DrinkInput
	outputs     map[DrinkOutput]*OutputState
}

// NewState creates the default bar: three colored outputs and two mixers, nothing routed
func NewState() *State {
	s := &State{
		connections: make(map[DrinkOutput]DrinkInput, len(Outputs)),
		outputs:     make(map[DrinkOutput]*OutputState, len(Outputs)),
	}
	s.outputs[Color1] = newColorOutput(core.HSL(parameter.HueColor1, parameter.BaseSaturation, parameter.BaseLightness))
	s.outputs[Color2] = newColorOutput(core.HSL(parameter.HueColor2, parameter.BaseSaturation, parameter.BaseLightness))
	s.outputs[Color3] = newColorOutput(core.HSL(parameter.HueColor3, parameter.BaseSaturation, parameter.BaseLightness))
	s.outputs[OutputMixer1] = newMixerOutput()
	s.outputs[OutputMixer2] = newMixerOutput()
	return s
}

// MakeConnection routes output to input, unrouting whichever output held input before
func (s *State) MakeConnection(output DrinkOutput, input DrinkInput) {
	if _, ok := s.outputs[output]; !ok {
		return
	}
	for o, in := range s.connections {
		if in == input {
			delete(s.connections, o)
		}
	}
	s.connections[output] = input
}

// Disconnect clears the route of output
func (s *State) Disconnect(output DrinkOutput) {
	delete(s.connections, output)
}

// Connection returns the input output is routed to
func (s *State) Connection(output DrinkOutput) (DrinkInput, bool) {
	in, ok := s.connections[output]
	return in, ok
}

// DropPressed queues a single manual pour, saturating at MaxPendingPresses
func (s *State) DropPressed(output DrinkOutput) {
	if o, ok := s.outputs[output]; ok {
		o.press()
	}
}

// OutputSwitch sets the continuous pour flag
func (s *State) OutputSwitch(on bool, output DrinkOutput) {
	if o, ok := s.outputs[output]; ok {
		o.On = on
	}
}

// MixerSwitch sets the blend flag, no-op on color outputs
func (s *State) MixerSwitch(on bool, output DrinkOutput) {
	if o, ok := s.outputs[output]; ok && o.Kind == KindMixer {
		o.Mixer.BlendOn = on
	}
}

// SetLightness sets the lightness offset of a color output, no-op on mixers
func (s *State) SetLightness(output DrinkOutput, light float64) {
	o, ok := s.outputs[output]
	if !ok || o.Kind != KindColor {
		return
	}
	// Offset keeps the final HSL lightness inside [0,1]
	lo, hi := -parameter.BaseLightness, 1-parameter.BaseLightness
	if light < lo {
		light = lo
	}
	if light > hi {
		light = hi
	}
	o.Color.Light = light
}

// AdjustLightness shifts the lightness offset of a color output by delta
func (s *State) AdjustLightness(output DrinkOutput, delta float64) {
	if o, ok := s.outputs[output]; ok && o.Kind == KindColor {
		s.SetLightness(output, o.Color.Light+delta)
	}
}

// FeedMixer pours a color into the mixer fed by input
// Returns false when input is not a mixer inlet or the queue is full
func (s *State) FeedMixer(input DrinkInput, c core.Color) bool {
	output, ok := input.MixerOutput()
	if !ok {
		return false
	}
	return s.outputs[output].Mixer.push(c)
}

// Tick advances all debounce timers
func (s *State) Tick(dt time.Duration) {
	for _, o := range s.outputs {
		o.Tick(dt)
	}
}

// Output returns the state of an output
func (s *State) Output(output DrinkOutput) *OutputState {
	return s.outputs[output]
}

// OutputFor returns the state of the output currently routed to input, nil if unrouted
func (s *State) OutputFor(input DrinkInput) *OutputState {
	for o, in := range s.connections {
		if in == input {
			return s.outputs[o]
		}
	}
	return nil
}

// SourceOf returns the output currently routed to input
func (s *State) SourceOf(input DrinkInput) (DrinkOutput, bool) {
	for o, in := range s.connections {
		if in == input {
			return o, true
		}
	}
	return 0, false
}
