package tap

import (
	"time"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// OutputKind tags the variant payload of an output
type OutputKind uint8

const (
	KindColor OutputKind = iota
	KindMixer
)

// ColorOutput emits its base color shifted by a lightness offset
type ColorOutput struct {
	Base  core.Color
	Light float64
}

// MixerOutput holds colors poured into a mixer inlet
type MixerOutput struct {
	queue   []core.Color
	BlendOn bool
}

// OutputState is the dispensing state of one output
type OutputState struct {
	pendingPresses int
	pressAvailable core.Timer
	On             bool

	Kind  OutputKind
	Color ColorOutput
	Mixer MixerOutput
}

func newColorOutput(base core.Color) *OutputState {
	return &OutputState{
		pressAvailable: core.NewTimer(parameter.PressDebounce, core.TimerOnce),
		Kind:           KindColor,
		Color:          ColorOutput{Base: base},
	}
}

func newMixerOutput() *OutputState {
	return &OutputState{
		pressAvailable: core.NewTimer(parameter.PressDebounce, core.TimerOnce),
		Kind:           KindMixer,
		Mixer:          MixerOutput{queue: make([]core.Color, 0, parameter.MixerCapacity)},
	}
}

// PendingPresses returns queued manual pours
func (o *OutputState) PendingPresses() int {
	return o.pendingPresses
}

// HasPendingPress reports whether any manual pour is queued
func (o *OutputState) HasPendingPress() bool {
	return o.pendingPresses > 0
}

func (o *OutputState) press() {
	if o.pendingPresses < parameter.MaxPendingPresses {
		o.pendingPresses++
	}
}

// ConsumePress returns true if a press was available, false if still waiting on the debounce timer
func (o *OutputState) ConsumePress() bool {
	if o.pressAvailable.Finished() && o.pendingPresses > 0 {
		o.pressAvailable.Reset()
		o.pendingPresses--
		return true
	}
	return false
}

// Tick advances the debounce timer
func (o *OutputState) Tick(dt time.Duration) {
	o.pressAvailable.Tick(dt)
}

// Drop produces the next color to pour, false when a mixer has nothing queued
// A blending mixer combines the two oldest colors into one drop
func (o *OutputState) Drop() (core.Color, bool) {
	switch o.Kind {
	case KindColor:
		return o.Color.Base.Lighter(o.Color.Light), true
	case KindMixer:
		first, ok := o.Mixer.pop()
		if !ok {
			return core.Color{}, false
		}
		if o.Mixer.BlendOn {
			if second, ok := o.Mixer.pop(); ok {
				return first.Mix(second), true
			}
		}
		return first, true
	}
	return core.Color{}, false
}

// Queued returns the number of colors waiting in a mixer, 0 for color outputs
func (o *OutputState) Queued() int {
	if o.Kind != KindMixer {
		return 0
	}
	return len(o.Mixer.queue)
}

func (m *MixerOutput) push(c core.Color) bool {
	if len(m.queue) >= parameter.MixerCapacity {
		return false
	}
	m.queue = append(m.queue, c)
	return true
}

func (m *MixerOutput) pop() (core.Color, bool) {
	if len(m.queue) == 0 {
		return core.Color{}, false
	}
	c := m.queue[0]
	copy(m.queue, m.queue[1:])
	m.queue = m.queue[:len(m.queue)-1]
	return c, true
}
