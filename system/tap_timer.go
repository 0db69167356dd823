package system

import (
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// TapTimerSystem advances the press debounce timers of every output
type TapTimerSystem struct {
	world *engine.World

	enabled bool
}

// NewTapTimerSystem creates the debounce ticker
func NewTapTimerSystem(world *engine.World) engine.System {
	s := &TapTimerSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TapTimerSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *TapTimerSystem) Name() string {
	return "tap_timer"
}

// Priority returns the system's priority
func (s *TapTimerSystem) Priority() int {
	return parameter.PriorityTapTimers
}

// EventTypes returns the event types TapTimerSystem handles
func (s *TapTimerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *TapTimerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update ticks debounce by virtual time
func (s *TapTimerSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	res.Tap.Tick(res.Time.VirtualDelta)
}
