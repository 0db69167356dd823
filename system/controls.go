package system

import (
	"log"

	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/input"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// ControlsSystem applies input actions to the routing table and the virtual clock
type ControlsSystem struct {
	world *engine.World

	enabled bool
}

// NewControlsSystem creates the controls system
func NewControlsSystem(world *engine.World) engine.System {
	s := &ControlsSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *ControlsSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *ControlsSystem) Name() string {
	return "controls"
}

// Priority returns the system's priority
func (s *ControlsSystem) Priority() int {
	return parameter.PriorityControls
}

// EventTypes returns the event types ControlsSystem handles
func (s *ControlsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventInputAction,
	}
}

// HandleEvent processes one control action
func (s *ControlsSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	payload, ok := ev.Payload.(*event.InputActionPayload)
	if !ok {
		return
	}

	res := s.world.Resources
	a := payload.Action
	if a.IsClock() {
		s.applyClock(a)
		return
	}

	// Game over freezes the bar, only clock and host actions remain
	if res.Level.State.IsGameOver() {
		return
	}
	res.Controls.Apply(a, res.Tap)
}

func (s *ControlsSystem) applyClock(a input.Action) {
	clock := s.world.Resources.Clock
	switch a {
	case input.ActionPause:
		clock.TogglePause()
		log.Printf("clock paused=%v", clock.IsPaused())
	case input.ActionSlower:
		clock.SetScale(clock.Scale() / 2)
	case input.ActionFaster:
		clock.SetScale(clock.Scale() * 2)
	}
}

// Update implements System interface (event driven)
func (s *ControlsSystem) Update() {}
