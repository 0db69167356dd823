package system

import (
	"log"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// DifficultySystem promotes the next locked recipe into the ready pool on a fixed interval
type DifficultySystem struct {
	world *engine.World

	interval core.Timer

	enabled bool
}

// NewDifficultySystem creates the difficulty ramp
func NewDifficultySystem(world *engine.World) engine.System {
	s := &DifficultySystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DifficultySystem) Init() {
	s.interval = core.NewTimer(parameter.DifficultyInterval, core.TimerRepeating)
	s.enabled = true
}

// Name returns system's name
func (s *DifficultySystem) Name() string {
	return "difficulty"
}

// Priority returns the system's priority
func (s *DifficultySystem) Priority() int {
	return parameter.PriorityDifficulty
}

// EventTypes returns the event types DifficultySystem handles
func (s *DifficultySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *DifficultySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update promotes one recipe per interval crossing
func (s *DifficultySystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	if res.Level.State.IsGameOver() {
		return
	}

	s.interval.Tick(res.Time.DeltaTime)
	if !s.interval.JustFinished() {
		return
	}

	if r, ok := res.Orders.Catalog.Promote(); ok {
		log.Printf("recipe unlocked: %s (difficulty %d)", r.Name, r.Difficulty)
	}
}
