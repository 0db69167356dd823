package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/level"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
)

// LevelSystem feeds failed orders into the level state machine
type LevelSystem struct {
	world *engine.World

	statFailed *atomic.Int64

	enabled bool
}

// NewLevelSystem creates the failure tracker
func NewLevelSystem(world *engine.World) engine.System {
	s := &LevelSystem{world: world}
	s.statFailed = world.Resources.Status.Ints.Get(status.KeyOrdersFailed)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *LevelSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *LevelSystem) Name() string {
	return "level"
}

// Priority returns the system's priority
func (s *LevelSystem) Priority() int {
	return parameter.PriorityLevel
}

// EventTypes returns the event types LevelSystem handles
func (s *LevelSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventOrderFailed,
	}
}

// HandleEvent applies one failure per event, simultaneous failures all count
func (s *LevelSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled || ev.Type != event.EventOrderFailed {
		return
	}

	lvl := s.world.Resources.Level
	if lvl.State.IsGameOver() {
		return
	}

	lvl.State = lvl.State.Next(level.FailedOrder)
	s.statFailed.Add(1)
	log.Printf("level: %s", lvl.State)

	if lvl.State.IsGameOver() {
		s.world.PushEvent(event.EventGameOver, nil)
		s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundGameOver})
	}
}

// Update implements System interface (event driven)
func (s *LevelSystem) Update() {}
