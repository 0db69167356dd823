package system

import (
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
	"github.com/lixenwraith/plug-n-chug/tap"
)

// DispenseSystem emits one drop per routed input each dispense interval
// Tap inputs spawn a falling drop, mixer inputs feed the mixer queue
type DispenseSystem struct {
	world *engine.World

	interval core.Timer

	statPoured *atomic.Int64
	statMixed  *atomic.Int64

	enabled bool
}

// NewDispenseSystem creates the dispenser
func NewDispenseSystem(world *engine.World) engine.System {
	s := &DispenseSystem{world: world}
	s.statPoured = world.Resources.Status.Ints.Get(status.KeyDropsPoured)
	s.statMixed = world.Resources.Status.Ints.Get(status.KeyDropsMixed)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DispenseSystem) Init() {
	s.interval = core.NewTimer(parameter.DispenseInterval, core.TimerRepeating)
	s.enabled = true
}

// Name returns system's name
func (s *DispenseSystem) Name() string {
	return "dispense"
}

// Priority returns the system's priority
func (s *DispenseSystem) Priority() int {
	return parameter.PriorityDispense
}

// EventTypes returns the event types DispenseSystem handles
func (s *DispenseSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *DispenseSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update pours once per interval crossed, a long frame pours several rounds
func (s *DispenseSystem) Update() {
	if !s.enabled {
		return
	}
	res := s.world.Resources
	if res.Level.State.IsGameOver() {
		return
	}

	s.interval.Tick(res.Time.VirtualDelta)
	for range s.interval.TimesFinished() {
		s.pour()
	}
}

// pour runs one dispense round over every routed input
func (s *DispenseSystem) pour() {
	res := s.world.Resources
	for _, input := range tap.Inputs {
		out := res.Tap.OutputFor(input)
		if out == nil {
			continue
		}
		// Press is consumed first so a queued press is spent even while the flag is on
		if !out.ConsumePress() && !out.On {
			continue
		}
		c, ok := out.Drop()
		if !ok {
			continue
		}

		if input.IsMixer() {
			if res.Tap.FeedMixer(input, c) {
				s.statMixed.Add(1)
			}
			continue
		}
		s.spawnDrop(input, c)
	}
}

func (s *DispenseSystem) spawnDrop(input tap.DrinkInput, c core.Color) {
	w := s.world
	var tapEntity core.Entity
	found := false
	for _, e := range w.Components.Tap.GetAllEntities() {
		if t, ok := w.Components.Tap.GetComponent(e); ok && t.Input == input {
			tapEntity, found = e, true
			break
		}
	}
	if !found {
		return
	}

	x, y := w.WorldPosition(tapEntity)
	y -= parameter.DropSpawnOffset
	vx := w.Resources.Rand.Float64()*2*parameter.DropJitterX - parameter.DropJitterX

	drop := engine.With(
		w.NewEntity().At(x, y),
		w.Components.Drop, component.DropComponent{Color: c, Input: input},
	).Build()

	w.PushEvent(event.EventDropSpawned, &event.DropSpawnedPayload{
		Entity:    drop,
		Input:     input,
		Color:     c,
		X:         x,
		Y:         y,
		VelocityX: vx,
	})
	s.statPoured.Add(1)
}
