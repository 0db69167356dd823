package system

import (
	"log"

	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// OrderTimerSystem counts down active orders and fails the ones that run out
type OrderTimerSystem struct {
	world *engine.World

	enabled bool
}

// NewOrderTimerSystem creates the order countdown
func NewOrderTimerSystem(world *engine.World) engine.System {
	s := &OrderTimerSystem{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *OrderTimerSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *OrderTimerSystem) Name() string {
	return "order_timer"
}

// Priority returns the system's priority
func (s *OrderTimerSystem) Priority() int {
	return parameter.PriorityOrderTimer
}

// EventTypes returns the event types OrderTimerSystem handles
func (s *OrderTimerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *OrderTimerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update ticks every countdown then sweeps status bars against their order
func (s *OrderTimerSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	if w.Resources.Level.State.IsGameOver() {
		return
	}
	dt := w.Resources.Time.DeltaTime

	for _, e := range w.Components.ActiveOrder.GetAllEntities() {
		active, ok := w.Components.ActiveOrder.GetComponent(e)
		if !ok {
			continue
		}
		active.Order.Remaining.Tick(dt)
		w.Components.ActiveOrder.SetComponent(e, active)
	}

	for _, bar := range w.Components.StatusBar.GetAllEntities() {
		cup, ok := w.Parent(bar)
		if !ok {
			continue
		}
		active, ok := w.Components.ActiveOrder.GetComponent(cup)
		if !ok {
			continue
		}

		if active.Order.Remaining.Finished() {
			c, _ := w.Components.Cup.GetComponent(cup)
			tapEntity, _ := w.Parent(cup)
			w.PushEvent(event.EventOrderFailed, &event.OrderPayload{
				Recipe: active.Order.Recipe.Name,
				Size:   active.Order.Size.String(),
				Input:  c.Input,
				Reason: "timeout",
			})
			removeCup(w, cup)
			reopenTap(w, tapEntity)
			log.Printf("order timed out: %s %s at %s", active.Order.Size, active.Order.Recipe.Name, c.Input)
			continue
		}

		sb, ok := w.Components.StatusBar.GetComponent(bar)
		if !ok {
			continue
		}
		sb.Percent = 1 - active.Order.Remaining.Fraction()
		w.Components.StatusBar.SetComponent(bar, sb)
	}
}
