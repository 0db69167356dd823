package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
)

// FillSystem stacks drops caught by a fill sensor and evaluates the cup on overflow
type FillSystem struct {
	world *engine.World

	statServed *atomic.Int64

	enabled bool
}

// NewFillSystem creates the cup filler
func NewFillSystem(world *engine.World) engine.System {
	s := &FillSystem{world: world}
	s.statServed = world.Resources.Status.Ints.Get(status.KeyOrdersServed)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FillSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *FillSystem) Name() string {
	return "fill"
}

// Priority returns the system's priority
func (s *FillSystem) Priority() int {
	return parameter.PriorityFill
}

// EventTypes returns the event types FillSystem handles
func (s *FillSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventCollisionStarted,
	}
}

// HandleEvent processes sensor collisions
func (s *FillSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	payload, ok := ev.Payload.(*event.CollisionPayload)
	if !ok || !payload.Sensor {
		return
	}
	s.receive(payload.A, payload.B)
}

// receive handles one drop entering a fill sensor, either side of the pair may be the sensor
func (s *FillSystem) receive(a, b core.Entity) {
	w := s.world
	sensor, drop := a, b
	if !w.Components.FillSensor.HasEntity(sensor) {
		sensor, drop = b, a
	}
	if !w.Components.FillSensor.HasEntity(sensor) {
		return
	}
	dc, ok := w.Components.Drop.GetComponent(drop)
	if !ok {
		return
	}

	cup, ok := w.Parent(sensor)
	if !ok {
		return
	}
	active, ok := w.Components.ActiveOrder.GetComponent(cup)
	if !ok {
		return
	}
	tapEntity, _ := w.Parent(cup)

	// The drop past a full cup evaluates it
	if active.Order.IsFull() {
		c, _ := w.Components.Cup.GetComponent(cup)
		removeCup(w, cup)
		despawnDrop(w, drop)
		reopenTap(w, tapEntity)

		o := active.Order
		payload := &event.OrderPayload{
			Recipe: o.Recipe.Name,
			Size:   o.Size.String(),
			Input:  c.Input,
		}
		if o.Failed() {
			payload.Reason = "mismatch"
			w.PushEvent(event.EventOrderFailed, payload)
			log.Printf("order failed: %s %s at %s", o.Size, o.Recipe.Name, c.Input)
			return
		}
		w.PushEvent(event.EventOrderServed, payload)
		s.statServed.Add(1)
		log.Printf("order served: %s %s at %s", o.Size, o.Recipe.Name, c.Input)
		return
	}

	active.Order.Receive(dc.Color)
	w.Components.ActiveOrder.SetComponent(cup, active)

	cc, _ := w.Components.Cup.GetComponent(cup)
	layout := cc.Layout
	engine.With(
		w.NewEntity().At(0, layout.FillY(len(active.Order.Received))).ChildOf(cup),
		w.Components.FillSegment, component.FillSegmentComponent{
			Color:  dc.Color,
			Width:  layout.InnerWidth,
			Height: layout.SectionHeight,
		},
	).Build()
	despawnDrop(w, drop)

	if t, ok := w.Components.Transform.GetComponent(sensor); ok {
		t.Y += layout.SectionHeight
		w.Components.Transform.SetComponent(sensor, t)
	}
	_, wy := w.WorldPosition(sensor)
	w.PushEvent(event.EventSensorMoved, &event.SensorMovedPayload{Sensor: sensor, Y: wy})
}

// Update implements System interface (event driven)
func (s *FillSystem) Update() {}
