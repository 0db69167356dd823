package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
)

// AssignmentSystem pairs idle taps with pending orders and places a cup under each pair's tap
type AssignmentSystem struct {
	world *engine.World

	statAssigned *atomic.Int64

	enabled bool
}

// NewAssignmentSystem creates the order assigner
func NewAssignmentSystem(world *engine.World) engine.System {
	s := &AssignmentSystem{world: world}
	s.statAssigned = world.Resources.Status.Ints.Get(status.KeyOrdersAssigned)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *AssignmentSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *AssignmentSystem) Name() string {
	return "assignment"
}

// Priority returns the system's priority
func (s *AssignmentSystem) Priority() int {
	return parameter.PriorityAssignment
}

// EventTypes returns the event types AssignmentSystem handles
func (s *AssignmentSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *AssignmentSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update ticks re-open cooldowns and assigns orders to ready taps in random pairing
func (s *AssignmentSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	res := w.Resources
	if res.Level.State.IsGameOver() {
		return
	}

	var idle []core.Entity
	for _, e := range w.Components.OpenForOrder.GetAllEntities() {
		open, ok := w.Components.OpenForOrder.GetComponent(e)
		if !ok {
			continue
		}
		open.Cooldown.Tick(res.Time.DeltaTime)
		w.Components.OpenForOrder.SetComponent(e, open)
		if !open.Cooldown.Finished() {
			continue
		}
		// A tap still holding a cup is not idle
		if _, busy := cupOfTap(w, e); busy {
			w.Components.OpenForOrder.RemoveEntity(e)
			continue
		}
		idle = append(idle, e)
	}

	pending := w.Components.PendingOrder.GetAllEntities()
	if len(idle) == 0 || len(pending) == 0 {
		return
	}

	res.Rand.Shuffle(len(idle), func(i, j int) { idle[i], idle[j] = idle[j], idle[i] })
	res.Rand.Shuffle(len(pending), func(i, j int) { pending[i], pending[j] = pending[j], pending[i] })

	for i := 0; i < len(idle) && i < len(pending); i++ {
		p, ok := w.Components.PendingOrder.GetComponent(pending[i])
		if !ok {
			continue
		}
		w.Components.OpenForOrder.RemoveEntity(idle[i])
		w.DestroyEntity(pending[i])
		s.placeCup(idle[i], p.Order)
	}
}

// placeCup builds the cup tree under a tap
func (s *AssignmentSystem) placeCup(tapEntity core.Entity, o order.Order) {
	w := s.world
	t, _ := w.Components.Tap.GetComponent(tapEntity)
	layout := order.NewCupLayout(w.Resources.Orders.Cups, o.Recipe, o.Size)
	cups := w.Resources.Orders.Cups

	cup := engine.With(
		engine.With(
			w.NewEntity().At(0, layout.CenterY).ChildOf(tapEntity),
			w.Components.Cup, component.CupComponent{Layout: layout, Input: t.Input},
		),
		w.Components.ActiveOrder, component.ActiveOrderComponent{Order: o},
	).Build()

	engine.With(
		w.NewEntity().At(layout.HandleX, 0).ChildOf(cup),
		w.Components.Handle, component.HandleComponent{Width: cups.HandleWidth, Height: layout.Height / 2},
	).Build()

	for _, y := range layout.Dividers {
		engine.With(
			w.NewEntity().At(0, y).ChildOf(cup),
			w.Components.Divider, component.DividerComponent{Width: layout.InnerWidth, Color: cups.Divider()},
		).Build()
	}

	sensor := engine.With(
		w.NewEntity().At(0, layout.SensorY).ChildOf(cup),
		w.Components.FillSensor, component.FillSensorComponent{
			HalfWidth:  layout.SensorHalfWidth,
			HalfHeight: layout.SensorHalfHeight,
		},
	).Build()

	bar := engine.With(
		w.NewEntity().At(0, layout.BarY).ChildOf(cup),
		w.Components.StatusBar, component.StatusBarComponent{Percent: 1, Width: cups.StatusBarWidth},
	).Build()

	engine.With(
		w.NewEntity().At(0, layout.LabelY).ChildOf(cup),
		w.Components.Label, component.LabelComponent{Text: o.Recipe.Name},
	).Build()

	c, _ := w.Components.Cup.GetComponent(cup)
	c.Sensor = sensor
	c.Bar = bar
	w.Components.Cup.SetComponent(cup, c)

	sx, sy := w.WorldPosition(sensor)
	w.PushEvent(event.EventCupSpawned, &event.CupSpawnedPayload{
		Cup:    cup,
		Sensor: sensor,
		Input:  t.Input,
		Recipe: o.Recipe.Name,
		X:      sx,
		Y:      sy,
		HalfW:  layout.SensorHalfWidth,
		HalfH:  layout.SensorHalfHeight,
	})
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: core.SoundCupReady})
	s.statAssigned.Add(1)

	log.Printf("order assigned: %s %s -> %s", o.Size, o.Recipe.Name, t.Input)
}
