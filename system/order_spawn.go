package system

import (
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/order"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
)

// OrderSpawnSystem creates a pending order from the ready pool on a fixed interval
type OrderSpawnSystem struct {
	world *engine.World

	interval core.Timer

	statSpawned *atomic.Int64
	statSkipped *atomic.Int64

	enabled bool
}

// NewOrderSpawnSystem creates the order generator
func NewOrderSpawnSystem(world *engine.World) engine.System {
	s := &OrderSpawnSystem{world: world}
	s.statSpawned = world.Resources.Status.Ints.Get(status.KeyOrdersSpawned)
	s.statSkipped = world.Resources.Status.Ints.Get(status.KeyOrdersSkipped)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *OrderSpawnSystem) Init() {
	s.interval = core.NewTimer(parameter.OrderSpawnInterval, core.TimerRepeating)
	s.enabled = true
}

// Name returns system's name
func (s *OrderSpawnSystem) Name() string {
	return "order_spawn"
}

// Priority returns the system's priority
func (s *OrderSpawnSystem) Priority() int {
	return parameter.PriorityOrderSpawn
}

// EventTypes returns the event types OrderSpawnSystem handles
func (s *OrderSpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes reset
func (s *OrderSpawnSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update spawns one order per interval crossing
func (s *OrderSpawnSystem) Update() {
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

	if s.world.Components.PendingOrder.CountEntities() >= parameter.MaxPendingOrders {
		s.statSkipped.Add(1)
		return
	}

	recipe, ok := res.Orders.Catalog.Pick(res.Rand)
	if !ok {
		return
	}
	size := order.RandomCupSize(res.Rand)
	o := order.New(recipe, size, parameter.OrderDuration)

	engine.With(
		s.world.NewEntity(),
		s.world.Components.PendingOrder, component.PendingOrderComponent{Order: o},
	).Build()

	s.world.PushEvent(event.EventOrderSpawned, &event.OrderPayload{
		Recipe: recipe.Name,
		Size:   size.String(),
	})
	s.statSpawned.Add(1)
}
