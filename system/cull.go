package system

import (
	"sync/atomic"

	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/status"
)

// DropCullSystem removes drops that hit the bar table
type DropCullSystem struct {
	world *engine.World

	statCulled *atomic.Int64

	enabled bool
}

// NewDropCullSystem creates the spill cleaner
func NewDropCullSystem(world *engine.World) engine.System {
	s := &DropCullSystem{world: world}
	s.statCulled = world.Resources.Status.Ints.Get(status.KeyDropsCulled)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DropCullSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *DropCullSystem) Name() string {
	return "drop_cull"
}

// Priority returns the system's priority
func (s *DropCullSystem) Priority() int {
	return parameter.PriorityDropCull
}

// EventTypes returns the event types DropCullSystem handles
func (s *DropCullSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventCollisionStarted,
	}
}

// HandleEvent despawns a drop on solid contact with the table
func (s *DropCullSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	payload, ok := ev.Payload.(*event.CollisionPayload)
	if !ok || payload.Sensor {
		return
	}

	w := s.world
	table, drop := payload.A, payload.B
	if !w.Components.BarTable.HasEntity(table) {
		table, drop = drop, table
	}
	if !w.Components.BarTable.HasEntity(table) || !w.Components.Drop.HasEntity(drop) {
		return
	}
	despawnDrop(w, drop)
	s.statCulled.Add(1)
}

// Update implements System interface (event driven)
func (s *DropCullSystem) Update() {}
