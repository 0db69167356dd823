// Package physics is a minimal drop simulator standing in for a rigid-body engine.
// It integrates falling drops and reports collision starts against fill sensors and the bar table.
package physics

import (
	"slices"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

type contact struct {
	drop, collider core.Entity
}

// Simulation tracks drop bodies and sensor boxes fed by events
type Simulation struct {
	world *engine.World

	drops   map[core.Entity]*Body
	sensors map[core.Entity]AABB
	touch   map[contact]bool
	resting map[core.Entity]bool

	enabled bool
}

// NewSimulation creates the drop simulator
func NewSimulation(world *engine.World) engine.System {
	s := &Simulation{world: world}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *Simulation) Init() {
	s.drops = make(map[core.Entity]*Body)
	s.sensors = make(map[core.Entity]AABB)
	s.touch = make(map[contact]bool)
	s.resting = make(map[core.Entity]bool)
	s.enabled = true
}

// Name returns system's name
func (s *Simulation) Name() string {
	return "physics"
}

// Priority returns the system's priority
func (s *Simulation) Priority() int {
	return parameter.PriorityPhysics
}

// EventTypes returns the event types Simulation handles
func (s *Simulation) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventDropSpawned,
		event.EventDropDespawned,
		event.EventCupSpawned,
		event.EventCupRemoved,
		event.EventSensorMoved,
	}
}

// HandleEvent keeps the body and sensor sets in sync with the world
func (s *Simulation) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()

	case event.EventDropSpawned:
		if p, ok := ev.Payload.(*event.DropSpawnedPayload); ok {
			s.drops[p.Entity] = &Body{
				X:      p.X,
				Y:      p.Y,
				VelX:   p.VelocityX,
				AccelY: -parameter.Gravity * parameter.PixelsPerMeter * parameter.DropGravityScale,
				Radius: parameter.DropRadius,
			}
		}

	case event.EventDropDespawned:
		if p, ok := ev.Payload.(*event.EntityPayload); ok {
			s.forgetDrop(p.Entity)
		}

	case event.EventCupSpawned:
		if p, ok := ev.Payload.(*event.CupSpawnedPayload); ok {
			s.sensors[p.Sensor] = AABB{X: p.X, Y: p.Y, HalfWidth: p.HalfW, HalfHeight: p.HalfH}
		}

	case event.EventCupRemoved:
		if p, ok := ev.Payload.(*event.CupRemovedPayload); ok {
			delete(s.sensors, p.Sensor)
			for c := range s.touch {
				if c.collider == p.Sensor {
					delete(s.touch, c)
				}
			}
		}

	case event.EventSensorMoved:
		if p, ok := ev.Payload.(*event.SensorMovedPayload); ok {
			if box, ok := s.sensors[p.Sensor]; ok {
				box.Y = p.Y
				s.sensors[p.Sensor] = box
			}
		}
	}
}

// Update integrates drops by virtual time and emits collision starts
func (s *Simulation) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.VirtualDelta.Seconds()
	if dt <= 0 {
		return
	}

	table, hasTable := s.barTable()
	sensorIDs := sortedKeys(s.sensors)

	for _, e := range sortedKeys(s.drops) {
		b := s.drops[e]
		if !s.resting[e] {
			Integrate(b, dt)
			s.world.Components.Transform.SetComponent(e, component.TransformComponent{X: b.X, Y: b.Y})
		}

		for _, sensor := range sensorIDs {
			if CircleOverlapsAABB(b.X, b.Y, b.Radius, s.sensors[sensor]) {
				s.begin(e, sensor, true)
			}
		}

		if hasTable && CircleOverlapsAABB(b.X, b.Y, b.Radius, table.box) {
			s.resting[e] = true
			s.begin(e, table.entity, false)
		}

		if b.Y < parameter.DropKillY {
			s.world.DestroyEntity(e)
			s.forgetDrop(e)
		}
	}
}

// Drops returns the number of simulated bodies
func (s *Simulation) Drops() int {
	return len(s.drops)
}

// begin emits a collision start once per drop and collider pair
func (s *Simulation) begin(drop, collider core.Entity, sensor bool) {
	c := contact{drop: drop, collider: collider}
	if s.touch[c] {
		return
	}
	s.touch[c] = true
	s.world.PushEvent(event.EventCollisionStarted, &event.CollisionPayload{
		A:      collider,
		B:      drop,
		Sensor: sensor,
	})
}

func (s *Simulation) forgetDrop(e core.Entity) {
	delete(s.drops, e)
	delete(s.resting, e)
	for c := range s.touch {
		if c.drop == e {
			delete(s.touch, c)
		}
	}
}

type tableCollider struct {
	entity core.Entity
	box    AABB
}

func (s *Simulation) barTable() (tableCollider, bool) {
	w := s.world
	for _, e := range w.Components.BarTable.GetAllEntities() {
		bt, ok := w.Components.BarTable.GetComponent(e)
		if !ok {
			continue
		}
		x, y := w.WorldPosition(e)
		return tableCollider{
			entity: e,
			box:    AABB{X: x, Y: y, HalfWidth: bt.HalfWidth, HalfHeight: bt.HalfHeight},
		}, true
	}
	return tableCollider{}, false
}

func sortedKeys[V any](m map[core.Entity]V) []core.Entity {
	keys := make([]core.Entity, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
