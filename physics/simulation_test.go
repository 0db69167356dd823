package physics

import (
	"testing"
	"time"

	"github.com/lixenwraith/plug-n-chug/component"
	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/engine"
	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

type collisionRecorder struct {
	hits []event.CollisionPayload
}

func (r *collisionRecorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventCollisionStarted}
}

func (r *collisionRecorder) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.CollisionPayload); ok {
		r.hits = append(r.hits, *p)
	}
}

func TestIntegrateFalls(t *testing.T) {
	b := Body{AccelY: -10}
	Integrate(&b, 1)
	if b.VelY != -10 || b.Y != -10 {
		t.Errorf("after 1s: vel %v y %v", b.VelY, b.Y)
	}
}

func TestCircleOverlapsAABB(t *testing.T) {
	box := AABB{X: 0, Y: 0, HalfWidth: 10, HalfHeight: 5}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 0, 0, true},
		{"touching top", 0, 7, true},
		{"above", 0, 7.5, false},
		{"corner gap", 11.5, 6.5, false},
		{"corner touch", 11, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleOverlapsAABB(tt.x, tt.y, 2, box); got != tt.expect {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func newSim(t *testing.T) (*engine.Game, *Simulation, *collisionRecorder) {
	t.Helper()
	g := engine.NewTestGame()
	sim := NewSimulation(g.World).(*Simulation)
	g.AddSystem(sim)
	rec := &collisionRecorder{}
	g.Router.Register(rec)
	return g, sim, rec
}

func spawnDrop(g *engine.Game, x, y float64) core.Entity {
	w := g.World
	e := engine.With(w.NewEntity().At(x, y), w.Components.Drop, component.DropComponent{}).Build()
	w.PushEvent(event.EventDropSpawned, &event.DropSpawnedPayload{Entity: e, X: x, Y: y})
	return e
}

func TestDropLandsOnTableOnce(t *testing.T) {
	g, sim, rec := newSim(t)
	drop := spawnDrop(g, 0, parameter.TapY)

	for range 40 {
		g.Step(50 * time.Millisecond)
	}

	if sim.Drops() != 1 {
		t.Fatalf("bodies %d", sim.Drops())
	}
	if len(rec.hits) != 1 {
		t.Fatalf("collisions %d, want exactly one", len(rec.hits))
	}
	hit := rec.hits[0]
	if hit.Sensor || hit.B != drop || !g.World.Components.BarTable.HasEntity(hit.A) {
		t.Errorf("unexpected collision %+v", hit)
	}
	tr, _ := g.World.Components.Transform.GetComponent(drop)
	if tr.Y >= parameter.TapY {
		t.Errorf("drop did not fall, y %v", tr.Y)
	}
}

func TestSensorCollisionAndMove(t *testing.T) {
	g, _, rec := newSim(t)
	sensor := g.World.CreateEntity()
	g.World.PushEvent(event.EventCupSpawned, &event.CupSpawnedPayload{
		Sensor: sensor, X: 0, Y: 0, HalfW: 10, HalfH: 5,
	})
	spawnDrop(g, 0, 30)
	g.Step(0)

	// Raise the sensor into the drop's path before it falls far
	g.World.PushEvent(event.EventSensorMoved, &event.SensorMovedPayload{Sensor: sensor, Y: 20})
	g.Step(50 * time.Millisecond)
	g.Step(50 * time.Millisecond)

	if len(rec.hits) == 0 || !rec.hits[0].Sensor || rec.hits[0].A != sensor {
		t.Fatalf("hits %+v", rec.hits)
	}
}

func TestPausedClockFreezesDrops(t *testing.T) {
	g, _, _ := newSim(t)
	drop := spawnDrop(g, 0, 100)
	g.Step(0)
	g.World.Resources.Clock.Pause()
	g.Step(100 * time.Millisecond)

	tr, _ := g.World.Components.Transform.GetComponent(drop)
	if tr.Y != 100 {
		t.Errorf("paused drop moved to %v", tr.Y)
	}
}

func TestResetForgetsBodies(t *testing.T) {
	g, sim, _ := newSim(t)
	spawnDrop(g, 0, 100)
	g.Step(0)
	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}
	if sim.Drops() != 0 {
		t.Errorf("bodies %d after reset", sim.Drops())
	}
}
