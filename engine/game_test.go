package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/plug-n-chug/event"
	"github.com/lixenwraith/plug-n-chug/level"
	"github.com/lixenwraith/plug-n-chug/parameter"
	"github.com/lixenwraith/plug-n-chug/tap"
)

type recordingSystem struct {
	orderedSystem
	events []event.GameEvent
	resets int
}

func (s *recordingSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset, event.EventOrderServed}
}

func (s *recordingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.resets++
		return
	}
	s.events = append(s.events, ev)
}

func TestNewGameSpawnsBar(t *testing.T) {
	g := NewTestGame()
	w := g.World

	if n := w.Components.Tap.CountEntities(); n != 3 {
		t.Fatalf("taps %d, want 3", n)
	}
	if n := w.Components.OpenForOrder.CountEntities(); n != 3 {
		t.Errorf("idle taps %d, want 3", n)
	}
	if n := w.Components.BarTable.CountEntities(); n != 1 {
		t.Errorf("bar tables %d, want 1", n)
	}

	e, ok := g.Tap(tap.Tap3)
	if !ok {
		t.Fatal("tap 3 missing")
	}
	if x, y := w.WorldPosition(e); x != parameter.Tap3X || y != parameter.TapY {
		t.Errorf("tap 3 at (%v, %v)", x, y)
	}
}

func TestStepDispatchesEventsRaisedDuringUpdate(t *testing.T) {
	g := NewTestGame()
	var log []string
	rec := &recordingSystem{orderedSystem: orderedSystem{name: "rec", priority: 1, log: &log}}
	g.AddSystem(rec)

	g.World.PushEvent(event.EventOrderServed, &event.OrderPayload{Recipe: "x"})
	g.Step(16 * time.Millisecond)

	if len(rec.events) != 1 {
		t.Fatalf("events %d", len(rec.events))
	}
	if len(log) != 1 {
		t.Errorf("update ran %d times", len(log))
	}
	if g.World.Resources.Time.FrameNumber != 1 {
		t.Errorf("frame %d", g.World.Resources.Time.FrameNumber)
	}
}

func TestStepClampsLongFrames(t *testing.T) {
	g := NewTestGame()
	g.Step(10 * time.Second)
	if d := g.World.Resources.Time.DeltaTime; d != parameter.MaxFrameDelta {
		t.Errorf("delta %v, want %v", d, parameter.MaxFrameDelta)
	}
}

func TestReset(t *testing.T) {
	g := NewTestGame()
	var log []string
	rec := &recordingSystem{orderedSystem: orderedSystem{name: "rec", priority: 1, log: &log}}
	g.AddSystem(rec)

	res := g.World.Resources
	res.Level.State = level.State{Phase: level.GameOver}
	res.Tap.MakeConnection(tap.Color1, tap.Tap1)
	res.Clock.Pause()
	before, _ := g.Tap(tap.Tap1)

	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}

	if g.GameOver() {
		t.Error("level should restart")
	}
	if _, ok := res.Tap.Connection(tap.Color1); ok {
		t.Error("routing should restart")
	}
	if res.Clock.IsPaused() {
		t.Error("clock should resume")
	}
	if rec.resets != 1 {
		t.Errorf("reset delivered %d times", rec.resets)
	}
	after, _ := g.Tap(tap.Tap1)
	if after == before {
		t.Error("taps should be rebuilt with fresh ids")
	}
}
