package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/plug-n-chug/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("len %d", q.Len())
	}

	events := q.Consume()
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d out of order: frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil {
		t.Error("drained queue should return nil")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("oldest surviving frame %d, want 10", events[0].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventInputAction})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("got %d events, want 400", got)
	}
}

func TestEventNames(t *testing.T) {
	for i := EventType(0); i < eventTypeCount; i++ {
		if i.String() == "" {
			t.Errorf("event %d has no name", i)
		}
		if got, ok := TypeByName(i.String()); !ok || got != i {
			t.Errorf("round trip failed for %s", i)
		}
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("out of range type should be Unknown")
	}
}
