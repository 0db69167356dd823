package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// endlessKeys never runs dry, like a terminal under key repeat
type endlessKeys struct{}

func (endlessKeys) PollEvent() tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
}

type closedSource struct{}

func (closedSource) PollEvent() tcell.Event { return nil }

func TestPollEventsStopsWhenLoopExits(t *testing.T) {
	out := make(chan tcell.Event) // Never drained
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		pollEvents(endlessKeys{}, out, done)
		close(exited)
	}()

	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("poller blocked on a full channel after the loop exited")
	}
}

func TestPollEventsStopsOnClosedScreen(t *testing.T) {
	out := make(chan tcell.Event, 1)
	pollEvents(closedSource{}, out, make(chan struct{}))
	if len(out) != 0 {
		t.Error("forwarded an event from a closed screen")
	}
}

func TestPollEventsForwards(t *testing.T) {
	out := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go pollEvents(endlessKeys{}, out, done)
	defer close(done)

	select {
	case ev := <-out:
		if k, ok := ev.(*tcell.EventKey); !ok || k.Rune() != 'x' {
			t.Errorf("forwarded %T", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event forwarded")
	}
}
