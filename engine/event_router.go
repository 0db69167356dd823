package engine

import "github.com/lixenwraith/plug-n-chug/event"

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
	trace    func(event.GameEvent)
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetTrace installs a callback observing every dispatched event
func (r *EventRouter) SetTrace(fn func(event.GameEvent)) {
	r.trace = fn
}

// DispatchAll consumes pending events and routes them to handlers in FIFO order
// Events pushed by handlers are drained in the same call
// Returns the number of events dispatched
func (r *EventRouter) DispatchAll() int {
	total := 0
	for {
		events := r.queue.Consume()
		if len(events) == 0 {
			return total
		}
		for _, ev := range events {
			if r.trace != nil {
				r.trace(ev)
			}
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		total += len(events)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
