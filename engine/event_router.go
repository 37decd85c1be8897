package engine

import (
	"github.com/lixenwraith/ironhull/event"
)

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before World.Update()
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches events to registered handlers
//
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - All events consumed and dispatched before World.Update() runs
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
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

// RegisterSystems registers every world system that declares event types
func (r *EventRouter) RegisterSystems(w *World) {
	for _, s := range w.Systems() {
		if len(s.EventTypes()) > 0 {
			r.Register(s)
		}
	}
}

// DispatchAll consumes all pending events and routes to handlers,
// returning the number of events consumed
// Events are processed in FIFO order
//
// Must be called once per tick, BEFORE World.Update()
func (r *EventRouter) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}
