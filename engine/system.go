package engine

import (
	"github.com/lixenwraith/ironhull/event"
)

// System is a simulation subsystem run once per frame in priority order
type System interface {
	// Init caches resource and store pointers; called after registration
	Init()

	// Name identifies the system for diagnostics
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// EventTypes returns event types this system consumes (nil if none)
	EventTypes() []event.EventType

	// HandleEvent processes one routed event, called before Update each frame
	HandleEvent(ev event.GameEvent)

	// Update advances the system by the frame's delta time
	Update()
}
