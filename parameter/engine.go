package parameter

// Core loop and event plumbing

const (
	// TickRate is the target simulation frequency in Hz
	TickRate = 60

	// MaxDeltaTime clamps a single frame's delta in seconds
	// Protects integration after a long stall (debugger, suspend)
	MaxDeltaTime = 0.25

	// EventQueueSize must be a power of 2 for mask-based wraparound
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)
