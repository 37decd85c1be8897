package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Components ComponentStore

	// Direct pointers for the PushEvent hot path
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty simulation world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Components:   newComponentStore(),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Components.removeEntity(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Components.clearAll()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in priority order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	w.RunSafe(func() {
		w.mu.RLock()
		systems := make([]System, len(w.systems))
		copy(systems, w.systems)
		w.mu.RUnlock()

		for _, system := range systems {
			system.Update()
		}
	})
}

// FrameNumber returns the current authoritative frame index
func (w *World) FrameNumber() int64 {
	if w.frameSource == nil {
		return 0
	}
	return w.frameSource.Load()
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during session initialization
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits a simulation event using direct cached pointers
// This is the hot path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil || w.frameSource == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}
