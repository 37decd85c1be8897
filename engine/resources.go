package engine

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// ResourceStore is a thread-safe container for global simulation resources
// It allows systems to access shared data without coupling to session wiring
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be the pointer type of the resource struct
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources that must exist after session init
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps frame time data for systems
// Updated by the session loop at the start of every frame
type TimeResource struct {
	// GameTime is seconds of simulation time since session start
	GameTime float64

	// DeltaTime is seconds elapsed since the previous frame, clamped
	DeltaTime float64

	// RealTime is the wall clock at frame start
	RealTime time.Time

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in place (zero allocation)
// Must be called before DispatchAll to keep event frames consistent
func (tr *TimeResource) Update(gameTime, deltaTime float64, realTime time.Time, frameNumber int64) {
	tr.GameTime = gameTime
	tr.DeltaTime = deltaTime
	tr.RealTime = realTime
	tr.FrameNumber = frameNumber
}

// PlayerResource wraps the mech state for system access
type PlayerResource struct {
	State *component.PlayerState
}

// InputResource holds the per-frame input snapshot
// Decouples systems from the terminal event stream
type InputResource struct {
	Snapshot input.Snapshot
}

// AudioResource wraps the cue player interface
type AudioResource struct {
	Player audio.Player
}

// SpeechResource wraps the announcer interface
type SpeechResource struct {
	Announcer speech.Announcer
}

// RandResource wraps the session RNG
// Injected so malfunction and spawn rolls are reproducible under test
type RandResource struct {
	Rand *rand.Rand
}

// SessionResource carries per-session settings and outcome flags
type SessionResource struct {
	DroneCeiling int
	Over         bool
}

// CoreResources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type CoreResources struct {
	Time    *TimeResource
	Player  *PlayerResource
	Input   *InputResource
	Audio   *AudioResource
	Speech  *SpeechResource
	Rand    *RandResource
	Session *SessionResource
	Status  *status.Registry
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system Init; pointers remain valid for session lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Time:    MustGetResource[*TimeResource](w.Resources),
		Player:  MustGetResource[*PlayerResource](w.Resources),
		Input:   MustGetResource[*InputResource](w.Resources),
		Audio:   MustGetResource[*AudioResource](w.Resources),
		Speech:  MustGetResource[*SpeechResource](w.Resources),
		Rand:    MustGetResource[*RandResource](w.Resources),
		Session: MustGetResource[*SessionResource](w.Resources),
		Status:  MustGetResource[*status.Registry](w.Resources),
	}
}
