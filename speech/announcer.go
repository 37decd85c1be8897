// Package speech provides the spoken status channel
// Systems push short phrases; a worker hands them to an external TTS
// binary so the simulation loop never blocks on speech
package speech

// Priority orders announcements; higher interrupts queued lower speech
type Priority int

const (
	PriorityLow      Priority = iota // ambient status, droppable
	PriorityNormal                   // scan results, ammo counts
	PriorityCritical                 // hull bands, malfunctions, game over
)

// Announcer is the non-blocking speech interface consumed by systems
type Announcer interface {
	Announce(text string, prio Priority)
}

// Null discards all announcements; used in tests and muted sessions
type Null struct {
	Spoken []string
}

// NewNull creates a recording no-op announcer
func NewNull() *Null {
	return &Null{}
}

// Announce records the text and drops it
func (n *Null) Announce(text string, prio Priority) {
	n.Spoken = append(n.Spoken, text)
}
