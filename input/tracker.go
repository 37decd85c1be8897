package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// holdWindow emulates key-up detection on terminals: a key counts as
// held while auto-repeat events keep arriving inside this window
const holdWindow = 250 * time.Millisecond

// Tracker converts the tcell event stream into per-frame snapshots
// HandleKey runs on the poll goroutine; BuildSnapshot on the sim loop
type Tracker struct {
	mu       sync.Mutex
	lastSeen map[rune]time.Time
	pressed  map[rune]bool
	quit     bool
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		lastSeen: make(map[rune]time.Time),
		pressed:  make(map[rune]bool),
	}
}

// HandleKey records one terminal key event
func (t *Tracker) HandleKey(ev *tcell.EventKey, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
		return
	case tcell.KeyUp:
		t.pressed[']'] = true
		return
	case tcell.KeyDown:
		t.pressed['['] = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	switch r {
	// Held actions refresh the repeat window
	case 'a', 'd', 'w', 's', 'g', 'j', 'k':
		t.lastSeen[r] = now
	default:
		t.pressed[r] = true
	}
}

// BuildSnapshot drains pressed keys and evaluates held windows
// Called once per frame by the simulation loop
func (t *Tracker) BuildSnapshot(now time.Time) Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	held := func(r rune) bool {
		seen, ok := t.lastSeen[r]
		return ok && now.Sub(seen) < holdWindow
	}
	press := func(r rune) bool {
		if t.pressed[r] {
			delete(t.pressed, r)
			return true
		}
		return false
	}

	sel := 0
	for i, r := range []rune{'1', '2', '3', '4'} {
		if press(r) {
			sel = i + 1
		}
	}

	snap := Snapshot{
		WeaponSelect: sel,

		TurnLeft:     held('a'),
		TurnRight:    held('d'),
		Forward:      held('w'),
		Backward:     held('s'),
		ShieldHeld:   held('g'),
		ChaingunHeld: held('j'),
		BlasterHeld:  held('k'),

		MissileKey:   press('l'),
		EmpKey:       press('e'),
		FabricateKey: press('f'),
		RadarKey:     press('r'),
		EchoToggle:   press('t'),
		CamoToggle:   press('c'),
		ThrusterUp:   press(']'),
		ThrusterDown: press('['),
		BoostKey:     press('b'),
		StatusQuery:  press('h'),
		MuteToggle:   press('m'),
		PauseToggle:  press('p'),
		RestartKey:   press('n'),
		QuitKey:      press('q') || t.quit,
	}
	return snap
}
