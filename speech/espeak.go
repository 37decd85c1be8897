package speech

import (
	"os/exec"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// queueDepth bounds pending phrases; low-priority speech is dropped
// rather than letting stale status pile up
const queueDepth = 8

type phrase struct {
	text string
	prio Priority
}

// EspeakAnnouncer speaks through an external espeak-ng process per phrase
// Critical phrases flush the pending queue so they are heard promptly
type EspeakAnnouncer struct {
	log    zerolog.Logger
	binary string
	rate   int // words per minute

	mu      sync.Mutex
	pending []phrase
	wake    chan struct{}
	stop    chan struct{}
	done    sync.WaitGroup
}

// NewEspeak creates and starts an announcer worker
// Returns nil and logs a warning when the binary is not installed;
// callers fall back to Null
func NewEspeak(rate int, log zerolog.Logger) *EspeakAnnouncer {
	path, err := exec.LookPath("espeak-ng")
	if err != nil {
		if path, err = exec.LookPath("espeak"); err != nil {
			log.Warn().Msg("no speech binary found, announcements disabled")
			return nil
		}
	}

	a := &EspeakAnnouncer{
		log:    log.With().Str("service", "speech").Logger(),
		binary: path,
		rate:   rate,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
	a.done.Add(1)
	go a.worker()
	return a
}

// Announce implements Announcer; never blocks
func (a *EspeakAnnouncer) Announce(text string, prio Priority) {
	a.mu.Lock()
	if prio == PriorityCritical {
		// Drop queued chatter so the critical phrase is next
		a.pending = a.pending[:0]
	}
	if len(a.pending) >= queueDepth {
		if prio == PriorityLow {
			a.mu.Unlock()
			return
		}
		a.pending = a.pending[1:]
	}
	a.pending = append(a.pending, phrase{text: text, prio: prio})
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Stop terminates the worker after the current phrase
func (a *EspeakAnnouncer) Stop() {
	close(a.stop)
	a.done.Wait()
}

func (a *EspeakAnnouncer) worker() {
	defer a.done.Done()
	for {
		select {
		case <-a.stop:
			return
		case <-a.wake:
		}

		for {
			a.mu.Lock()
			if len(a.pending) == 0 {
				a.mu.Unlock()
				break
			}
			p := a.pending[0]
			a.pending = a.pending[1:]
			a.mu.Unlock()

			cmd := exec.Command(a.binary, "-s", strconv.Itoa(a.rate), p.text)
			if err := cmd.Run(); err != nil {
				a.log.Debug().Err(err).Str("text", p.text).Msg("speech failed")
			}
		}
	}
}
