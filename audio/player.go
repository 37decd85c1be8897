package audio

import (
	"sync"

	"github.com/lixenwraith/ironhull/core"
)

// Handle identifies a playing cue instance
// Handle 0 is never issued
type Handle uint64

// NoHandle is the zero, never-issued handle
const NoHandle Handle = 0

// PlayOpts controls a cue instance at start
// Zero value plays once, centered, full volume, natural pitch
type PlayOpts struct {
	Loop   bool
	Volume float64 // 0..1 linear, scaled by category and master; 0 means 1
	Pan    float64 // -1 left .. 1 right
	Pitch  float64 // playback rate multiplier; 0 means 1
}

// Player is the cue interface consumed by simulation systems
// All methods are non-blocking; Ended supports completion polling so
// state machines never sleep on audio
type Player interface {
	Play(cue core.CueID, opts PlayOpts) Handle
	Stop(h Handle)
	SetPan(h Handle, pan float64)
	SetVolume(h Handle, vol float64)
	SetPitch(h Handle, pitch float64)
	Ended(h Handle) bool
}

// CueRecord captures one Play call for test inspection
type CueRecord struct {
	Cue    core.CueID
	Opts   PlayOpts
	Handle Handle
}

// NullPlayer is a no-output Player for tests and muted sessions
// One-shot cues end immediately unless held open with Hold;
// looped cues stay open until stopped
type NullPlayer struct {
	mu     sync.Mutex
	next   Handle
	played []CueRecord
	open   map[Handle]bool
}

// NewNullPlayer creates an empty NullPlayer
func NewNullPlayer() *NullPlayer {
	return &NullPlayer{open: make(map[Handle]bool)}
}

func (p *NullPlayer) Play(cue core.CueID, opts PlayOpts) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	h := p.next
	p.played = append(p.played, CueRecord{Cue: cue, Opts: opts, Handle: h})
	if opts.Loop {
		p.open[h] = true
	}
	return h
}

func (p *NullPlayer) Stop(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.open, h)
}

func (p *NullPlayer) SetPan(h Handle, pan float64)    {}
func (p *NullPlayer) SetVolume(h Handle, vol float64) {}
func (p *NullPlayer) SetPitch(h Handle, pitch float64) {}

func (p *NullPlayer) Ended(h Handle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.open[h]
}

// Hold keeps a handle open so Ended reports false until End or Stop
func (p *NullPlayer) Hold(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open[h] = true
}

// End closes a held handle
func (p *NullPlayer) End(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.open, h)
}

// Played returns a copy of all Play calls so far
func (p *NullPlayer) Played() []CueRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]CueRecord, len(p.played))
	copy(out, p.played)
	return out
}

// CountCue returns how many times a cue has been played
func (p *NullPlayer) CountCue(cue core.CueID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, r := range p.played {
		if r.Cue == cue {
			n++
		}
	}
	return n
}

// LastCue returns the most recent record for a cue, if any
func (p *NullPlayer) LastCue(cue core.CueID) (CueRecord, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.played) - 1; i >= 0; i-- {
		if p.played[i].Cue == cue {
			return p.played[i], true
		}
	}
	return CueRecord{}, false
}
