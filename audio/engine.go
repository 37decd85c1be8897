package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ironhull/core"
)

// voice is one playing cue instance inside the mixer
// Mutations of the chain happen under the speaker lock
type voice struct {
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	pan       *effects.Pan
	resampler *beep.Resampler
	done      *atomic.Bool
	loop      bool
}

// Engine is the beep-backed cue Player
// A single speaker mixer carries every voice; handles index live voices
type Engine struct {
	config *Config

	mu     sync.Mutex
	voices map[Handle]*voice
	next   Handle

	running atomic.Bool
	muted   atomic.Bool
}

// NewEngine creates an engine with the given config (nil = defaults)
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config: cfg,
		voices: make(map[Handle]*voice),
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker
// Failure leaves the engine stopped; callers degrade to a NullPlayer
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	sr := beep.SampleRate(e.config.SampleRate)
	buf := sr.N(time.Duration(e.config.BufferMs) * time.Millisecond)
	if err := speaker.Init(sr, buf); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	e.running.Store(true)
	return nil
}

// Close silences and drops every voice and stops the engine
func (e *Engine) Close() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Clear()

	e.mu.Lock()
	e.voices = make(map[Handle]*voice)
	e.mu.Unlock()
}

// IsRunning reports whether the speaker is live
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// ToggleMute flips the mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// Play implements Player
func (e *Engine) Play(cue core.CueID, opts PlayOpts) Handle {
	if !e.running.Load() || e.muted.Load() {
		return NoHandle
	}

	sr := beep.SampleRate(e.config.SampleRate)
	base := cueStreamer(cue, sr)
	loop := opts.Loop && cueLoops(cue)

	done := &atomic.Bool{}
	var tail beep.Streamer = base
	if !loop {
		tail = beep.Seq(base, beep.Callback(func() { done.Store(true) }))
	}

	pitch := opts.Pitch
	if pitch <= 0 {
		pitch = 1
	}
	resampler := beep.ResampleRatio(4, pitch, tail)

	vol := opts.Volume
	if vol <= 0 {
		vol = 1
	}
	gain := vol * e.config.cueGain(cue)
	volume := &effects.Volume{Streamer: resampler, Base: 2, Volume: math.Log2(clampGain(gain)), Silent: gain <= 0}

	pan := &effects.Pan{Streamer: volume, Pan: clampPan(opts.Pan)}
	ctrl := &beep.Ctrl{Streamer: pan}

	v := &voice{ctrl: ctrl, volume: volume, pan: pan, resampler: resampler, done: done, loop: loop}

	e.mu.Lock()
	e.next++
	h := e.next
	e.voices[h] = v
	e.mu.Unlock()

	speaker.Play(ctrl)
	return h
}

// Stop implements Player; stops one voice and releases its handle
func (e *Engine) Stop(h Handle) {
	e.mu.Lock()
	v, ok := e.voices[h]
	if ok {
		delete(e.voices, h)
	}
	e.mu.Unlock()
	if !ok {
		return
	}

	speaker.Lock()
	v.ctrl.Paused = true
	v.ctrl.Streamer = nil
	speaker.Unlock()
	v.done.Store(true)
}

// SetPan implements Player
func (e *Engine) SetPan(h Handle, pan float64) {
	if v := e.voice(h); v != nil {
		speaker.Lock()
		v.pan.Pan = clampPan(pan)
		speaker.Unlock()
	}
}

// SetVolume implements Player
func (e *Engine) SetVolume(h Handle, vol float64) {
	if v := e.voice(h); v != nil {
		speaker.Lock()
		if vol <= 0 {
			v.volume.Silent = true
		} else {
			v.volume.Silent = false
			v.volume.Volume = math.Log2(clampGain(vol * e.config.MasterVolume))
		}
		speaker.Unlock()
	}
}

// SetPitch implements Player
func (e *Engine) SetPitch(h Handle, pitch float64) {
	if pitch <= 0 {
		return
	}
	if v := e.voice(h); v != nil {
		speaker.Lock()
		v.resampler.SetRatio(pitch)
		speaker.Unlock()
	}
}

// Ended implements Player
// Unknown handles report ended so pollers make progress after restarts
func (e *Engine) Ended(h Handle) bool {
	v := e.voice(h)
	if v == nil {
		return true
	}
	if v.done.Load() {
		e.mu.Lock()
		delete(e.voices, h)
		e.mu.Unlock()
		return true
	}
	return false
}

func (e *Engine) voice(h Handle) *voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices[h]
}

func clampPan(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}

func clampGain(g float64) float64 {
	if g < 1e-4 {
		return 1e-4
	}
	if g > 1 {
		return 1
	}
	return g
}
