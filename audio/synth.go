package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ironhull/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave with optional frequency sweep and decay
// duration 0 streams forever (used for looped cues)
type oscillator struct {
	startFreq float64
	endFreq   float64
	wave      WaveType
	rate      beep.SampleRate

	phase    float64
	position int
	duration int     // samples, 0 = infinite
	amp      float64 // base amplitude
	decay    float64 // exponential decay per second, 0 = none
}

func newTone(freq float64, dur time.Duration, wave WaveType, amp float64, rate beep.SampleRate) *oscillator {
	return &oscillator{startFreq: freq, endFreq: freq, wave: wave, amp: amp, rate: rate, duration: samples(rate, dur)}
}

func newSweep(f0, f1 float64, dur time.Duration, wave WaveType, amp float64, rate beep.SampleRate) *oscillator {
	return &oscillator{startFreq: f0, endFreq: f1, wave: wave, amp: amp, rate: rate, duration: samples(rate, dur)}
}

func newDecayTone(freq float64, dur time.Duration, wave WaveType, amp, decay float64, rate beep.SampleRate) *oscillator {
	o := newTone(freq, dur, wave, amp, rate)
	o.decay = decay
	return o
}

func samples(rate beep.SampleRate, dur time.Duration) int {
	if dur <= 0 {
		return 0
	}
	return rate.N(dur)
}

func (o *oscillator) Stream(out [][2]float64) (n int, ok bool) {
	for i := range out {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		t := float64(o.position) / float64(o.rate)
		freq := o.startFreq
		if o.duration > 0 && o.endFreq != o.startFreq {
			p := float64(o.position) / float64(o.duration)
			freq = o.startFreq + (o.endFreq-o.startFreq)*p
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		amp := o.amp
		if o.decay > 0 {
			amp *= math.Exp(-t * o.decay)
		}
		// Short attack ramp avoids clicks
		if attack := float64(o.position) / (float64(o.rate) * 0.004); attack < 1 {
			amp *= attack
		}

		val *= amp
		out[i][0] = val
		out[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(out), true
}

func (o *oscillator) Err() error { return nil }

// mix sums streamers until all are drained
func mix(streams ...beep.Streamer) beep.Streamer {
	return beep.Mix(streams...)
}

// cueStreamer builds the procedural recipe for a cue
// Looped cues return infinite streamers; one-shots drain and end
func cueStreamer(cue core.CueID, sr beep.SampleRate) beep.Streamer {
	ms := func(d int) time.Duration { return time.Duration(d) * time.Millisecond }

	switch cue {
	// Chaingun
	case core.CueChaingunSpinUp:
		return newSweep(60, 240, ms(250), WaveSaw, 0.25, sr)
	case core.CueChaingunFire:
		return mix(newTone(180, 0, WaveSquare, 0.12, sr), newTone(0, 0, WaveNoise, 0.08, sr)) // loop
	case core.CueChaingunSpinDown:
		return newSweep(240, 50, ms(300), WaveSaw, 0.22, sr)
	case core.CueChaingunDry:
		return newDecayTone(900, ms(60), WaveSquare, 0.2, 40, sr)

	// Blaster
	case core.CueBlasterCharge:
		return newSweep(200, 1100, ms(400), WaveSine, 0.22, sr)
	case core.CueBlasterFire:
		return newDecayTone(500, ms(180), WaveSaw, 0.35, 12, sr)
	case core.CueBlasterCooldown:
		return newSweep(400, 150, ms(300), WaveSine, 0.12, sr)

	// Missiles
	case core.CueMissileInit:
		return newSweep(300, 600, ms(600), WaveSine, 0.2, sr)
	case core.CueMissileLockPing:
		return newDecayTone(750, ms(50), WaveSine, 0.22, 35, sr)
	case core.CueMissileLocked:
		return newTone(1200, ms(120), WaveSine, 0.3, sr)
	case core.CueMissileLaunch:
		return mix(newSweep(400, 90, ms(700), WaveSaw, 0.3, sr), newDecayTone(0, ms(700), WaveNoise, 0.2, 5, sr))
	case core.CueMissileInitEnd:
		return newSweep(600, 250, ms(350), WaveSine, 0.18, sr)

	// EMP
	case core.CueEmpPrime:
		return newSweep(150, 900, ms(500), WaveSquare, 0.18, sr)
	case core.CueEmpBurst:
		return mix(newDecayTone(70, ms(600), WaveSine, 0.5, 6, sr), newDecayTone(0, ms(300), WaveNoise, 0.3, 10, sr))
	case core.CueEmpRecharge:
		return newSweep(90, 400, ms(900), WaveSine, 0.1, sr)

	// Fabrication
	case core.CueFabricatorRun:
		return mix(newTone(110, 0, WaveSaw, 0.1, sr), newTone(117, 0, WaveSaw, 0.1, sr)) // loop
	case core.CueFabricatorDone:
		return mix(newTone(660, ms(140), WaveSine, 0.25, sr), newTone(880, ms(260), WaveSine, 0.2, sr))
	case core.CueDebrisPickup:
		return newDecayTone(520, ms(90), WaveSquare, 0.2, 25, sr)
	case core.CueWeaponSelect:
		return newSweep(400, 900, ms(120), WaveSquare, 0.18, sr)

	// Equipment
	case core.CueShieldUp:
		return newSweep(220, 520, ms(200), WaveSine, 0.25, sr)
	case core.CueShieldHum:
		return newTone(140, 0, WaveSine, 0.08, sr) // loop
	case core.CueShieldHit:
		return newDecayTone(300, ms(200), WaveSquare, 0.3, 15, sr)
	case core.CueShieldDown:
		return newSweep(520, 180, ms(250), WaveSine, 0.25, sr)
	case core.CueShieldDepleted:
		return newSweep(500, 80, ms(450), WaveSaw, 0.3, sr)
	case core.CueCamoOn:
		return newSweep(800, 1400, ms(180), WaveSine, 0.15, sr)
	case core.CueCamoOff:
		return newSweep(1400, 800, ms(180), WaveSine, 0.15, sr)
	case core.CueThrusterLoop:
		return mix(newTone(85, 0, WaveSaw, 0.12, sr), newTone(0, 0, WaveNoise, 0.05, sr)) // loop, pitched by stage
	case core.CueThrusterBoost:
		return newSweep(120, 320, ms(600), WaveSaw, 0.25, sr)
	case core.CueLandingSoft:
		return newDecayTone(120, ms(250), WaveSine, 0.3, 12, sr)
	case core.CueLandingHard:
		return mix(newDecayTone(90, ms(400), WaveSine, 0.45, 8, sr), newDecayTone(0, ms(200), WaveNoise, 0.25, 14, sr))
	case core.CueLandingCrash:
		return mix(newDecayTone(60, ms(800), WaveSine, 0.6, 4, sr), newDecayTone(0, ms(600), WaveNoise, 0.4, 6, sr))
	case core.CueFootstep:
		return newDecayTone(75, ms(90), WaveSine, 0.25, 30, sr)

	// Drones
	case core.CueDroneHum:
		return newTone(210, 0, WaveSaw, 0.1, sr) // loop, per-drone voice
	case core.CueDroneAlert:
		return mix(newTone(950, ms(100), WaveSquare, 0.2, sr), newSweep(950, 1250, ms(220), WaveSquare, 0.15, sr))
	case core.CueDroneFirePulse:
		return newDecayTone(700, ms(120), WaveSquare, 0.25, 18, sr)
	case core.CueDroneFirePlasma:
		return newSweep(600, 300, ms(200), WaveSaw, 0.28, sr)
	case core.CueDroneFireRail:
		return mix(newDecayTone(1400, ms(80), WaveSine, 0.3, 20, sr), newDecayTone(0, ms(250), WaveNoise, 0.2, 10, sr))
	case core.CueDroneExplosion:
		return mix(newDecayTone(55, ms(900), WaveSine, 0.6, 4, sr), newDecayTone(0, ms(700), WaveNoise, 0.45, 5, sr))
	case core.CueDroneDisabled:
		return newSweep(400, 60, ms(600), WaveSquare, 0.2, sr)

	// Player feedback
	case core.CueHullHit:
		return mix(newDecayTone(110, ms(300), WaveSine, 0.4, 10, sr), newDecayTone(0, ms(150), WaveNoise, 0.2, 18, sr))
	case core.CueMalfunction:
		return mix(newTone(320, ms(150), WaveSquare, 0.25, sr), newTone(240, ms(300), WaveSquare, 0.2, sr))
	case core.CueMalfunctionClear:
		return newSweep(320, 640, ms(200), WaveSine, 0.2, sr)
	case core.CueAimLock:
		return newTone(1500, ms(70), WaveSine, 0.22, sr)
	case core.CueAimAssist:
		return newTone(1000, ms(45), WaveSine, 0.14, sr)
	case core.CueGameOver:
		return mix(newSweep(440, 55, ms(1800), WaveSaw, 0.35, sr), newDecayTone(0, ms(1200), WaveNoise, 0.25, 3, sr))

	// Scan
	case core.CueRadarSweep:
		return newSweep(250, 1250, ms(450), WaveSine, 0.2, sr)
	case core.CueRadarPing:
		return newDecayTone(880, ms(160), WaveSine, 0.3, 14, sr)
	case core.CueRadarDenied:
		return newDecayTone(180, ms(200), WaveSquare, 0.2, 12, sr)
	case core.CueEchoPing:
		return newDecayTone(1100, ms(60), WaveSine, 0.25, 30, sr)
	}

	// Unknown cue: short neutral blip
	return newDecayTone(440, ms(80), WaveSine, 0.15, 20, sr)
}

// cueLoops reports whether a cue's recipe is an infinite streamer
func cueLoops(cue core.CueID) bool {
	switch cue {
	case core.CueChaingunFire, core.CueFabricatorRun,
		core.CueShieldHum, core.CueThrusterLoop, core.CueDroneHum:
		return true
	}
	return false
}
