package system

import (
	"fmt"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

// ThrusterSystem handles vertical flight: staged lift against gravity,
// boost, energy drain and landing classification
type ThrusterSystem struct {
	world *engine.World
	res   engine.CoreResources

	loopHandle audio.Handle
	altBand    int
}

func NewThrusterSystem(world *engine.World) engine.System {
	s := &ThrusterSystem{world: world}
	s.Init()
	return s
}

func (s *ThrusterSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.loopHandle = audio.NoHandle
	s.altBand = 0
}

func (s *ThrusterSystem) Name() string { return "thruster" }

func (s *ThrusterSystem) Priority() int { return parameter.PriorityThruster }

func (s *ThrusterSystem) EventTypes() []event.EventType { return nil }

func (s *ThrusterSystem) HandleEvent(ev event.GameEvent) {}

func (s *ThrusterSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	dt := s.res.Time.DeltaTime
	now := s.res.Time.GameTime

	gated := p.MalfunctionActive(event.MalfunctionThrusters, now)

	if in.ThrusterUp && !gated && p.ThrusterStage < parameter.ThrusterStages {
		p.ThrusterStage++
		s.announceStage(p.ThrusterStage)
	}
	if in.ThrusterDown && p.ThrusterStage > 0 {
		p.ThrusterStage--
		s.announceStage(p.ThrusterStage)
	}

	// Energy: drain scales with stage, regen only while fully off
	if p.ThrusterStage > 0 {
		p.AddThrusterEnergy(-float64(p.ThrusterStage) * parameter.ThrusterDrainPerStage * dt)
		if p.ThrusterEnergy <= 0 {
			p.ThrusterStage = 0
			s.res.Speech.Announcer.Announce("thruster energy depleted", speech.PriorityNormal)
		}
	} else {
		p.AddThrusterEnergy(parameter.ThrusterRegenRate * dt)
	}

	lift := 0.0
	if p.ThrusterStage > 0 && !gated {
		lift = float64(p.ThrusterStage) * parameter.ThrusterLiftPerStage
	}

	if in.BoostKey && !gated && p.ThrusterStage >= parameter.ThrusterBoostStage && p.ThrusterEnergy >= 10 {
		p.AddThrusterEnergy(-10)
		p.VerticalVel += 15
		s.res.Audio.Player.Play(core.CueThrusterBoost, audio.PlayOpts{})
	}

	if p.Airborne || lift > 0 {
		p.VerticalVel += (lift - parameter.Gravity) * dt
		p.Altitude += p.VerticalVel * dt
		p.Airborne = true

		if p.Altitude <= 0 {
			s.land(p.VerticalVel)
			p.Altitude = 0
			p.VerticalVel = 0
			p.Airborne = false
		}
		s.announceAltitude(p.Altitude)
	}

	s.updateLoop(p.ThrusterStage, gated)
}

// land classifies touchdown by descent rate
func (s *ThrusterSystem) land(verticalVel float64) {
	descent := -verticalVel
	switch {
	case descent <= parameter.LandingSoftMax:
		s.res.Audio.Player.Play(core.CueLandingSoft, audio.PlayOpts{})
	case descent <= parameter.LandingHardMax:
		s.res.Audio.Player.Play(core.CueLandingHard, audio.PlayOpts{})
		s.res.Speech.Announcer.Announce("hard landing", speech.PriorityNormal)
	default:
		s.res.Audio.Player.Play(core.CueLandingCrash, audio.PlayOpts{})
		damage := (descent - parameter.LandingHardMax) * parameter.CrashDamagePerFt
		s.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
			Amount: damage,
			Source: event.SourceCrash,
			From:   core.InvalidEntity,
		})
	}
}

// updateLoop keeps the thruster drone pitched to the active stage
// Pitch climbs through the discrete stages, one step per stage
func (s *ThrusterSystem) updateLoop(stage int, gated bool) {
	player := s.res.Audio.Player

	if stage <= 0 || gated {
		if s.loopHandle != audio.NoHandle {
			player.Stop(s.loopHandle)
			s.loopHandle = audio.NoHandle
		}
		return
	}

	if s.loopHandle == audio.NoHandle || player.Ended(s.loopHandle) {
		s.loopHandle = player.Play(core.CueThrusterLoop, audio.PlayOpts{Loop: true})
	}

	frac := float64(stage) / float64(parameter.ThrusterStages)
	pitch := parameter.ThrusterPitchMin + (parameter.ThrusterPitchMax-parameter.ThrusterPitchMin)*frac
	player.SetPitch(s.loopHandle, pitch)
	player.SetVolume(s.loopHandle, 0.3+0.7*frac)
}

// announceAltitude calls out band crossings while airborne
func (s *ThrusterSystem) announceAltitude(altitude float64) {
	band := int(altitude / parameter.AltitudeCallBand)
	if band == s.altBand {
		return
	}
	s.altBand = band
	if band > 0 {
		s.res.Speech.Announcer.Announce(
			fmt.Sprintf("%d feet", band*int(parameter.AltitudeCallBand)), speech.PriorityLow)
	}
}

func (s *ThrusterSystem) announceStage(stage int) {
	pct := stage * 100 / parameter.ThrusterStages
	if stage%5 == 0 {
		s.res.Speech.Announcer.Announce(fmt.Sprintf("thrust %d percent", pct), speech.PriorityLow)
	}
}
