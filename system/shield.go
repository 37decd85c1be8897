package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

// ShieldSystem manages the hold-to-raise energy shield
// Damage absorption itself happens in the damage system; this system
// owns activation, drain and regeneration
type ShieldSystem struct {
	world *engine.World
	res   engine.CoreResources

	humHandle audio.Handle
	wasHeld   bool
}

func NewShieldSystem(world *engine.World) engine.System {
	s := &ShieldSystem{world: world}
	s.Init()
	return s
}

func (s *ShieldSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.humHandle = audio.NoHandle
	s.wasHeld = false
}

func (s *ShieldSystem) Name() string { return "shield" }

func (s *ShieldSystem) Priority() int { return parameter.PriorityShield }

func (s *ShieldSystem) EventTypes() []event.EventType { return nil }

func (s *ShieldSystem) HandleEvent(ev event.GameEvent) {}

func (s *ShieldSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	dt := s.res.Time.DeltaTime

	// Raising is edge triggered: after a depletion drop the key must be
	// released before the shield can come up again
	switch {
	case in.ShieldHeld && !s.wasHeld && !p.ShieldActive && p.ShieldEnergy > 0:
		p.ShieldActive = true
		s.res.Audio.Player.Play(core.CueShieldUp, audio.PlayOpts{})
		s.humHandle = s.res.Audio.Player.Play(core.CueShieldHum, audio.PlayOpts{Loop: true})

	case !in.ShieldHeld && p.ShieldActive:
		s.deactivate(core.CueShieldDown, "")
	}
	s.wasHeld = in.ShieldHeld

	if p.ShieldActive {
		p.AddShieldEnergy(-parameter.ShieldDrainRate * dt)
		if p.ShieldEnergy <= 0 {
			s.deactivate(core.CueShieldDepleted, "shield depleted")
		}
	} else {
		p.AddShieldEnergy(parameter.ShieldRegenRate * dt)
	}
}

func (s *ShieldSystem) deactivate(cue core.CueID, announce string) {
	p := s.res.Player.State
	p.ShieldActive = false
	if s.humHandle != audio.NoHandle {
		s.res.Audio.Player.Stop(s.humHandle)
		s.humHandle = audio.NoHandle
	}
	s.res.Audio.Player.Play(cue, audio.PlayOpts{})
	if announce != "" {
		s.res.Speech.Announcer.Announce(announce, speech.PriorityNormal)
	}
}
