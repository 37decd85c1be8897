package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// ChaingunSystem runs the rotary cannon state machine:
// Ready -> SpinUp -> Firing -> SpinDown -> Ready
// Transitions advance on elapsed time plus completion polling of the
// spin cue, never by blocking
type ChaingunSystem struct {
	world *engine.World
	res   engine.CoreResources

	state      component.ChaingunState
	stateSince float64
	spinHandle audio.Handle
	fireHandle audio.Handle
	roundAccum float64
	prevHeld   bool
	warnedLow  bool
	warnedCrit bool
}

func NewChaingunSystem(world *engine.World) engine.System {
	s := &ChaingunSystem{world: world}
	s.Init()
	return s
}

func (s *ChaingunSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.state = component.ChaingunReady
	s.stateSince = 0
	s.spinHandle = audio.NoHandle
	s.fireHandle = audio.NoHandle
	s.roundAccum = 0
}

func (s *ChaingunSystem) Name() string { return "chaingun" }

func (s *ChaingunSystem) Priority() int { return parameter.PriorityChaingun }

func (s *ChaingunSystem) EventTypes() []event.EventType { return nil }

func (s *ChaingunSystem) HandleEvent(ev event.GameEvent) {}

// State exposes the machine for tests
func (s *ChaingunSystem) State() component.ChaingunState { return s.state }

func (s *ChaingunSystem) transition(to component.ChaingunState) {
	s.state = to
	s.stateSince = s.res.Time.GameTime
}

func (s *ChaingunSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	now := s.res.Time.GameTime
	player := s.res.Audio.Player

	held := in.ChaingunHeld && !p.MalfunctionActive(event.MalfunctionWeapons, now)
	pressed := held && !s.prevHeld
	s.prevHeld = held

	switch s.state {
	case component.ChaingunReady:
		if pressed {
			if p.ChaingunAmmo <= 0 {
				player.Play(core.CueChaingunDry, audio.PlayOpts{})
				break
			}
			s.spinHandle = player.Play(core.CueChaingunSpinUp, audio.PlayOpts{})
			s.transition(component.ChaingunSpinUp)
		}

	case component.ChaingunSpinUp:
		if !held {
			player.Stop(s.spinHandle)
			s.spinHandle = player.Play(core.CueChaingunSpinDown, audio.PlayOpts{})
			s.transition(component.ChaingunSpinDown)
			break
		}
		if now-s.stateSince >= parameter.ChaingunSpinUpTime && player.Ended(s.spinHandle) {
			s.fireHandle = player.Play(core.CueChaingunFire, audio.PlayOpts{Loop: true})
			s.roundAccum = 0
			s.transition(component.ChaingunFiring)
		}

	case component.ChaingunFiring:
		if !held || p.ChaingunAmmo <= 0 {
			player.Stop(s.fireHandle)
			s.fireHandle = audio.NoHandle
			s.spinHandle = player.Play(core.CueChaingunSpinDown, audio.PlayOpts{})
			s.transition(component.ChaingunSpinDown)
			break
		}
		s.fireRounds()

	case component.ChaingunSpinDown:
		if now-s.stateSince >= parameter.ChaingunSpinDownTime {
			s.transition(component.ChaingunReady)
		}
	}
}

// fireRounds emits the frame's share of the fire rate and resolves hits
// against the nearest target in the firing arc
func (s *ChaingunSystem) fireRounds() {
	p := s.res.Player.State
	dt := s.res.Time.DeltaTime
	frame := s.res.Time.FrameNumber

	s.roundAccum += dt * parameter.ChaingunRoundsPerSec
	rounds := int(s.roundAccum)
	if rounds == 0 {
		return
	}
	s.roundAccum -= float64(rounds)

	spent := p.UseChaingunAmmo(rounds)
	if spent == 0 {
		return
	}
	s.res.Status.Ints.Get(status.KeyRoundsFired).Add(int64(spent))
	s.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{Weapon: event.WeaponChaingun})

	if target, ok := nearestInArc(s.world, frame, parameter.ChaingunRange, parameter.ChaingunArc); ok {
		s.world.PushEvent(event.EventDroneDamaged, &event.DroneDamagedPayload{
			Target: target.Entity,
			Amount: parameter.ChaingunDamage * float64(spent),
		})
	}

	s.ammoWarnings()
}

func (s *ChaingunSystem) ammoWarnings() {
	p := s.res.Player.State
	switch {
	case p.ChaingunAmmo <= parameter.ChaingunCriticalAmmo && !s.warnedCrit:
		s.warnedCrit = true
		s.res.Speech.Announcer.Announce("chaingun ammunition critical", speech.PriorityNormal)
	case p.ChaingunAmmo <= parameter.ChaingunLowAmmo && !s.warnedLow:
		s.warnedLow = true
		s.res.Speech.Announcer.Announce("chaingun ammunition low", speech.PriorityLow)
	}
	// Re-arm warnings after fabrication refills past the thresholds
	if p.ChaingunAmmo > parameter.ChaingunLowAmmo {
		s.warnedLow = false
	}
	if p.ChaingunAmmo > parameter.ChaingunCriticalAmmo {
		s.warnedCrit = false
	}
}
