package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

// BlasterSystem runs the charge weapon machine:
// Ready -> Charging -> (fire) -> Cooldown -> Ready
// Releasing the trigger during the charge cancels cleanly
type BlasterSystem struct {
	world *engine.World
	res   engine.CoreResources

	state        component.BlasterState
	stateSince   float64
	chargeHandle audio.Handle
	warnedLow    bool
}

func NewBlasterSystem(world *engine.World) engine.System {
	s := &BlasterSystem{world: world}
	s.Init()
	return s
}

func (s *BlasterSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.state = component.BlasterReady
	s.stateSince = 0
	s.chargeHandle = audio.NoHandle
}

func (s *BlasterSystem) Name() string { return "blaster" }

func (s *BlasterSystem) Priority() int { return parameter.PriorityBlaster }

func (s *BlasterSystem) EventTypes() []event.EventType { return nil }

func (s *BlasterSystem) HandleEvent(ev event.GameEvent) {}

// State exposes the machine for tests
func (s *BlasterSystem) State() component.BlasterState { return s.state }

func (s *BlasterSystem) transition(to component.BlasterState) {
	s.state = to
	s.stateSince = s.res.Time.GameTime
}

func (s *BlasterSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	now := s.res.Time.GameTime
	player := s.res.Audio.Player

	held := in.BlasterHeld && !p.MalfunctionActive(event.MalfunctionWeapons, now)

	switch s.state {
	case component.BlasterReady:
		if held && p.BlasterAmmo > 0 {
			s.chargeHandle = player.Play(core.CueBlasterCharge, audio.PlayOpts{})
			s.transition(component.BlasterCharging)
		}

	case component.BlasterCharging:
		if !held {
			// Cancel: no cell spent, no cooldown
			player.Stop(s.chargeHandle)
			s.chargeHandle = audio.NoHandle
			s.transition(component.BlasterReady)
			break
		}
		if now-s.stateSince >= parameter.BlasterChargeTime && player.Ended(s.chargeHandle) {
			s.fire()
			s.transition(component.BlasterCoolingDown)
		}

	case component.BlasterCoolingDown:
		if now-s.stateSince >= parameter.BlasterCooldown {
			s.transition(component.BlasterReady)
		}
	}
}

func (s *BlasterSystem) fire() {
	p := s.res.Player.State
	frame := s.res.Time.FrameNumber

	if !p.UseBlasterAmmo() {
		return
	}
	s.res.Audio.Player.Play(core.CueBlasterFire, audio.PlayOpts{})
	s.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{Weapon: event.WeaponBlaster})

	if target, ok := nearestInArc(s.world, frame, parameter.BlasterRange, parameter.BlasterArc); ok {
		s.world.PushEvent(event.EventDroneDamaged, &event.DroneDamagedPayload{
			Target: target.Entity,
			Amount: parameter.BlasterDamage,
		})
	}

	if p.BlasterAmmo <= parameter.BlasterLowAmmo && !s.warnedLow {
		s.warnedLow = true
		s.res.Speech.Announcer.Announce("blaster cells low", speech.PriorityLow)
	}
	if p.BlasterAmmo > parameter.BlasterLowAmmo {
		s.warnedLow = false
	}
}
