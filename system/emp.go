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

// EmpSystem runs the pulse device machine:
// Ready -> Priming -> (burst) -> Recharging -> Ready
// The burst itself is resolved by the drone system via event
type EmpSystem struct {
	world *engine.World
	res   engine.CoreResources

	state       component.EmpState
	stateSince  float64
	primeHandle audio.Handle
}

func NewEmpSystem(world *engine.World) engine.System {
	s := &EmpSystem{world: world}
	s.Init()
	return s
}

func (s *EmpSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.state = component.EmpReady
	s.stateSince = 0
	s.primeHandle = audio.NoHandle
}

func (s *EmpSystem) Name() string { return "emp" }

func (s *EmpSystem) Priority() int { return parameter.PriorityEmp }

func (s *EmpSystem) EventTypes() []event.EventType { return nil }

func (s *EmpSystem) HandleEvent(ev event.GameEvent) {}

// State exposes the machine for tests
func (s *EmpSystem) State() component.EmpState { return s.state }

func (s *EmpSystem) transition(to component.EmpState) {
	s.state = to
	s.stateSince = s.res.Time.GameTime
}

func (s *EmpSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	now := s.res.Time.GameTime
	player := s.res.Audio.Player

	pressed := in.EmpKey && !p.MalfunctionActive(event.MalfunctionWeapons, now)

	switch s.state {
	case component.EmpReady:
		if pressed && p.EmpCharges > 0 {
			s.primeHandle = player.Play(core.CueEmpPrime, audio.PlayOpts{})
			s.transition(component.EmpPriming)
		}

	case component.EmpPriming:
		if now-s.stateSince >= parameter.EmpPrimeTime && player.Ended(s.primeHandle) {
			s.burst()
			s.transition(component.EmpRecharging)
		}

	case component.EmpRecharging:
		if now-s.stateSince >= parameter.EmpRechargeTime {
			player.Play(core.CueEmpRecharge, audio.PlayOpts{Volume: 0.5})
			s.transition(component.EmpReady)
		}
	}
}

func (s *EmpSystem) burst() {
	p := s.res.Player.State
	if !p.UseEmpCharge() {
		return
	}
	s.res.Audio.Player.Play(core.CueEmpBurst, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce("e m p discharged", speech.PriorityNormal)
	s.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{Weapon: event.WeaponEmp})
	s.world.PushEvent(event.EventEmpBurst, &event.EmpBurstPayload{
		X: p.X, Y: p.Y, Radius: parameter.EmpRadius,
	})
}
