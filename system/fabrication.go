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

// FabricationSystem converts salvaged debris into ammunition
// Debris is consumed up front; the credit lands when the run completes
// Starting with insufficient debris or while running is a silent no-op
type FabricationSystem struct {
	world *engine.World
	res   engine.CoreResources

	state      component.FabricationState
	stateSince float64
	runHandle  audio.Handle
}

func NewFabricationSystem(world *engine.World) engine.System {
	s := &FabricationSystem{world: world}
	s.Init()
	return s
}

func (s *FabricationSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.state = component.FabricationIdle
	s.stateSince = 0
	s.runHandle = audio.NoHandle
}

func (s *FabricationSystem) Name() string { return "fabrication" }

func (s *FabricationSystem) Priority() int { return parameter.PriorityFabrication }

func (s *FabricationSystem) EventTypes() []event.EventType { return nil }

func (s *FabricationSystem) HandleEvent(ev event.GameEvent) {}

// State exposes the machine for tests
func (s *FabricationSystem) State() component.FabricationState { return s.state }

func (s *FabricationSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	now := s.res.Time.GameTime
	player := s.res.Audio.Player

	switch s.state {
	case component.FabricationIdle:
		if in.FabricateKey && p.UseDebris(parameter.FabricationDebrisCost) {
			s.runHandle = player.Play(core.CueFabricatorRun, audio.PlayOpts{Loop: true})
			s.state = component.FabricationRunning
			s.stateSince = now
		}

	case component.FabricationRunning:
		if now-s.stateSince >= parameter.FabricationTime {
			s.complete()
		}
	}
}

func (s *FabricationSystem) complete() {
	p := s.res.Player.State
	player := s.res.Audio.Player

	if s.runHandle != audio.NoHandle {
		player.Stop(s.runHandle)
		s.runHandle = audio.NoHandle
	}

	// Credit lands on the mount selected at completion time
	switch p.ActiveWeapon {
	case event.WeaponChaingun:
		p.AddChaingunAmmo(parameter.FabricationChaingun)
	case event.WeaponBlaster:
		p.AddBlasterAmmo(parameter.FabricationBlaster)
	case event.WeaponMissiles:
		p.AddMissiles(parameter.FabricationMissiles)
	case event.WeaponEmp:
		p.AddEmpCharges(parameter.FabricationEmp)
	}

	player.Play(core.CueFabricatorDone, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce(p.ActiveWeapon.String()+" ammo replenished", speech.PriorityNormal)
	s.res.Status.Ints.Get(status.KeyFabrications).Add(1)

	s.state = component.FabricationIdle
	s.stateSince = s.res.Time.GameTime
}
