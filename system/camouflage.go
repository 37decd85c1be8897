package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

// CamouflageSystem manages the optical camo toggle
// Firing any weapon or taking a hit breaks camo instantly
type CamouflageSystem struct {
	world *engine.World
	res   engine.CoreResources
}

func NewCamouflageSystem(world *engine.World) engine.System {
	s := &CamouflageSystem{world: world}
	s.Init()
	return s
}

func (s *CamouflageSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
}

func (s *CamouflageSystem) Name() string { return "camouflage" }

func (s *CamouflageSystem) Priority() int { return parameter.PriorityCamouflage }

func (s *CamouflageSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWeaponFired,
		event.EventPlayerDamaged,
	}
}

func (s *CamouflageSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWeaponFired, event.EventPlayerDamaged:
		p := s.res.Player.State
		if p.CamoActive {
			s.drop("camouflage broken")
		}
	}
}

func (s *CamouflageSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	dt := s.res.Time.DeltaTime

	if in.CamoToggle {
		if p.CamoActive {
			s.drop("camouflage off")
		} else if p.CamoEnergy > 0 {
			p.CamoActive = true
			s.res.Audio.Player.Play(core.CueCamoOn, audio.PlayOpts{})
			s.res.Speech.Announcer.Announce("camouflage on", speech.PriorityLow)
		}
	}

	if p.CamoActive {
		p.AddCamoEnergy(-parameter.CamoDrainRate * dt)
		if p.CamoEnergy <= 0 {
			s.drop("camouflage depleted")
		}
	} else {
		p.AddCamoEnergy(parameter.CamoRegenRate * dt)
	}
}

func (s *CamouflageSystem) drop(announce string) {
	p := s.res.Player.State
	p.CamoActive = false
	s.res.Audio.Player.Play(core.CueCamoOff, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce(announce, speech.PriorityNormal)
}
