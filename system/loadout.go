package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

// selectOrder maps the number row to weapon mounts
var selectOrder = [4]event.PlayerWeapon{
	event.WeaponChaingun,
	event.WeaponMissiles,
	event.WeaponBlaster,
	event.WeaponEmp,
}

// LoadoutSystem tracks which weapon mount the fabricator services
// Switching only retargets the selector; running weapon machines and
// an in-progress fabrication carry on untouched
type LoadoutSystem struct {
	world *engine.World
	res   engine.CoreResources
}

func NewLoadoutSystem(world *engine.World) engine.System {
	s := &LoadoutSystem{world: world}
	s.Init()
	return s
}

func (s *LoadoutSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
}

func (s *LoadoutSystem) Name() string { return "loadout" }

func (s *LoadoutSystem) Priority() int { return parameter.PriorityLoadout }

func (s *LoadoutSystem) EventTypes() []event.EventType { return nil }

func (s *LoadoutSystem) HandleEvent(ev event.GameEvent) {}

func (s *LoadoutSystem) Update() {
	sel := s.res.Input.Snapshot.WeaponSelect
	if sel < 1 || sel > len(selectOrder) {
		return
	}

	p := s.res.Player.State
	w := selectOrder[sel-1]
	if w == p.ActiveWeapon {
		return
	}
	p.ActiveWeapon = w
	s.res.Audio.Player.Play(core.CueWeaponSelect, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce(w.String()+" selected", speech.PriorityLow)
}
