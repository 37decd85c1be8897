package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/spatial"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// EchoSystem emits a repeating ping toward the nearest contact while
// enabled; the interval shortens as the contact closes, Geiger style
type EchoSystem struct {
	world *engine.World
	res   engine.CoreResources

	enabled  bool
	nextPing float64
}

func NewEchoSystem(world *engine.World) engine.System {
	s := &EchoSystem{world: world}
	s.Init()
	return s
}

func (s *EchoSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.enabled = false
	s.nextPing = 0
}

func (s *EchoSystem) Name() string { return "echo" }

func (s *EchoSystem) Priority() int { return parameter.PriorityEcho }

func (s *EchoSystem) EventTypes() []event.EventType { return nil }

func (s *EchoSystem) HandleEvent(ev event.GameEvent) {}

// Enabled reports whether echolocation is on
func (s *EchoSystem) Enabled() bool { return s.enabled }

func (s *EchoSystem) Update() {
	now := s.res.Time.GameTime

	if s.res.Input.Snapshot.EchoToggle {
		s.enabled = !s.enabled
		if s.enabled {
			s.nextPing = now
			s.res.Speech.Announcer.Announce("echo on", speech.PriorityLow)
		} else {
			s.res.Speech.Announcer.Announce("echo off", speech.PriorityLow)
		}
	}
	if !s.enabled {
		return
	}

	nearest, ok := s.nearestContact()
	if !ok {
		return
	}
	if now < s.nextPing {
		return
	}

	s.res.Audio.Player.Play(core.CueEchoPing, audio.PlayOpts{
		Pan:    nearest.Spatial.Pan,
		Volume: nearest.Spatial.Volume,
	})
	s.res.Status.Ints.Get(status.KeyEchoPings).Add(1)
	s.nextPing = now + spatial.EchoInterval(nearest.Spatial.Distance)
}

func (s *EchoSystem) nearestContact() (component.DroneComponent, bool) {
	var best component.DroneComponent
	found := false
	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}
		if d.Spatial.Distance > parameter.RadarRange {
			continue
		}
		if !found || d.Spatial.Distance < best.Spatial.Distance {
			best = d
			found = true
		}
	}
	return best, found
}
