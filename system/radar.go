package system

import (
	"fmt"
	"math"
	"sort"

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

// radarPing is one scheduled contact report from a completed sweep
type radarPing struct {
	at       float64
	pan      float64
	volume   float64
	pitch    float64
	distance float64
	cardinal string
	band     string
}

// RadarSystem answers scan requests with a sweep followed by one ping
// per contact, nearest first, spaced at a fixed gap
// Pings use the contact's position at sweep time, not at playback time
type RadarSystem struct {
	world *engine.World
	res   engine.CoreResources

	lastScan float64
	pending  []radarPing
}

func NewRadarSystem(world *engine.World) engine.System {
	s := &RadarSystem{world: world}
	s.Init()
	return s
}

func (s *RadarSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.lastScan = -parameter.RadarCooldown
	s.pending = nil
}

func (s *RadarSystem) Name() string { return "radar" }

func (s *RadarSystem) Priority() int { return parameter.PriorityRadar }

func (s *RadarSystem) EventTypes() []event.EventType { return nil }

func (s *RadarSystem) HandleEvent(ev event.GameEvent) {}

func (s *RadarSystem) Update() {
	now := s.res.Time.GameTime

	if s.res.Input.Snapshot.RadarKey {
		s.requestScan(now)
	}

	// Emit due pings in order
	for len(s.pending) > 0 && now >= s.pending[0].at {
		ping := s.pending[0]
		s.pending = s.pending[1:]
		s.emit(ping)
	}
}

func (s *RadarSystem) requestScan(now float64) {
	p := s.res.Player.State

	if p.MalfunctionActive(event.MalfunctionRadar, now) {
		s.res.Audio.Player.Play(core.CueRadarDenied, audio.PlayOpts{})
		s.res.Speech.Announcer.Announce("radar offline", speech.PriorityNormal)
		return
	}
	if now-s.lastScan < parameter.RadarCooldown {
		return
	}
	s.lastScan = now
	s.scan(now)
}

func (s *RadarSystem) scan(now float64) {
	s.res.Audio.Player.Play(core.CueRadarSweep, audio.PlayOpts{})
	s.res.Status.Ints.Get(status.KeyRadarScans).Add(1)

	var contacts []component.DroneComponent
	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}
		if d.Spatial.Distance > parameter.RadarRange {
			continue
		}
		contacts = append(contacts, d)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].Spatial.Distance < contacts[j].Spatial.Distance
	})

	switch len(contacts) {
	case 0:
		s.res.Speech.Announcer.Announce("no contacts", speech.PriorityNormal)
		return
	case 1:
		s.res.Speech.Announcer.Announce("one contact", speech.PriorityNormal)
	default:
		s.res.Speech.Announcer.Announce(
			fmt.Sprintf("%d contacts", len(contacts)), speech.PriorityNormal)
	}

	// Stagger pings after the sweep finishes
	s.pending = s.pending[:0]
	for i, d := range contacts {
		s.pending = append(s.pending, radarPing{
			at:       now + parameter.RadarPingGap*float64(i+1),
			pan:      d.Spatial.Pan,
			volume:   d.Spatial.Volume,
			pitch:    spatial.RadarPitch(d.Spatial.Distance),
			distance: d.Spatial.Distance,
			cardinal: spatial.CardinalName(d.Spatial.Bearing),
			band:     healthBand(d.Hull),
		})
	}
}

func (s *RadarSystem) emit(ping radarPing) {
	s.res.Audio.Player.Play(core.CueRadarPing, audio.PlayOpts{
		Pan:    ping.pan,
		Volume: ping.volume,
		Pitch:  ping.pitch,
	})
	s.res.Speech.Announcer.Announce(
		fmt.Sprintf("%d meters, %s, %s",
			int(math.Round(ping.distance)), ping.cardinal, ping.band),
		speech.PriorityLow)
}

// healthBand maps a drone hull value to a spoken condition word
func healthBand(hull float64) string {
	switch frac := hull / parameter.DroneHull; {
	case frac > parameter.BandHealthyFrac:
		return "healthy"
	case frac > parameter.BandWoundedFrac:
		return "wounded"
	case frac > parameter.BandDamagedFrac:
		return "damaged"
	default:
		return "critical"
	}
}
