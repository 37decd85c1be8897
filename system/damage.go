package system

import (
	"fmt"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// DamageSystem resolves incoming player damage: shield absorption,
// hull bands, malfunction rolls and game over. It also runs
// malfunction expiry and out-of-combat hull regeneration
type DamageSystem struct {
	world *engine.World
	res   engine.CoreResources

	// Active flags per kind, tracked so expiry fires a restore cue once
	active [event.MalfunctionKindCount]bool
}

func NewDamageSystem(world *engine.World) engine.System {
	s := &DamageSystem{world: world}
	s.Init()
	return s
}

func (s *DamageSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.active = [event.MalfunctionKindCount]bool{}
}

func (s *DamageSystem) Name() string { return "damage" }

func (s *DamageSystem) Priority() int { return parameter.PriorityDamage }

func (s *DamageSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventPlayerDamaged}
}

func (s *DamageSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.PlayerDamagedPayload)
	if !ok {
		return
	}
	s.apply(p)
}

func (s *DamageSystem) apply(hit *event.PlayerDamagedPayload) {
	p := s.res.Player.State
	player := s.res.Audio.Player
	if s.res.Session.Over || p.Hull <= 0 {
		return
	}

	dmg := hit.Amount
	if p.ShieldActive && p.ShieldEnergy > 0 {
		dmg *= 1 - parameter.ShieldAbsorption
		player.Play(core.CueShieldHit, audio.PlayOpts{})
	} else {
		player.Play(core.CueHullHit, audio.PlayOpts{})
	}

	before := p.Hull
	p.AddHull(-dmg)
	s.res.Status.Floats.Get(status.KeyPlayerHull).Set(p.Hull)

	s.announceBands(before, p.Hull)

	if p.Hull <= 0 {
		s.gameOver()
		return
	}

	// Crashes batter the airframe but do not trip electronics
	if hit.Source == event.SourceDrone {
		s.rollMalfunction()
	}
}

// announceBands reports each threshold crossed downward by this hit
func (s *DamageSystem) announceBands(before, after float64) {
	bands := []struct {
		level float64
		name  string
		text  string
	}{
		{parameter.HullWounded, "wounded", "hull seventy five percent"},
		{parameter.HullDamaged, "damaged", "hull fifty percent"},
		{parameter.HullCritical, "critical", "hull critical"},
	}
	for _, b := range bands {
		if before > b.level && after <= b.level {
			s.res.Speech.Announcer.Announce(b.text, speech.PriorityCritical)
			s.world.PushEvent(event.EventHullBand, &event.HullBandPayload{
				Band: b.name, Hull: after,
			})
		}
	}
}

func (s *DamageSystem) rollMalfunction() {
	rng := s.res.Rand.Rand
	if rng.Float64() >= parameter.MalfunctionChance {
		return
	}

	p := s.res.Player.State
	now := s.res.Time.GameTime
	kind := event.MalfunctionKind(rng.Intn(int(event.MalfunctionKindCount)))

	p.SetMalfunction(kind, now+parameter.MalfunctionDuration)
	s.active[kind] = true

	s.res.Audio.Player.Play(core.CueMalfunction, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce(
		fmt.Sprintf("%s malfunction", kind.String()), speech.PriorityCritical)
	s.res.Status.Ints.Get(status.KeyMalfunctions).Add(1)
	s.world.PushEvent(event.EventMalfunction, &event.MalfunctionPayload{
		Kind: kind, Started: true,
	})
}

func (s *DamageSystem) gameOver() {
	s.res.Session.Over = true
	s.res.Audio.Player.Play(core.CueGameOver, audio.PlayOpts{})
	s.res.Speech.Announcer.Announce("mech destroyed", speech.PriorityCritical)
	s.world.PushEvent(event.EventGameOver, nil)
}

func (s *DamageSystem) Update() {
	p := s.res.Player.State
	now := s.res.Time.GameTime
	dt := s.res.Time.DeltaTime

	for kind := event.MalfunctionKind(0); kind < event.MalfunctionKindCount; kind++ {
		if s.active[kind] && !p.MalfunctionActive(kind, now) {
			s.active[kind] = false
			s.res.Audio.Player.Play(core.CueMalfunctionClear, audio.PlayOpts{Volume: 0.6})
			s.res.Speech.Announcer.Announce(
				fmt.Sprintf("%s restored", kind.String()), speech.PriorityNormal)
			s.world.PushEvent(event.EventMalfunction, &event.MalfunctionPayload{
				Kind: kind, Started: false,
			})
		}
	}

	s.regenerate(dt)
}

// regenerate repairs hull only when no drone is inside the safe radius
func (s *DamageSystem) regenerate(dt float64) {
	p := s.res.Player.State
	if s.res.Session.Over || p.Hull <= 0 || p.Hull >= parameter.HullMax {
		return
	}
	if dist, ok := nearestDroneDistance(s.world); ok && dist <= parameter.HullRegenSafeDist {
		return
	}
	p.AddHull(parameter.HullRegenRate * dt)
	s.res.Status.Floats.Get(status.KeyPlayerHull).Set(p.Hull)
}
