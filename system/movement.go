package system

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// MovementSystem handles ground locomotion, turning, footsteps and
// debris salvage from wrecks
type MovementSystem struct {
	world *engine.World
	res   engine.CoreResources

	sinceStep float64
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.sinceStep = 0
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) EventTypes() []event.EventType { return nil }

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {}

func (s *MovementSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	dt := s.res.Time.DeltaTime
	now := s.res.Time.GameTime

	// Turning is never gated; a movement malfunction slows translation only
	if in.TurnLeft {
		p.Heading -= parameter.TurnRate * dt
	}
	if in.TurnRight {
		p.Heading += parameter.TurnRate * dt
	}
	p.Heading = math.Mod(p.Heading+360, 360)

	speed := 0.0
	if in.Forward {
		speed = parameter.WalkSpeed
	} else if in.Backward {
		speed = -parameter.WalkSpeed * 0.6
	}
	if p.MalfunctionActive(event.MalfunctionMovement, now) {
		speed *= parameter.MalfunctionSpeedFactor
	}
	p.Speed = speed

	if speed != 0 {
		rad := p.Heading * math.Pi / 180
		p.X += math.Sin(rad) * speed * dt
		p.Y += math.Cos(rad) * speed * dt

		if !p.Airborne {
			s.sinceStep += dt
			interval := parameter.FootstepBaseInterval * parameter.WalkSpeed / math.Abs(speed)
			if s.sinceStep >= interval {
				s.sinceStep = 0
				s.res.Audio.Player.Play(core.CueFootstep, audio.PlayOpts{Volume: 0.6})
			}
		}
	} else {
		s.sinceStep = 0
	}

	if !p.Airborne {
		s.collectDebris()
	}
}

// collectDebris transfers salvage from wrecks inside the pickup radius
func (s *MovementSystem) collectDebris() {
	p := s.res.Player.State

	var toDestroy []core.Entity
	for _, e := range s.world.Components.Wreck.GetAllEntities() {
		w, ok := s.world.Components.Wreck.GetComponent(e)
		if !ok || w.Debris <= 0 {
			continue
		}
		if math.Hypot(w.X-p.X, w.Y-p.Y) > parameter.DebrisPickupRadius {
			continue
		}

		taken := p.AddDebris(w.Debris)
		if taken == 0 {
			continue // carrying capacity full
		}
		w.Debris -= taken
		s.res.Audio.Player.Play(core.CueDebrisPickup, audio.PlayOpts{})
		s.res.Speech.Announcer.Announce(fmt.Sprintf("debris %d", p.Debris), speech.PriorityLow)
		s.res.Status.Ints.Get(status.KeyPlayerDebris).Store(int64(p.Debris))

		if w.Debris <= 0 {
			toDestroy = append(toDestroy, e)
		} else {
			s.world.Components.Wreck.SetComponent(e, w)
		}
	}
	for _, e := range toDestroy {
		s.world.DestroyEntity(e)
	}
}
