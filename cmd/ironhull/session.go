package main

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/config"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
	"github.com/lixenwraith/ironhull/system"
)

// session owns the world, its systems and the fixed-timestep loop
type session struct {
	log zerolog.Logger

	world  *engine.World
	router *engine.EventRouter
	queue  *event.EventQueue
	frame  atomic.Int64

	timeRes  *engine.TimeResource
	inputRes *engine.InputResource
	player   *component.PlayerState
	shared   *engine.SessionResource
	announce speech.Announcer
	stats    *status.Registry

	gameTime float64
	paused   bool
}

func newSession(cfg *config.Config, player audio.Player, announcer speech.Announcer, log zerolog.Logger) *session {
	s := &session{
		log:      log.With().Str("component", "session").Logger(),
		world:    engine.NewWorld(),
		queue:    event.NewEventQueue(),
		timeRes:  &engine.TimeResource{},
		inputRes: &engine.InputResource{},
		player:   component.NewPlayerState(),
		shared:   &engine.SessionResource{DroneCeiling: cfg.DroneCeiling},
		announce: announcer,
		stats:    status.NewRegistry(),
	}
	s.world.SetEventMetadata(s.queue, &s.frame)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine.AddResource(s.world.Resources, s.timeRes)
	engine.AddResource(s.world.Resources, &engine.PlayerResource{State: s.player})
	engine.AddResource(s.world.Resources, s.inputRes)
	engine.AddResource(s.world.Resources, &engine.AudioResource{Player: player})
	engine.AddResource(s.world.Resources, &engine.SpeechResource{Announcer: announcer})
	engine.AddResource(s.world.Resources, &engine.RandResource{Rand: rand.New(rand.NewSource(seed))})
	engine.AddResource(s.world.Resources, s.shared)
	engine.AddResource(s.world.Resources, s.stats)

	s.world.AddSystem(system.NewMovementSystem(s.world))
	s.world.AddSystem(system.NewThrusterSystem(s.world))
	s.world.AddSystem(system.NewCamouflageSystem(s.world))
	s.world.AddSystem(system.NewTargetingSystem(s.world))
	s.world.AddSystem(system.NewLoadoutSystem(s.world))
	s.world.AddSystem(system.NewChaingunSystem(s.world))
	s.world.AddSystem(system.NewBlasterSystem(s.world))
	s.world.AddSystem(system.NewMissileSystem(s.world))
	s.world.AddSystem(system.NewEmpSystem(s.world))
	s.world.AddSystem(system.NewFabricationSystem(s.world))
	s.world.AddSystem(system.NewShieldSystem(s.world))
	s.world.AddSystem(system.NewDroneSystem(s.world))
	s.world.AddSystem(system.NewSpawnSystem(s.world))
	s.world.AddSystem(system.NewDamageSystem(s.world))
	s.world.AddSystem(system.NewRadarSystem(s.world))
	s.world.AddSystem(system.NewEchoSystem(s.world))
	s.world.AddSystem(system.NewDiagnosticsSystem(s.world, log))

	s.router = engine.NewEventRouter(s.queue)
	s.router.RegisterSystems(s.world)

	s.log.Info().
		Int("drone_ceiling", cfg.DroneCeiling).
		Int64("seed", seed).
		Msg("session created")
	return s
}

// tick advances exactly one simulation frame
func (s *session) tick(dt float64, now time.Time, snap input.Snapshot) {
	if dt > parameter.MaxDeltaTime {
		dt = parameter.MaxDeltaTime
	}
	s.gameTime += dt
	f := s.frame.Add(1)

	s.timeRes.Update(s.gameTime, dt, now, f)
	s.inputRes.Snapshot = snap
	routed := s.router.DispatchAll()
	s.stats.Ints.Get(status.KeyEventsRouted).Add(int64(routed))
	s.stats.Ints.Get(status.KeyEventsDropped).Store(int64(s.queue.Dropped()))
	s.world.Update()
}

// over reports whether the mech has been destroyed
func (s *session) over() bool { return s.shared.Over }

// flushEvents drains events queued in the final frame so the
// diagnostics log records the loss
func (s *session) flushEvents() { s.router.DispatchAll() }

// restart wipes the battlefield and respawns the mech
// Game time keeps running; system clocks are re-initialized
func (s *session) restart() {
	s.world.Clear()
	s.queue.Consume()
	s.player.Reset()
	s.stats.Reset()
	s.shared.Over = false
	for _, sys := range s.world.Systems() {
		sys.Init()
	}
	s.announce.Announce("systems restored, good hunting", speech.PriorityCritical)
	s.log.Info().Msg("session restarted")
}

// togglePause flips the pause state and reports the new state
func (s *session) togglePause() bool {
	s.paused = !s.paused
	if s.paused {
		s.announce.Announce("paused", speech.PriorityCritical)
	} else {
		s.announce.Announce("resumed", speech.PriorityCritical)
	}
	return s.paused
}
