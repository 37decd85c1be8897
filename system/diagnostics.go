package system

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// DiagnosticsSystem is the observability tail of the frame: it logs
// notable events, periodically dumps counters at debug level, and
// answers the spoken status query
type DiagnosticsSystem struct {
	world *engine.World
	res   engine.CoreResources
	log   zerolog.Logger

	lastDump float64
}

// Debug counter dump interval in seconds
const statsDumpInterval = 10.0

func NewDiagnosticsSystem(world *engine.World, log zerolog.Logger) engine.System {
	s := &DiagnosticsSystem{world: world, log: log.With().Str("system", "diagnostics").Logger()}
	s.Init()
	return s
}

func (s *DiagnosticsSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.lastDump = 0
}

func (s *DiagnosticsSystem) Name() string { return "diagnostics" }

func (s *DiagnosticsSystem) Priority() int { return parameter.PriorityDiagnostics }

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMalfunction,
		event.EventHullBand,
		event.EventDroneDestroyed,
		event.EventGameOver,
	}
}

func (s *DiagnosticsSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMalfunction:
		if p, ok := ev.Payload.(*event.MalfunctionPayload); ok {
			s.log.Info().
				Str("kind", p.Kind.String()).
				Bool("started", p.Started).
				Int64("frame", ev.Frame).
				Msg("malfunction")
		}
	case event.EventHullBand:
		if p, ok := ev.Payload.(*event.HullBandPayload); ok {
			s.log.Warn().
				Str("band", p.Band).
				Float64("hull", p.Hull).
				Int64("frame", ev.Frame).
				Msg("hull band crossed")
		}
	case event.EventDroneDestroyed:
		if p, ok := ev.Payload.(*event.DroneDestroyedPayload); ok {
			s.log.Info().
				Uint64("entity", uint64(p.Entity)).
				Float64("x", p.X).
				Float64("y", p.Y).
				Int64("frame", ev.Frame).
				Msg("drone destroyed")
		}
	case event.EventGameOver:
		s.log.Warn().Int64("frame", ev.Frame).Msg("game over")
	}
}

func (s *DiagnosticsSystem) Update() {
	now := s.res.Time.GameTime

	s.res.Status.Ints.Get(status.KeyFrames).Store(s.res.Time.FrameNumber)

	if s.res.Input.Snapshot.StatusQuery {
		s.speakStatus()
	}

	if now-s.lastDump >= statsDumpInterval {
		s.lastDump = now
		s.dumpCounters()
	}
}

// speakStatus reads the mech's vitals aloud
func (s *DiagnosticsSystem) speakStatus() {
	p := s.res.Player.State

	report := fmt.Sprintf(
		"hull %d percent. chaingun %d. blaster %d. missiles %d. e m p %d. debris %d",
		int(p.Hull/parameter.HullMax*100),
		p.ChaingunAmmo, p.BlasterAmmo, p.Missiles, p.EmpCharges, p.Debris)
	s.res.Speech.Announcer.Announce(report, speech.PriorityNormal)

	if dist, ok := nearestDroneDistance(s.world); ok {
		s.res.Speech.Announcer.Announce(
			fmt.Sprintf("nearest contact %d meters", int(dist)), speech.PriorityNormal)
	} else {
		s.res.Speech.Announcer.Announce("no contacts", speech.PriorityNormal)
	}
}

func (s *DiagnosticsSystem) dumpCounters() {
	st := s.res.Status
	s.log.Debug().
		Int64("frames", st.Ints.Get(status.KeyFrames).Load()).
		Int64("events_dropped", st.Ints.Get(status.KeyEventsDropped).Load()).
		Int64("rounds_fired", st.Ints.Get(status.KeyRoundsFired).Load()).
		Int64("missiles_fired", st.Ints.Get(status.KeyMissilesFired).Load()).
		Int64("drones_killed", st.Ints.Get(status.KeyDronesKilled).Load()).
		Int64("drone_shots", st.Ints.Get(status.KeyDroneShots).Load()).
		Int64("malfunctions", st.Ints.Get(status.KeyMalfunctions).Load()).
		Float64("hull", st.Floats.Get(status.KeyPlayerHull).Get()).
		Float64("nearest", st.Floats.Get(status.KeyNearestDrone).Get()).
		Int("metrics", st.TotalCount()).
		Msg("counters")
}
