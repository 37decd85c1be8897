package system

import (
	"math"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/spatial"
	"github.com/lixenwraith/ironhull/status"
)

// TargetingSystem refreshes every drone's spatial cache once per frame
// and drives the continuous listener-relative audio: per-drone hum
// voices and the aim assist tones
//
// Runs before all combat and audio consumers; caches are tagged with
// the frame number so stale reads are detectable
type TargetingSystem struct {
	world *engine.World
	res   engine.CoreResources

	humVoices   map[core.Entity]audio.Handle
	lastLockCue float64
	lastAssist  float64
}

func NewTargetingSystem(world *engine.World) engine.System {
	s := &TargetingSystem{world: world}
	s.Init()
	return s
}

func (s *TargetingSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.humVoices = make(map[core.Entity]audio.Handle)
	s.lastLockCue = -1
	s.lastAssist = -1
}

func (s *TargetingSystem) Name() string { return "targeting" }

func (s *TargetingSystem) Priority() int { return parameter.PriorityTargeting }

func (s *TargetingSystem) EventTypes() []event.EventType { return nil }

func (s *TargetingSystem) HandleEvent(ev event.GameEvent) {}

func (s *TargetingSystem) Update() {
	p := s.res.Player.State
	dt := s.res.Time.DeltaTime
	frame := s.res.Time.FrameNumber
	player := s.res.Audio.Player

	seen := make(map[core.Entity]bool, len(s.humVoices))
	nearest := math.MaxFloat64
	nearestRel := 0.0
	nearestState := component.DroneDestroyed
	haveTarget := false

	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}

		prevDist := d.Spatial.Distance
		prevFrame := d.Spatial.Frame

		dist := spatial.Distance(p.X, p.Y, d.X, d.Y)
		bearing := spatial.Bearing(p.X, p.Y, d.X, d.Y)
		rel := spatial.RelativeAngle(bearing, p.Heading)
		altDiff := d.Altitude - p.Altitude

		d.Spatial = component.SpatialCache{
			Frame:    frame,
			Distance: dist,
			Bearing:  bearing,
			RelAngle: rel,
			Pan:      spatial.Pan(rel),
			Volume:   spatial.Volume(dist, rel, altDiff),
			AltDiff:  altDiff,
		}
		s.world.Components.Drone.SetComponent(e, d)

		if dist < nearest {
			nearest = dist
			nearestRel = rel
			nearestState = d.State
			haveTarget = true
		}

		// Continuous hum voice per audible drone
		seen[e] = true
		h, exists := s.humVoices[e]
		if !exists || player.Ended(h) {
			h = player.Play(core.CueDroneHum, audio.PlayOpts{Loop: true})
			s.humVoices[e] = h
		}
		player.SetPan(h, d.Spatial.Pan)
		player.SetVolume(h, d.Spatial.Volume)
		if dt > 0 && prevFrame == frame-1 {
			rangeRate := (dist - prevDist) / dt
			player.SetPitch(h, spatial.Doppler(rangeRate))
		}
	}

	// Reconcile voices for drones that vanished this frame
	for e, h := range s.humVoices {
		if !seen[e] {
			player.Stop(h)
			delete(s.humVoices, e)
		}
	}

	if haveTarget {
		s.res.Status.Floats.Get(status.KeyNearestDrone).Set(nearest)
		s.res.Status.Strings.Get(status.KeyDroneState).Store(nearestState.String())
		s.aimAssist(nearestRel, nearest)
	}
	s.res.Status.Ints.Get(status.KeyDronesActive).Store(int64(len(seen)))
}

// aimAssist gives facing feedback against the nearest contact:
// a lock tone inside the tight arc, a softer tick inside the wide arc
func (s *TargetingSystem) aimAssist(relAngle, dist float64) {
	if dist > parameter.MissileMaxRange {
		return
	}
	now := s.res.Time.GameTime
	abs := math.Abs(relAngle)

	switch {
	case abs <= parameter.AimLockArc:
		if now-s.lastLockCue >= parameter.AimLockInterval {
			s.lastLockCue = now
			s.res.Audio.Player.Play(core.CueAimLock, audio.PlayOpts{})
		}
	case abs <= parameter.AimAssistArc:
		if now-s.lastAssist >= parameter.AimAssistInterval {
			s.lastAssist = now
			pan := spatial.Pan(relAngle)
			s.res.Audio.Player.Play(core.CueAimAssist, audio.PlayOpts{Pan: pan})
		}
	}
}
