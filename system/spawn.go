package system

import (
	"math"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/status"
)

// SpawnSystem keeps the drone population at the session ceiling,
// adding at most one drone per spawn interval
type SpawnSystem struct {
	world *engine.World
	res   engine.CoreResources

	lastSpawn float64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	// First spawn fires immediately
	s.lastSpawn = -parameter.SpawnInterval
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) EventTypes() []event.EventType { return nil }

func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {}

func (s *SpawnSystem) Update() {
	if s.res.Session.Over {
		return
	}
	now := s.res.Time.GameTime
	count := s.world.Components.Drone.CountEntities()

	if count >= s.res.Session.DroneCeiling {
		return
	}
	if now-s.lastSpawn < parameter.SpawnInterval {
		return
	}
	s.lastSpawn = now
	s.spawnOne()
}

// spawnOne places a drone on the spawn ring around the player at a
// random bearing and altitude, with a random weapon loadout
func (s *SpawnSystem) spawnOne() {
	p := s.res.Player.State
	rng := s.res.Rand.Rand
	now := s.res.Time.GameTime

	angle := rng.Float64() * 2 * math.Pi
	dist := parameter.SpawnRingMin + rng.Float64()*(parameter.SpawnRingMax-parameter.SpawnRingMin)

	e := s.world.CreateEntity()
	s.world.Components.Drone.SetComponent(e, component.DroneComponent{
		X:          p.X + math.Sin(angle)*dist,
		Y:          p.Y + math.Cos(angle)*dist,
		Altitude:   parameter.SpawnAltMin + rng.Float64()*(parameter.SpawnAltMax-parameter.SpawnAltMin),
		Hull:       parameter.DroneHull,
		State:      component.DroneSpawning,
		StateSince: now,
		Weapon:     component.DroneWeapon(rng.Intn(3)),
	})

	s.res.Status.Ints.Get(status.KeyDronesActive).Store(int64(s.world.Components.Drone.CountEntities()))
}
