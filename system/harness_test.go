package system

import (
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// rig assembles a headless world for system tests: null audio,
// recorded speech, seeded RNG, manually advanced clock
type rig struct {
	t *testing.T

	world  *engine.World
	router *engine.EventRouter
	queue  *event.EventQueue
	frame  atomic.Int64
	now    float64
	clock  *engine.MockTimeProvider

	timeRes *engine.TimeResource
	inRes   *engine.InputResource
	player  *audio.NullPlayer
	spoken  *speech.Null
	state   *component.PlayerState
	session *engine.SessionResource
}

func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		t:       t,
		world:   engine.NewWorld(),
		queue:   event.NewEventQueue(),
		clock:   engine.NewMockTimeProvider(time.Unix(0, 0)),
		timeRes: &engine.TimeResource{},
		inRes:   &engine.InputResource{},
		player:  audio.NewNullPlayer(),
		spoken:  speech.NewNull(),
		state:   component.NewPlayerState(),
		session: &engine.SessionResource{DroneCeiling: parameter.DroneCountDefault},
	}
	r.world.SetEventMetadata(r.queue, &r.frame)
	r.router = engine.NewEventRouter(r.queue)

	engine.AddResource(r.world.Resources, r.timeRes)
	engine.AddResource(r.world.Resources, &engine.PlayerResource{State: r.state})
	engine.AddResource(r.world.Resources, r.inRes)
	engine.AddResource(r.world.Resources, &engine.AudioResource{Player: r.player})
	engine.AddResource(r.world.Resources, &engine.SpeechResource{Announcer: r.spoken})
	engine.AddResource(r.world.Resources, &engine.RandResource{Rand: rand.New(rand.NewSource(1))})
	engine.AddResource(r.world.Resources, r.session)
	engine.AddResource(r.world.Resources, status.NewRegistry())

	return r
}

// add registers systems and wires their event subscriptions
func (r *rig) add(systems ...engine.System) {
	for _, s := range systems {
		r.world.AddSystem(s)
	}
	r.router = engine.NewEventRouter(r.queue)
	r.router.RegisterSystems(r.world)
}

// step advances one frame of dt seconds with the given input held
func (r *rig) step(dt float64, in input.Snapshot) {
	r.now += dt
	r.clock.Advance(time.Duration(dt * float64(time.Second)))
	f := r.frame.Add(1)
	r.timeRes.Update(r.now, dt, r.clock.Now(), f)
	r.inRes.Snapshot = in
	r.router.DispatchAll()
	r.world.Update()
}

// run steps n frames at the fixed tick with no input
func (r *rig) run(n int) {
	for i := 0; i < n; i++ {
		r.step(1.0/parameter.TickRate, input.Snapshot{})
	}
}

// runFor steps at the fixed tick until the given duration has elapsed
func (r *rig) runFor(seconds float64) {
	r.run(int(seconds*parameter.TickRate) + 1)
}

// spawnDrone places a drone directly, bypassing the spawner
func (r *rig) spawnDrone(x, y, alt float64, state component.DroneState) core.Entity {
	e := r.world.CreateEntity()
	r.world.Components.Drone.SetComponent(e, component.DroneComponent{
		X: x, Y: y, Altitude: alt,
		Hull:       parameter.DroneHull,
		State:      state,
		StateSince: r.now,
	})
	return e
}

// droneCount counts live drones
func (r *rig) droneCount() int {
	return r.world.Components.Drone.CountEntities()
}

// runHeld steps at the fixed tick for a duration with the input held
func (r *rig) runHeld(seconds float64, in input.Snapshot) {
	n := int(seconds*parameter.TickRate) + 1
	for i := 0; i < n; i++ {
		r.step(1.0/parameter.TickRate, in)
	}
}

// res rebuilds the cached resource view, for assertions on the registry
func (r *rig) res() engine.CoreResources {
	return engine.GetCoreResources(r.world)
}

func snapshotShieldHeld() input.Snapshot {
	return input.Snapshot{ShieldHeld: true}
}

// spokenContains reports whether any announcement contains the substring
func spokenContains(r *rig, sub string) bool {
	for _, s := range r.spoken.Spoken {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
