package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

// park places a drone that holds position so arc geometry stays fixed
func (r *rig) park(x, y, alt float64) core.Entity {
	e := r.spawnDrone(x, y, alt, component.DroneDisabled)
	d, _ := r.world.Components.Drone.GetComponent(e)
	d.DisabledUntil = math.MaxFloat64
	r.world.Components.Drone.SetComponent(e, d)
	return e
}

func TestMissileLockTimeScalesWithDistance(t *testing.T) {
	cases := []struct {
		dist float64
		want float64
	}{
		{0, 0.30},
		{35, 0.65},
		{70, 1.00},
		{120, 1.00}, // clamped beyond max range
	}
	for _, c := range cases {
		got := LockTimeFor(c.dist)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("LockTimeFor(%v) = %v, want %v", c.dist, got, c.want)
		}
	}
}

func TestMissileColdStartLockAndLaunch(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms, NewDroneSystem(r.world))

	r.park(0, 35, 20)

	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	if ms.State() != component.MissileInitializing {
		t.Fatalf("after trigger: state = %v, want Initializing", ms.State())
	}

	r.runFor(0.7)
	if ms.State() != component.MissileLocking {
		t.Fatalf("after init: state = %v, want Locking", ms.State())
	}

	// Lock at 35m takes 650ms; half way through it must still be searching
	r.runFor(0.40)
	if ms.State() != component.MissileLocking {
		t.Fatalf("mid lock: state = %v, want Locking", ms.State())
	}
	r.runFor(0.40)
	if ms.State() != component.MissileLocked {
		t.Fatalf("after lock window: state = %v, want Locked", ms.State())
	}
	if got := r.player.CountCue(core.CueMissileLocked); got != 1 {
		t.Errorf("lock cue count = %d, want 1", got)
	}

	// Second press launches the barrage
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	if ms.State() != component.MissileLaunching {
		t.Fatalf("after launch press: state = %v, want Launching", ms.State())
	}
	if want := parameter.MissileAmmoMax - parameter.BarrageSize; r.state.Missiles != want {
		t.Errorf("missiles = %d, want %d", r.state.Missiles, want)
	}

	// Damage event lands next dispatch; one target, one 50 point hit
	r.run(1)
	if r.droneCount() != 0 {
		t.Errorf("drone survived a missile hit to a 30 point hull")
	}
	if ms.State() != component.MissileReady {
		t.Errorf("after launch cue: state = %v, want Ready", ms.State())
	}
	t.Logf("barrage complete, missiles left %d", r.state.Missiles)
}

func TestMissileWarmRearmAfterLaunchSkipsInit(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms, NewDroneSystem(r.world))

	// Full cold cycle: init, lock, launch
	r.park(0, 20, 10)
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.7)
	r.runFor(0.6)
	if ms.State() != component.MissileLocked {
		t.Fatalf("state = %v, want Locked", ms.State())
	}
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.run(1)
	if ms.State() != component.MissileReady {
		t.Fatalf("after launch: state = %v, want Ready", ms.State())
	}

	// Fresh contact, re-trigger inside the warm window of the launch
	r.park(0, 25, 10)
	r.run(1)
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	if ms.State() != component.MissileLocking {
		t.Fatalf("warm re-arm: state = %v, want Locking", ms.State())
	}
	if got := r.player.CountCue(core.CueMissileInit); got != 1 {
		t.Errorf("init cue count = %d, want 1 (warm path skips init)", got)
	}
}

func TestMissileAbortedAcquisitionStaysCold(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms, NewDroneSystem(r.world))

	r.park(0, 20, 10)
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.7)
	if ms.State() != component.MissileLocking {
		t.Fatalf("state = %v, want Locking", ms.State())
	}

	// Abort before launch; warmth comes from launching, not from init
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.1)
	if ms.State() != component.MissileReady {
		t.Fatalf("after abort: state = %v, want Ready", ms.State())
	}

	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	if ms.State() != component.MissileInitializing {
		t.Fatalf("re-trigger: state = %v, want Initializing", ms.State())
	}
	if got := r.player.CountCue(core.CueMissileInit); got != 2 {
		t.Errorf("init cue count = %d, want 2 (no warmth without a launch)", got)
	}
}

func TestMissileLockPingsAccelerate(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms, NewDroneSystem(r.world))

	// A distant contact stretches the lock to nearly a full second
	r.park(0, 69, 20)
	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.7)
	if ms.State() != component.MissileLocking {
		t.Fatalf("state = %v, want Locking", ms.State())
	}

	c0 := r.player.CountCue(core.CueMissileLockPing)
	r.runFor(0.45)
	c1 := r.player.CountCue(core.CueMissileLockPing)
	r.runFor(0.7)
	c2 := r.player.CountCue(core.CueMissileLockPing)

	if ms.State() != component.MissileLocked {
		t.Fatalf("state = %v, want Locked after the full window", ms.State())
	}
	first, second := c1-c0, c2-c1
	if second <= first {
		t.Errorf("ping cadence did not tighten: %d pings early, %d late", first, second)
	}

	// Pings stop once the lock holds
	r.runFor(0.3)
	if got := r.player.CountCue(core.CueMissileLockPing); got != c2 {
		t.Errorf("pings continued after lock: %d, was %d", got, c2)
	}
}

func TestMissileBarrageOneMissilePerTarget(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms, NewDroneSystem(r.world))

	// Three contacts ahead; barrage holds six missiles
	r.park(0, 15, 10)
	r.park(5, 25, 10)
	r.park(-5, 30, 10)

	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.7)
	r.runFor(parameter.MissileLockMax + 0.1)
	if ms.State() != component.MissileLocked {
		t.Fatalf("state = %v, want Locked", ms.State())
	}

	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.run(1)

	// Six tubes spent, three hits of 50 apiece; all three drones die
	if want := parameter.MissileAmmoMax - parameter.BarrageSize; r.state.Missiles != want {
		t.Errorf("missiles = %d, want %d", r.state.Missiles, want)
	}
	if r.droneCount() != 0 {
		t.Errorf("live drones after barrage = %d, want 0", r.droneCount())
	}
}

func TestMissileNoTargetWindsDown(t *testing.T) {
	r := newRig(t)
	ms := NewMissileSystem(r.world).(*MissileSystem)
	r.add(NewTargetingSystem(r.world), ms)

	r.step(1.0/parameter.TickRate, input.Snapshot{MissileKey: true})
	r.runFor(0.7)

	if r.player.CountCue(core.CueMissileInitEnd) != 1 {
		t.Errorf("wind-down cue not played on empty sky")
	}
	r.runFor(0.1)
	if ms.State() != component.MissileReady {
		t.Errorf("state = %v, want Ready", ms.State())
	}
}
