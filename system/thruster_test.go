package system

import (
	"testing"

	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

func TestThrusterStagesLiftOff(t *testing.T) {
	r := newRig(t)
	r.add(NewThrusterSystem(r.world))

	// Step the stage up until lift beats gravity
	for i := 0; i < parameter.ThrusterStages; i++ {
		r.step(1.0/parameter.TickRate, input.Snapshot{ThrusterUp: true})
		if float64(r.state.ThrusterStage)*parameter.ThrusterLiftPerStage > parameter.Gravity {
			break
		}
	}
	r.runFor(0.5)

	if !r.state.Airborne {
		t.Fatalf("not airborne at stage %d", r.state.ThrusterStage)
	}
	if r.state.Altitude <= 0 {
		t.Errorf("altitude = %v, want positive", r.state.Altitude)
	}
	if _, ok := r.player.LastCue(core.CueThrusterLoop); !ok {
		t.Errorf("thruster loop not running")
	}
}

func TestSoftLandingIsQuiet(t *testing.T) {
	r := newRig(t)
	r.add(NewThrusterSystem(r.world))

	// Low enough that gravity cannot push the descent past the soft
	// ceiling before touchdown
	r.state.Airborne = true
	r.state.Altitude = 0.1
	r.state.VerticalVel = -10

	r.runFor(0.5)
	if r.state.Airborne {
		t.Fatalf("still airborne")
	}
	if r.player.CountCue(core.CueLandingSoft) != 1 {
		t.Errorf("soft landing cue not played")
	}
	if r.player.CountCue(core.CueLandingCrash) != 0 {
		t.Errorf("crash cue on a soft touchdown")
	}
}

func TestCrashLandingDamagesHull(t *testing.T) {
	r := newRig(t)
	r.add(NewThrusterSystem(r.world), NewDamageSystem(r.world))

	// 40 ft/s down: 10 over the hard ceiling, 20 points of damage
	r.state.Airborne = true
	r.state.Altitude = 0.5
	r.state.VerticalVel = -40

	r.runFor(0.2)
	if r.player.CountCue(core.CueLandingCrash) != 1 {
		t.Fatalf("crash cue not played")
	}
	// Roughly 10 ft/s over the hard ceiling at 2 points per ft/s,
	// plus one frame of gravity before touchdown and a little regen
	if r.state.Hull > 80.5 || r.state.Hull < 77 {
		t.Errorf("hull = %v, want about 79", r.state.Hull)
	}
}

func TestBoostRequiresStageAndEnergy(t *testing.T) {
	r := newRig(t)
	r.add(NewThrusterSystem(r.world))

	r.state.ThrusterStage = parameter.ThrusterBoostStage - 1
	r.step(1.0/parameter.TickRate, input.Snapshot{BoostKey: true})
	if r.player.CountCue(core.CueThrusterBoost) != 0 {
		t.Errorf("boost fired below the minimum stage")
	}

	r.state.ThrusterStage = parameter.ThrusterBoostStage
	before := r.state.VerticalVel
	r.step(1.0/parameter.TickRate, input.Snapshot{BoostKey: true})
	if r.player.CountCue(core.CueThrusterBoost) != 1 {
		t.Fatalf("boost did not fire at stage %d", r.state.ThrusterStage)
	}
	if r.state.VerticalVel <= before {
		t.Errorf("boost did not add vertical velocity")
	}
}

func TestThrusterEnergyDepletionCutsStage(t *testing.T) {
	r := newRig(t)
	r.add(NewThrusterSystem(r.world))

	r.state.ThrusterStage = 40
	r.state.ThrusterEnergy = 0.5

	r.runFor(1.0)
	if r.state.ThrusterStage != 0 {
		t.Errorf("stage = %d after depletion, want 0", r.state.ThrusterStage)
	}
	if !spokenContains(r, "thruster energy depleted") {
		t.Errorf("depletion not announced")
	}
}
