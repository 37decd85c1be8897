package system

import (
	"testing"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

func TestChaingunSpinCycle(t *testing.T) {
	r := newRig(t)
	cg := NewChaingunSystem(r.world).(*ChaingunSystem)
	r.add(NewTargetingSystem(r.world), cg, NewDroneSystem(r.world))

	held := input.Snapshot{ChaingunHeld: true}

	r.step(1.0/parameter.TickRate, held)
	if cg.State() != component.ChaingunSpinUp {
		t.Fatalf("after trigger: state = %v, want SpinUp", cg.State())
	}

	for r.now < 0.3 {
		r.step(1.0/parameter.TickRate, held)
	}
	if cg.State() != component.ChaingunFiring {
		t.Fatalf("after spin-up: state = %v, want Firing", cg.State())
	}

	// One second of fire at 10 rounds per second
	start := r.state.ChaingunAmmo
	fireUntil := r.now + 1.0
	for r.now < fireUntil {
		r.step(1.0/parameter.TickRate, held)
	}
	spent := start - r.state.ChaingunAmmo
	if spent < 9 || spent > 11 {
		t.Errorf("rounds spent in 1s = %d, want ~10", spent)
	}

	// Release winds the barrel down
	r.step(1.0/parameter.TickRate, input.Snapshot{})
	if cg.State() != component.ChaingunSpinDown {
		t.Fatalf("after release: state = %v, want SpinDown", cg.State())
	}
	r.runFor(parameter.ChaingunSpinDownTime + 0.05)
	if cg.State() != component.ChaingunReady {
		t.Errorf("after spin-down: state = %v, want Ready", cg.State())
	}
	t.Logf("cycle complete, ammo %d", r.state.ChaingunAmmo)
}

func TestChaingunDryTrigger(t *testing.T) {
	r := newRig(t)
	cg := NewChaingunSystem(r.world).(*ChaingunSystem)
	r.add(cg)

	r.state.ChaingunAmmo = 0
	r.step(1.0/parameter.TickRate, input.Snapshot{ChaingunHeld: true})

	if cg.State() != component.ChaingunReady {
		t.Errorf("dry trigger: state = %v, want Ready", cg.State())
	}
	if r.player.CountCue(core.CueChaingunDry) != 1 {
		t.Errorf("dry cue not played")
	}
}

func TestChaingunDamagesNearestInArc(t *testing.T) {
	r := newRig(t)
	cg := NewChaingunSystem(r.world).(*ChaingunSystem)
	r.add(NewTargetingSystem(r.world), cg, NewDroneSystem(r.world))

	// In arc dead ahead; a 30 point hull eats 15 rounds at 2 apiece
	r.park(0, 20, 0)

	held := input.Snapshot{ChaingunHeld: true}
	for i := 0; i < 3*parameter.TickRate && r.droneCount() > 0; i++ {
		r.step(1.0/parameter.TickRate, held)
	}
	if r.droneCount() != 0 {
		t.Errorf("drone survived 3s of sustained fire")
	}
	if r.world.Components.Wreck.CountEntities() != 1 {
		t.Errorf("no wreck dropped")
	}
}

func TestChaingunGatedByWeaponsMalfunction(t *testing.T) {
	r := newRig(t)
	cg := NewChaingunSystem(r.world).(*ChaingunSystem)
	r.add(cg)

	r.state.SetMalfunction(event.MalfunctionWeapons, 100)
	r.step(1.0/parameter.TickRate, input.Snapshot{ChaingunHeld: true})
	if cg.State() != component.ChaingunReady {
		t.Errorf("malfunctioned trigger: state = %v, want Ready", cg.State())
	}
}
