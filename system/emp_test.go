package system

import (
	"testing"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

func TestEmpPrimeBurstRecharge(t *testing.T) {
	r := newRig(t)
	emp := NewEmpSystem(r.world).(*EmpSystem)
	r.add(NewTargetingSystem(r.world), emp, NewDroneSystem(r.world))

	r.spawnDrone(0, 10, 10, component.DroneEngaging)

	r.step(1.0/parameter.TickRate, input.Snapshot{EmpKey: true})
	if emp.State() != component.EmpPriming {
		t.Fatalf("state = %v, want Priming", emp.State())
	}

	r.runFor(parameter.EmpPrimeTime + 0.1)
	if emp.State() != component.EmpRecharging {
		t.Fatalf("state = %v, want Recharging after burst", emp.State())
	}
	if r.state.EmpCharges != parameter.EmpChargesMax-1 {
		t.Errorf("charges = %d, want %d", r.state.EmpCharges, parameter.EmpChargesMax-1)
	}
	if r.player.CountCue(core.CueEmpBurst) != 1 {
		t.Errorf("burst cue not played")
	}

	// Burst event lands next dispatch and disables the nearby drone
	r.run(1)
	found := false
	for _, e := range r.world.Components.Drone.GetAllEntities() {
		d, _ := r.world.Components.Drone.GetComponent(e)
		if d.State == component.DroneDisabled {
			found = true
		}
	}
	if !found {
		t.Errorf("no drone disabled by the burst")
	}

	r.runFor(parameter.EmpRechargeTime + 0.1)
	if emp.State() != component.EmpReady {
		t.Errorf("state = %v after recharge, want Ready", emp.State())
	}
	if r.player.CountCue(core.CueEmpRecharge) != 1 {
		t.Errorf("recharge cue not played")
	}
}

func TestEmpNoChargesNoPrime(t *testing.T) {
	r := newRig(t)
	emp := NewEmpSystem(r.world).(*EmpSystem)
	r.add(emp)

	r.state.EmpCharges = 0
	r.step(1.0/parameter.TickRate, input.Snapshot{EmpKey: true})
	if emp.State() != component.EmpReady {
		t.Errorf("state = %v with no charges, want Ready", emp.State())
	}
}

func TestBlasterChargeFireCooldown(t *testing.T) {
	r := newRig(t)
	bl := NewBlasterSystem(r.world).(*BlasterSystem)
	r.add(NewTargetingSystem(r.world), bl, NewDroneSystem(r.world))

	r.park(0, 20, 0)

	held := input.Snapshot{BlasterHeld: true}
	r.step(1.0/parameter.TickRate, held)
	if bl.State() != component.BlasterCharging {
		t.Fatalf("state = %v, want Charging", bl.State())
	}

	r.runHeld(parameter.BlasterChargeTime+0.1, held)
	if bl.State() != component.BlasterCoolingDown {
		t.Fatalf("state = %v, want CoolingDown after release of the bolt", bl.State())
	}
	if r.state.BlasterAmmo != parameter.BlasterAmmoMax-1 {
		t.Errorf("ammo = %d, want %d", r.state.BlasterAmmo, parameter.BlasterAmmoMax-1)
	}

	// Bolt damage lands next dispatch
	r.run(1)
	for _, e := range r.world.Components.Drone.GetAllEntities() {
		d, _ := r.world.Components.Drone.GetComponent(e)
		if d.Hull != parameter.DroneHull-parameter.BlasterDamage {
			t.Errorf("drone hull = %v, want %v", d.Hull, parameter.DroneHull-parameter.BlasterDamage)
		}
	}

	r.runFor(parameter.BlasterCooldown + 0.1)
	if bl.State() != component.BlasterReady {
		t.Errorf("state = %v after cooldown, want Ready", bl.State())
	}
}

func TestBlasterReleaseCancelsCharge(t *testing.T) {
	r := newRig(t)
	bl := NewBlasterSystem(r.world).(*BlasterSystem)
	r.add(bl)

	r.step(1.0/parameter.TickRate, input.Snapshot{BlasterHeld: true})
	r.step(1.0/parameter.TickRate, input.Snapshot{})

	if bl.State() != component.BlasterReady {
		t.Errorf("state = %v after early release, want Ready", bl.State())
	}
	if r.state.BlasterAmmo != parameter.BlasterAmmoMax {
		t.Errorf("cancelled charge spent a cell")
	}
	if r.player.CountCue(core.CueBlasterFire) != 0 {
		t.Errorf("fire cue on a cancelled charge")
	}
}
