package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

func TestWalkHeadingAndFootsteps(t *testing.T) {
	r := newRig(t)
	r.add(NewMovementSystem(r.world))

	// One second due north
	r.runHeld(1.0, input.Snapshot{Forward: true})
	if math.Abs(r.state.Y-parameter.WalkSpeed) > 0.2 {
		t.Errorf("Y = %v after 1s walk, want ~%v", r.state.Y, parameter.WalkSpeed)
	}
	if math.Abs(r.state.X) > 0.01 {
		t.Errorf("X drifted to %v on a northward walk", r.state.X)
	}
	if r.player.CountCue(core.CueFootstep) == 0 {
		t.Errorf("no footsteps while walking")
	}

	// Quarter turn right, then walk east
	y := r.state.Y
	r.runHeld(1.0, input.Snapshot{TurnRight: true})
	if math.Abs(r.state.Heading-90) > 2 {
		t.Fatalf("heading = %v after 1s turn, want ~90", r.state.Heading)
	}
	r.runHeld(1.0, input.Snapshot{Forward: true})
	if r.state.X < 4 {
		t.Errorf("X = %v after eastward walk, want ~5", r.state.X)
	}
	if math.Abs(r.state.Y-y) > 0.3 {
		t.Errorf("Y moved from %v to %v on an eastward walk", y, r.state.Y)
	}
}

func TestMovementMalfunctionSlowsButAllowsTurning(t *testing.T) {
	r := newRig(t)
	r.add(NewMovementSystem(r.world))

	r.state.SetMalfunction(event.MalfunctionMovement, 100)
	r.runHeld(1.0, input.Snapshot{Forward: true})

	want := parameter.WalkSpeed * parameter.MalfunctionSpeedFactor
	if math.Abs(r.state.Y-want) > 0.2 {
		t.Errorf("Y = %v under movement fault, want ~%v", r.state.Y, want)
	}

	h := r.state.Heading
	r.runHeld(0.5, input.Snapshot{TurnLeft: true})
	if r.state.Heading == h {
		t.Errorf("turning blocked by movement fault")
	}
}

func TestDebrisPickupFromWreck(t *testing.T) {
	r := newRig(t)
	r.add(NewMovementSystem(r.world))

	e := r.world.CreateEntity()
	r.world.Components.Wreck.SetComponent(e, component.WreckComponent{
		X: 1, Y: 1, Debris: parameter.DebrisPerWreck,
	})

	r.run(1)
	if r.state.Debris != parameter.DebrisPerWreck {
		t.Errorf("debris = %d, want %d", r.state.Debris, parameter.DebrisPerWreck)
	}
	if r.world.Components.Wreck.CountEntities() != 0 {
		t.Errorf("emptied wreck not removed")
	}
	if r.player.CountCue(core.CueDebrisPickup) != 1 {
		t.Errorf("pickup cue not played")
	}
}

func TestDebrisCarryCapClampsPickup(t *testing.T) {
	r := newRig(t)
	r.add(NewMovementSystem(r.world))

	r.state.Debris = parameter.DebrisMax - 1
	e := r.world.CreateEntity()
	r.world.Components.Wreck.SetComponent(e, component.WreckComponent{
		X: 0, Y: 0, Debris: 3,
	})

	r.run(1)
	if r.state.Debris != parameter.DebrisMax {
		t.Errorf("debris = %d, want cap %d", r.state.Debris, parameter.DebrisMax)
	}
	w, ok := r.world.Components.Wreck.GetComponent(e)
	if !ok {
		t.Fatalf("wreck with remaining salvage was removed")
	}
	if w.Debris != 2 {
		t.Errorf("wreck debris = %d, want 2 left behind", w.Debris)
	}
}

func TestCamouflageBreaksOnWeaponFire(t *testing.T) {
	r := newRig(t)
	r.add(NewCamouflageSystem(r.world))

	r.step(1.0/parameter.TickRate, input.Snapshot{CamoToggle: true})
	if !r.state.CamoActive {
		t.Fatalf("camo did not engage")
	}

	r.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{Weapon: event.WeaponChaingun})
	r.run(1)

	if r.state.CamoActive {
		t.Errorf("camo survived a weapon discharge")
	}
	if !spokenContains(r, "camouflage broken") {
		t.Errorf("break not announced, spoken: %v", r.spoken.Spoken)
	}
}

func TestCamouflageBreaksWhenHit(t *testing.T) {
	r := newRig(t)
	r.add(NewCamouflageSystem(r.world), NewDamageSystem(r.world))

	r.step(1.0/parameter.TickRate, input.Snapshot{CamoToggle: true})
	if !r.state.CamoActive {
		t.Fatalf("camo did not engage")
	}

	r.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
		Amount: 5, Source: event.SourceDrone,
	})
	r.run(1)

	if r.state.CamoActive {
		t.Errorf("camo survived taking a hit")
	}
	if !spokenContains(r, "camouflage broken") {
		t.Errorf("break not announced, spoken: %v", r.spoken.Spoken)
	}
}

func TestCamouflageDrainsAndDepletes(t *testing.T) {
	r := newRig(t)
	r.add(NewCamouflageSystem(r.world))

	r.state.CamoEnergy = 0.5
	r.step(1.0/parameter.TickRate, input.Snapshot{CamoToggle: true})
	r.runFor(1.0)

	if r.state.CamoActive {
		t.Errorf("camo active after pool depleted")
	}
	if !spokenContains(r, "camouflage depleted") {
		t.Errorf("depletion not announced")
	}
}
