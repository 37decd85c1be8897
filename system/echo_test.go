package system

import (
	"testing"

	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
)

func TestEchoPingRateTracksDistance(t *testing.T) {
	r := newRig(t)
	echo := NewEchoSystem(r.world).(*EchoSystem)
	r.add(NewTargetingSystem(r.world), echo)

	e := r.park(0, 2, 0)

	r.step(1.0/parameter.TickRate, input.Snapshot{EchoToggle: true})
	if !echo.Enabled() {
		t.Fatalf("toggle did not enable echo")
	}

	// Point blank runs at the fast 100ms interval
	base := r.player.CountCue(core.CueEchoPing)
	r.runFor(1.0)
	near := r.player.CountCue(core.CueEchoPing) - base
	if near < 9 || near > 12 {
		t.Errorf("pings in 1s at 2m = %d, want ~10", near)
	}

	// At the edge of range the interval stretches to 150ms
	d, _ := r.world.Components.Drone.GetComponent(e)
	d.Y = 50
	r.world.Components.Drone.SetComponent(e, d)

	base = r.player.CountCue(core.CueEchoPing)
	r.runFor(1.0)
	far := r.player.CountCue(core.CueEchoPing) - base
	if far < 6 || far > 8 {
		t.Errorf("pings in 1s at 50m = %d, want ~7", far)
	}
	t.Logf("ping rates: near %d per second, far %d", near, far)
}

func TestEchoToggleOffStopsPings(t *testing.T) {
	r := newRig(t)
	echo := NewEchoSystem(r.world).(*EchoSystem)
	r.add(NewTargetingSystem(r.world), echo)

	r.park(0, 10, 0)
	r.step(1.0/parameter.TickRate, input.Snapshot{EchoToggle: true})
	r.runFor(0.5)

	r.step(1.0/parameter.TickRate, input.Snapshot{EchoToggle: true})
	if echo.Enabled() {
		t.Fatalf("second toggle did not disable echo")
	}

	base := r.player.CountCue(core.CueEchoPing)
	r.runFor(1.0)
	if got := r.player.CountCue(core.CueEchoPing) - base; got != 0 {
		t.Errorf("%d pings after toggle off, want 0", got)
	}
}

func TestEchoSilentWithNoContact(t *testing.T) {
	r := newRig(t)
	r.add(NewTargetingSystem(r.world), NewEchoSystem(r.world))

	r.step(1.0/parameter.TickRate, input.Snapshot{EchoToggle: true})
	r.runFor(1.0)

	if got := r.player.CountCue(core.CueEchoPing); got != 0 {
		t.Errorf("%d pings with empty sky, want 0", got)
	}
}
