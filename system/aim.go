package system

import (
	"math"
	"sort"

	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
)

// arcTarget pairs an entity with its cached spatial values for sorting
type arcTarget struct {
	Entity core.Entity
	Drone  component.DroneComponent
}

// targetsInArc returns live drones within maxRange whose cached relative
// angle is inside +/-arc degrees, nearest first
// Requires the targeting system to have refreshed caches this frame
func targetsInArc(w *engine.World, frame int64, maxRange, arc float64) []arcTarget {
	var out []arcTarget
	for _, e := range w.Components.Drone.GetAllEntities() {
		d, ok := w.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}
		if d.Spatial.Frame != frame {
			continue // stale cache, drone spawned after targeting pass
		}
		if d.Spatial.Distance > maxRange || math.Abs(d.Spatial.RelAngle) > arc {
			continue
		}
		out = append(out, arcTarget{Entity: e, Drone: d})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Drone.Spatial.Distance < out[j].Drone.Spatial.Distance
	})
	return out
}

// nearestInArc returns the closest drone inside the range and arc window
func nearestInArc(w *engine.World, frame int64, maxRange, arc float64) (arcTarget, bool) {
	targets := targetsInArc(w, frame, maxRange, arc)
	if len(targets) == 0 {
		return arcTarget{}, false
	}
	return targets[0], true
}

// nearestDroneDistance returns the distance to the closest live drone
// using cached values; ok is false when no drone exists
func nearestDroneDistance(w *engine.World) (float64, bool) {
	best := math.MaxFloat64
	found := false
	for _, e := range w.Components.Drone.GetAllEntities() {
		d, ok := w.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}
		if d.Spatial.Distance < best {
			best = d.Spatial.Distance
			found = true
		}
	}
	return best, found
}
