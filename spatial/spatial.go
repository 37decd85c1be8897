// Package spatial provides the pure listener-relative cue math
// All functions are stateless; per-frame caching is the caller's contract
package spatial

import (
	"math"

	"github.com/lixenwraith/ironhull/parameter"
)

// Distance returns the horizontal separation in meters
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Bearing returns the compass bearing from (px,py) to (tx,ty) in degrees
// 0 = north (+y), increasing clockwise, range [0, 360)
func Bearing(px, py, tx, ty float64) float64 {
	deg := math.Atan2(tx-px, ty-py) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// RelativeAngle normalizes bearing minus heading into [-180, 180]
// Negative = target to the listener's left
func RelativeAngle(bearing, heading float64) float64 {
	rel := math.Mod(bearing-heading, 360)
	if rel > 180 {
		rel -= 360
	} else if rel < -180 {
		rel += 360
	}
	return rel
}

// Pan maps a relative angle to stereo position [-1, 1]
// Full deflection at +/-90; rear arcs fold back toward center
func Pan(relAngle float64) float64 {
	return math.Sin(relAngle * math.Pi / 180)
}

// Attenuation returns distance volume in [0, 1]
// Inverse square inside the window with a linear taper so the far
// edge reaches exactly zero instead of a residual floor
func Attenuation(dist float64) float64 {
	min, max := parameter.AudioMinDistance, parameter.AudioMaxDistance
	if dist <= min {
		return 1
	}
	if dist >= max {
		return 0
	}
	inv := (min / dist) * (min / dist)
	taper := 1 - (dist-min)/(max-min)
	return inv * taper
}

// HeadShadow returns the occlusion factor in [1-HeadShadowMax, 1]
// Sources behind the listener are progressively dampened
func HeadShadow(relAngle float64) float64 {
	abs := math.Abs(relAngle)
	if abs <= 90 {
		return 1
	}
	return 1 - parameter.HeadShadowMax*((abs-90)/90)
}

// AltitudeMuffle dampens sources separated vertically from the listener
// altDiff in feet; full mute at AltitudeMuffleRange
func AltitudeMuffle(altDiff float64) float64 {
	f := 1 - math.Abs(altDiff)/parameter.AltitudeMuffleRange
	if f < 0 {
		return 0
	}
	return f
}

// Doppler returns a pitch multiplier from the range rate in m/s
// Negative rate (closing) raises pitch, positive (receding) lowers it
func Doppler(rangeRate float64) float64 {
	p := 1 - parameter.DopplerScale*(rangeRate/parameter.DopplerSpeedRef)
	if p < parameter.DopplerPitchMin {
		return parameter.DopplerPitchMin
	}
	if p > parameter.DopplerPitchMax {
		return parameter.DopplerPitchMax
	}
	return p
}

// Volume composes attenuation, head shadow and altitude muffling
func Volume(dist, relAngle, altDiff float64) float64 {
	return Attenuation(dist) * HeadShadow(relAngle) * AltitudeMuffle(altDiff)
}

// EchoInterval returns the ping interval in seconds for the nearest
// contact distance, linear between the window bounds
func EchoInterval(dist float64) float64 {
	min, max := parameter.AudioMinDistance, parameter.AudioMaxDistance
	t := (dist - min) / (max - min)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return parameter.EchoIntervalMin + t*(parameter.EchoIntervalMax-parameter.EchoIntervalMin)
}

// RadarPitch maps contact distance to a ping pitch, near is high
func RadarPitch(dist float64) float64 {
	t := dist / parameter.RadarRange
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return parameter.RadarPitchNear + t*(parameter.RadarPitchFar-parameter.RadarPitchNear)
}

// CardinalName returns the spoken name for a compass bearing
func CardinalName(bearing float64) string {
	names := []string{"north", "north east", "east", "south east", "south", "south west", "west", "north west"}
	idx := int(math.Mod(bearing+22.5, 360) / 45)
	return names[idx]
}
