package component

// DroneState is the AI state machine discriminant
type DroneState int

const (
	DroneSpawning DroneState = iota
	DronePatrol
	DroneAlerted
	DroneEngaging
	DroneAttacking
	DroneRetreating
	DroneDisabled
	DroneDestroyed
)

func (s DroneState) String() string {
	switch s {
	case DroneSpawning:
		return "Spawning"
	case DronePatrol:
		return "Patrol"
	case DroneAlerted:
		return "Alerted"
	case DroneEngaging:
		return "Engaging"
	case DroneAttacking:
		return "Attacking"
	case DroneRetreating:
		return "Retreating"
	case DroneDisabled:
		return "Disabled"
	case DroneDestroyed:
		return "Destroyed"
	}
	return "Unknown"
}

// DroneWeapon is the equipped weapon, fixed at spawn
type DroneWeapon int

const (
	WeaponPulse DroneWeapon = iota
	WeaponPlasma
	WeaponRail
)

func (w DroneWeapon) String() string {
	switch w {
	case WeaponPulse:
		return "pulse"
	case WeaponPlasma:
		return "plasma"
	case WeaponRail:
		return "rail"
	}
	return "unknown"
}

// SpatialCache holds listener-relative values computed once per frame
// Frame tags the computation; consumers must not read a stale frame
type SpatialCache struct {
	Frame    int64
	Distance float64 // meters, horizontal
	Bearing  float64 // degrees from north
	RelAngle float64 // degrees relative to player heading, [-180, 180]
	Pan      float64 // [-1, 1]
	Volume   float64 // [0, 1] after attenuation, shadow, muffling
	AltDiff  float64 // feet, drone minus player
}

// DroneComponent is a hostile drone's full state
type DroneComponent struct {
	X, Y     float64
	Altitude float64 // feet
	Hull     float64

	State      DroneState
	StateSince float64 // game time of last transition
	Weapon     DroneWeapon

	// Patrol wander target
	WaypointX, WaypointY float64

	// Engagement
	EvadePhase    float64 // radians, lateral jink oscillator
	BurstLeft     int
	NextRoundAt   float64 // game time
	RetreatDist   float64 // per-retreat randomized safe distance
	DisabledUntil float64 // game time, EMP

	Spatial SpatialCache
}
