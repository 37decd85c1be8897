package parameter

// Player mech state ranges and locomotion

const (
	HullMax = 100.0

	// Hull regeneration applies only when no hostile is within HullRegenSafeDist
	HullRegenRate     = 2.0 // points per second
	HullRegenSafeDist = 30.0

	// Hull announcement bands, crossed downward
	HullWounded  = 75.0
	HullDamaged  = 50.0
	HullCritical = 25.0

	WalkSpeed = 5.0  // m/s
	TurnRate  = 90.0 // deg/s

	// Movement malfunction speed factor
	MalfunctionSpeedFactor = 0.5

	// Debris
	DebrisMax          = 20
	DebrisPickupRadius = 3.0
	DebrisPerWreck     = 3

	FootstepBaseInterval = 0.55 // seconds at full walk speed
)
