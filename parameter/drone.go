package parameter

// Drone population, perception and combat

const (
	DroneHull = 30.0

	// Population ceiling is player selected in [DroneCountMin, DroneCountMax]
	DroneCountMin     = 1
	DroneCountMax     = 4
	DroneCountDefault = 2

	SpawnInterval = 10.0 // seconds between backfills
	SpawnRingMin  = 30.0 // meters from player
	SpawnRingMax  = 50.0
	SpawnAltMin   = 10.0 // feet
	SpawnAltMax   = 60.0

	DroneDetectRadius = 25.0
	// Active camouflage shrinks detection to point blank
	CamoDetectRadius = 5.0

	AlertConfirmTime = 1.5 // seconds in Alerted before Engaging

	DronePatrolSpeed    = 3.0 // m/s
	DroneEngageSpeed    = 6.0
	DroneRetreatSpeed   = 5.0
	DroneEvadeAmplitude = 2.5 // lateral jink, m/s

	RetreatSafeDist   = 15.0
	RetreatDistJitter = 5.0

	// Burst fire
	BurstMin       = 3
	BurstMax       = 5
	BurstRoundGap  = 0.18 // seconds between rounds
	AttackCooldown = 2.0  // seconds after a burst before retreating resolves

	// Hit model: chance = accuracy - distFactor*DistancePenalty - altitude penalty
	DroneAccuracy        = 0.75
	DistancePenalty      = 0.2
	AltitudePenaltyPerFt = 0.004
	HitChanceFloor       = 0.2

	// Aim assist
	AimLockArc        = 5.0 // degrees
	AimLockInterval   = 0.30
	AimAssistArc      = 45.0
	AimAssistInterval = 0.50
)

// Drone weapon loadouts, indexed by component.DroneWeapon
var (
	DroneWeaponDamage = [3]float64{3.0, 6.0, 10.0} // pulse, plasma, rail
	DroneWeaponRange  = [3]float64{30.0, 40.0, 55.0}
)
