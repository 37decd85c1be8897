package parameter

// Energy pools and equipment systems

const (
	EnergyMax = 100.0

	// Shield
	ShieldDrainRate  = 2.0 // per second while held
	ShieldRegenRate  = 1.0 // per second while inactive
	ShieldAbsorption = 0.8 // fraction of incoming damage absorbed while active

	// Camouflage
	CamoDrainRate = 1.5
	CamoRegenRate = 1.0

	// Thrusters
	ThrusterStages        = 50
	ThrusterDrainPerStage = 0.04 // per second per stage
	ThrusterRegenRate     = 1.2  // per second while off
	ThrusterBoostStage    = 30   // boost available at >= 60% of max stage
	ThrusterLiftPerStage  = 1.4  // ft/s^2 of lift per stage
	Gravity               = 32.0 // ft/s^2
	ThrusterPitchMin      = 0.8
	ThrusterPitchMax      = 2.2

	// Altitude callouts while airborne, every band in feet
	AltitudeCallBand = 25.0

	// Landing thresholds, ft/s of descent
	LandingSoftMax = 15.0
	LandingHardMax = 30.0
	// Hull damage per ft/s above LandingHardMax
	CrashDamagePerFt = 2.0
)
