package parameter

// Spatialization and scan tuning

const (
	// Inverse square attenuation window
	AudioMinDistance = 2.0  // meters, full volume at or below
	AudioMaxDistance = 50.0 // meters, silent at or beyond

	// Head shadow: sources behind the listener lose up to this fraction
	HeadShadowMax = 0.3

	// Doppler
	DopplerScale    = 0.5
	DopplerSpeedRef = 40.0 // m/s radial speed for full scale shift
	DopplerPitchMin = 0.7
	DopplerPitchMax = 1.3

	// Altitude muffling: full mute at this separation in feet
	AltitudeMuffleRange = 80.0

	// Radar
	RadarCooldown  = 2.0  // seconds
	RadarRange     = 50.0 // meters
	RadarPitchNear = 1.4
	RadarPitchFar  = 0.6
	RadarPingGap   = 0.35 // seconds between per-contact pings

	// Contact condition bands, hull fraction above which each word applies
	BandHealthyFrac = 0.75
	BandWoundedFrac = 0.50
	BandDamagedFrac = 0.25

	// Echolocation
	EchoIntervalMin = 0.100 // seconds at AudioMinDistance
	EchoIntervalMax = 0.150 // seconds at AudioMaxDistance

	// Malfunction
	MalfunctionChance   = 0.15
	MalfunctionDuration = 3.0
)
