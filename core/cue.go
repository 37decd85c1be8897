package core

// CueID identifies a synthesized audio cue
// The simulation treats these as opaque; the audio engine maps them to streamers
type CueID int

const (
	CueNone CueID = iota

	// Chaingun
	CueChaingunSpinUp
	CueChaingunFire
	CueChaingunSpinDown
	CueChaingunDry

	// Blaster
	CueBlasterCharge
	CueBlasterFire
	CueBlasterCooldown

	// Missiles
	CueMissileInit
	CueMissileLockPing
	CueMissileLocked
	CueMissileLaunch
	CueMissileInitEnd

	// EMP
	CueEmpPrime
	CueEmpBurst
	CueEmpRecharge

	// Fabrication
	CueFabricatorRun
	CueFabricatorDone
	CueDebrisPickup

	// Loadout
	CueWeaponSelect

	// Equipment
	CueShieldUp
	CueShieldHum
	CueShieldHit
	CueShieldDown
	CueShieldDepleted
	CueCamoOn
	CueCamoOff
	CueThrusterLoop
	CueThrusterBoost
	CueLandingSoft
	CueLandingHard
	CueLandingCrash
	CueFootstep

	// Drones
	CueDroneHum
	CueDroneAlert
	CueDroneFirePulse
	CueDroneFirePlasma
	CueDroneFireRail
	CueDroneExplosion
	CueDroneDisabled

	// Player feedback
	CueHullHit
	CueMalfunction
	CueMalfunctionClear
	CueAimLock
	CueAimAssist
	CueGameOver

	// Scan
	CueRadarSweep
	CueRadarPing
	CueRadarDenied
	CueEchoPing

	cueCount
)

// CueCategory groups cues for per-category volume control
type CueCategory int

const (
	CategoryWeapons CueCategory = iota
	CategoryEquipment
	CategoryDrones
	CategoryFeedback
	CategoryScan

	categoryCount
)

// Category returns the volume group a cue belongs to
func (c CueID) Category() CueCategory {
	switch {
	case c >= CueChaingunSpinUp && c <= CueWeaponSelect:
		return CategoryWeapons
	case c >= CueShieldUp && c <= CueFootstep:
		return CategoryEquipment
	case c >= CueDroneHum && c <= CueDroneDisabled:
		return CategoryDrones
	case c >= CueHullHit && c <= CueGameOver:
		return CategoryFeedback
	default:
		return CategoryScan
	}
}

// CueCount returns the number of defined cues
func CueCount() int { return int(cueCount) }

// CategoryCount returns the number of cue categories
func CategoryCount() int { return int(categoryCount) }
