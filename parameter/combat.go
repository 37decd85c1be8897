package parameter

// Weapon tuning
// Durations in seconds, distances in meters, angles in degrees

const (
	// Chaingun
	ChaingunAmmoMax      = 500
	ChaingunSpinUpTime   = 0.25
	ChaingunSpinDownTime = 0.30
	ChaingunRoundsPerSec = 10.0
	ChaingunDamage       = 2.0
	ChaingunRange        = 40.0
	ChaingunArc          = 15.0
	ChaingunLowAmmo      = 100
	ChaingunCriticalAmmo = 50

	// Blaster
	BlasterAmmoMax    = 100
	BlasterChargeTime = 0.40
	BlasterCooldown   = 0.80
	BlasterDamage     = 15.0
	BlasterRange      = 60.0
	BlasterArc        = 10.0
	BlasterLowAmmo    = 20

	// Missiles
	MissileAmmoMax    = 24
	MissileInitTime   = 0.60
	MissileLockMin    = 0.30 // seconds, at point blank
	MissileLockMax    = 1.00 // seconds, at MissileMaxRange
	MissileMaxRange   = 70.0
	MissileArc        = 60.0
	MissileWarmWindow = 15.0  // re-arm within this window of a launch skips init
	MissileBeepStart  = 0.300 // lock ping interval at acquisition start
	MissileBeepEnd    = 0.080 // lock ping interval as lock completes
	BarrageSize       = 6
	MissileDamage     = 50.0
	BarrageDamageCap  = 300.0

	// EMP
	EmpChargesMax   = 4
	EmpPrimeTime    = 0.50
	EmpRadius       = 25.0
	EmpDisableTime  = 4.0
	EmpRechargeTime = 5.0

	// Fabrication
	FabricationDebrisCost = 5
	FabricationTime       = 3.0
	FabricationChaingun   = 100
	FabricationBlaster    = 20
	FabricationMissiles   = 6
	FabricationEmp        = 1
)
