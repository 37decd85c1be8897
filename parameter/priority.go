package parameter

// System execution priorities (lower runs first)
// Targeting must run before every combat and audio consumer of the spatial caches
const (
	PriorityMovement    = 10
	PriorityThruster    = 20
	PriorityCamouflage  = 30
	PriorityTargeting   = 40
	PriorityLoadout     = 45
	PriorityChaingun    = 50
	PriorityBlaster     = 60
	PriorityMissile     = 70
	PriorityEmp         = 80
	PriorityFabrication = 90
	PriorityShield      = 100
	PriorityDrone       = 110
	PrioritySpawn       = 120
	PriorityDamage      = 130
	PriorityRadar       = 140
	PriorityEcho        = 150
	PriorityDiagnostics = 1000 // telemetry, after all game logic
)
