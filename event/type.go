package event

// EventType represents the type of simulation event
type EventType int

const (
	EventNone EventType = iota

	// === Combat ===

	// EventPlayerDamaged requests damage application to the player mech
	// Trigger: drone attacks, crash landings
	// Consumer: DamageSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventDroneDamaged requests damage application to a drone
	// Trigger: weapon systems on hit resolution
	// Consumer: DroneSystem | Payload: *DroneDamagedPayload
	EventDroneDamaged

	// EventDroneDestroyed signals a drone removal this frame
	// Trigger: DroneSystem when hull reaches zero
	// Consumer: DiagnosticsSystem (kill log) | Payload: *DroneDestroyedPayload
	EventDroneDestroyed

	// EventWeaponFired signals any player weapon discharge
	// Trigger: weapon systems on shot/launch/burst
	// Consumer: CamouflageSystem (break camo), DroneSystem (re-engage) | Payload: *WeaponFiredPayload
	EventWeaponFired

	// EventEmpBurst requests drone disable inside the burst radius
	// Trigger: EmpSystem
	// Consumer: DroneSystem | Payload: *EmpBurstPayload
	EventEmpBurst

	// === Player state ===

	// EventMalfunction signals a subsystem malfunction start or clear
	// Trigger: DamageSystem
	// Consumer: DiagnosticsSystem | Payload: *MalfunctionPayload
	EventMalfunction

	// EventHullBand signals a downward hull band crossing
	// Trigger: DamageSystem
	// Consumer: DiagnosticsSystem | Payload: *HullBandPayload
	EventHullBand

	// EventGameOver signals hull depletion
	// Trigger: DamageSystem
	// Consumer: game loop (stop), DiagnosticsSystem | Payload: nil
	EventGameOver
)

// GameEvent couples a type with its payload
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
