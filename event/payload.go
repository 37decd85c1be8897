package event

import (
	"github.com/lixenwraith/ironhull/core"
)

// DamageSource identifies what caused player damage
type DamageSource int

const (
	SourceDrone DamageSource = iota
	SourceCrash
)

// PlayerDamagedPayload carries raw (pre-shield) damage to the player
type PlayerDamagedPayload struct {
	Amount float64
	Source DamageSource
	From   core.Entity // attacking drone, InvalidEntity for environmental
}

// DroneDamagedPayload carries damage dealt to a single drone
type DroneDamagedPayload struct {
	Target core.Entity
	Amount float64
}

// DroneDestroyedPayload reports a kill with its last position
type DroneDestroyedPayload struct {
	Entity core.Entity
	X, Y   float64
}

// PlayerWeapon identifies the discharging weapon in fire events
type PlayerWeapon int

const (
	WeaponChaingun PlayerWeapon = iota
	WeaponBlaster
	WeaponMissiles
	WeaponEmp
)

// String returns the announcer-facing weapon name
func (w PlayerWeapon) String() string {
	switch w {
	case WeaponChaingun:
		return "chaingun"
	case WeaponBlaster:
		return "blaster"
	case WeaponMissiles:
		return "missiles"
	case WeaponEmp:
		return "e m p"
	}
	return "unknown"
}

// WeaponFiredPayload signals a discharge for camo break and drone alerting
type WeaponFiredPayload struct {
	Weapon PlayerWeapon
}

// EmpBurstPayload carries the burst origin and radius
type EmpBurstPayload struct {
	X, Y   float64
	Radius float64
}

// MalfunctionKind identifies which subsystem a malfunction gates
type MalfunctionKind int

const (
	MalfunctionMovement MalfunctionKind = iota
	MalfunctionWeapons
	MalfunctionRadar
	MalfunctionThrusters

	MalfunctionKindCount
)

// String returns the announcer-facing subsystem name
func (k MalfunctionKind) String() string {
	switch k {
	case MalfunctionMovement:
		return "movement"
	case MalfunctionWeapons:
		return "weapons"
	case MalfunctionRadar:
		return "radar"
	case MalfunctionThrusters:
		return "thrusters"
	}
	return "unknown"
}

// MalfunctionPayload reports a malfunction start or clear
type MalfunctionPayload struct {
	Kind    MalfunctionKind
	Started bool // false = cleared
}

// HullBandPayload reports a downward band crossing
type HullBandPayload struct {
	Band string // "wounded", "damaged", "critical"
	Hull float64
}
