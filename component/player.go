package component

import (
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
)

// PlayerState is the mech's mutable state
// Single writer per field per frame; systems coordinate through priorities
type PlayerState struct {
	// Pose
	X, Y     float64 // meters, local frame
	Altitude float64 // feet above ground
	Heading  float64 // degrees, 0 = north, clockwise

	// Motion
	Speed       float64 // m/s along heading
	VerticalVel float64 // ft/s, positive up

	Hull float64

	// Energy pools, 0..EnergyMax
	ThrusterEnergy float64
	ShieldEnergy   float64
	CamoEnergy     float64

	// Ammunition
	ChaingunAmmo int
	BlasterAmmo  int
	Missiles     int
	EmpCharges   int
	Debris       int

	// ActiveWeapon is the mount the fabricator services; switching
	// never interrupts a weapon machine mid-sequence
	ActiveWeapon event.PlayerWeapon

	// Equipment flags
	ShieldActive  bool
	CamoActive    bool
	Airborne      bool
	ThrusterStage int // 0 = off, up to parameter.ThrusterStages

	// Malfunction expiry in game time seconds, indexed by event.MalfunctionKind
	// Zero or past = clear
	malfunctionUntil [event.MalfunctionKindCount]float64
}

// NewPlayerState returns a player at spawn defaults
func NewPlayerState() *PlayerState {
	p := &PlayerState{}
	p.Reset()
	return p
}

// Reset restores all spawn defaults
func (p *PlayerState) Reset() {
	*p = PlayerState{
		Hull:           parameter.HullMax,
		ThrusterEnergy: parameter.EnergyMax,
		ShieldEnergy:   parameter.EnergyMax,
		CamoEnergy:     parameter.EnergyMax,
		ChaingunAmmo:   parameter.ChaingunAmmoMax,
		BlasterAmmo:    parameter.BlasterAmmoMax,
		Missiles:       parameter.MissileAmmoMax,
		EmpCharges:     parameter.EmpChargesMax,
		ActiveWeapon:   event.WeaponChaingun,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddHull adjusts hull, clamped to [0, HullMax]
func (p *PlayerState) AddHull(delta float64) {
	p.Hull = clampFloat(p.Hull+delta, 0, parameter.HullMax)
}

// AddThrusterEnergy adjusts the thruster pool, clamped
func (p *PlayerState) AddThrusterEnergy(delta float64) {
	p.ThrusterEnergy = clampFloat(p.ThrusterEnergy+delta, 0, parameter.EnergyMax)
}

// AddShieldEnergy adjusts the shield pool, clamped
func (p *PlayerState) AddShieldEnergy(delta float64) {
	p.ShieldEnergy = clampFloat(p.ShieldEnergy+delta, 0, parameter.EnergyMax)
}

// AddCamoEnergy adjusts the camouflage pool, clamped
func (p *PlayerState) AddCamoEnergy(delta float64) {
	p.CamoEnergy = clampFloat(p.CamoEnergy+delta, 0, parameter.EnergyMax)
}

// UseChaingunAmmo consumes up to n rounds, returns rounds actually spent
func (p *PlayerState) UseChaingunAmmo(n int) int {
	if n > p.ChaingunAmmo {
		n = p.ChaingunAmmo
	}
	p.ChaingunAmmo -= n
	return n
}

// AddChaingunAmmo credits rounds, clamped at magazine max
func (p *PlayerState) AddChaingunAmmo(n int) {
	p.ChaingunAmmo = clampInt(p.ChaingunAmmo+n, 0, parameter.ChaingunAmmoMax)
}

// UseBlasterAmmo consumes one cell if available
func (p *PlayerState) UseBlasterAmmo() bool {
	if p.BlasterAmmo <= 0 {
		return false
	}
	p.BlasterAmmo--
	return true
}

// AddBlasterAmmo credits cells, clamped
func (p *PlayerState) AddBlasterAmmo(n int) {
	p.BlasterAmmo = clampInt(p.BlasterAmmo+n, 0, parameter.BlasterAmmoMax)
}

// UseMissiles consumes up to n missiles, returns count actually spent
func (p *PlayerState) UseMissiles(n int) int {
	if n > p.Missiles {
		n = p.Missiles
	}
	p.Missiles -= n
	return n
}

// AddMissiles credits missiles, clamped
func (p *PlayerState) AddMissiles(n int) {
	p.Missiles = clampInt(p.Missiles+n, 0, parameter.MissileAmmoMax)
}

// UseEmpCharge consumes one charge if available
func (p *PlayerState) UseEmpCharge() bool {
	if p.EmpCharges <= 0 {
		return false
	}
	p.EmpCharges--
	return true
}

// AddEmpCharges credits charges, clamped
func (p *PlayerState) AddEmpCharges(n int) {
	p.EmpCharges = clampInt(p.EmpCharges+n, 0, parameter.EmpChargesMax)
}

// AddDebris credits scrap, clamped at carry max. Returns amount actually taken
func (p *PlayerState) AddDebris(n int) int {
	take := clampInt(p.Debris+n, 0, parameter.DebrisMax) - p.Debris
	p.Debris += take
	return take
}

// UseDebris consumes n scrap if available
func (p *PlayerState) UseDebris(n int) bool {
	if p.Debris < n {
		return false
	}
	p.Debris -= n
	return true
}

// SetMalfunction starts or refreshes a malfunction until the given game time
func (p *PlayerState) SetMalfunction(kind event.MalfunctionKind, until float64) {
	if until > p.malfunctionUntil[kind] {
		p.malfunctionUntil[kind] = until
	}
}

// ClearMalfunction ends a malfunction immediately
func (p *PlayerState) ClearMalfunction(kind event.MalfunctionKind) {
	p.malfunctionUntil[kind] = 0
}

// MalfunctionActive reports whether the kind is gating at the given game time
func (p *PlayerState) MalfunctionActive(kind event.MalfunctionKind, now float64) bool {
	return p.malfunctionUntil[kind] > now
}

// MalfunctionUntil returns the expiry time for a kind (0 = never set)
func (p *PlayerState) MalfunctionUntil(kind event.MalfunctionKind) float64 {
	return p.malfunctionUntil[kind]
}
