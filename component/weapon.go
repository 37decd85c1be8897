package component

// Player weapon state machines
// States advance on elapsed game time and on audio completion polling, never block

// ChaingunState discriminates the rotary cannon machine
type ChaingunState int

const (
	ChaingunReady ChaingunState = iota
	ChaingunSpinUp
	ChaingunFiring
	ChaingunSpinDown
)

func (s ChaingunState) String() string {
	switch s {
	case ChaingunReady:
		return "Ready"
	case ChaingunSpinUp:
		return "SpinUp"
	case ChaingunFiring:
		return "Firing"
	case ChaingunSpinDown:
		return "SpinDown"
	}
	return "Unknown"
}

// BlasterState discriminates the charge weapon machine
type BlasterState int

const (
	BlasterReady BlasterState = iota
	BlasterCharging
	BlasterCoolingDown
)

func (s BlasterState) String() string {
	switch s {
	case BlasterReady:
		return "Ready"
	case BlasterCharging:
		return "Charging"
	case BlasterCoolingDown:
		return "Cooldown"
	}
	return "Unknown"
}

// MissileState discriminates the lock-on launcher machine
type MissileState int

const (
	MissileReady MissileState = iota
	MissileInitializing
	MissileLocking
	MissileLocked
	MissileLaunching
	MissileInitEnding
)

func (s MissileState) String() string {
	switch s {
	case MissileReady:
		return "Ready"
	case MissileInitializing:
		return "Initializing"
	case MissileLocking:
		return "Locking"
	case MissileLocked:
		return "Locked"
	case MissileLaunching:
		return "Launching"
	case MissileInitEnding:
		return "InitEnding"
	}
	return "Unknown"
}

// EmpState discriminates the pulse device machine
type EmpState int

const (
	EmpReady EmpState = iota
	EmpPriming
	EmpRecharging
)

func (s EmpState) String() string {
	switch s {
	case EmpReady:
		return "Ready"
	case EmpPriming:
		return "Priming"
	case EmpRecharging:
		return "Recharging"
	}
	return "Unknown"
}

// FabricationState discriminates the field fabricator
type FabricationState int

const (
	FabricationIdle FabricationState = iota
	FabricationRunning
)

func (s FabricationState) String() string {
	switch s {
	case FabricationIdle:
		return "Idle"
	case FabricationRunning:
		return "Fabricating"
	}
	return "Unknown"
}
