package input

// Snapshot is the per-frame input state consumed by systems
// Held fields reflect keys still inside the repeat window; pressed
// fields are edge-triggered and reported exactly once
type Snapshot struct {
	// Held
	TurnLeft     bool
	TurnRight    bool
	Forward      bool
	Backward     bool
	ShieldHeld   bool
	ChaingunHeld bool
	BlasterHeld  bool

	// WeaponSelect picks the serviced weapon mount: 0 = no change,
	// 1 chaingun, 2 missiles, 3 blaster, 4 emp
	WeaponSelect int

	// Pressed
	MissileKey    bool
	EmpKey        bool
	FabricateKey  bool
	RadarKey      bool
	EchoToggle    bool
	CamoToggle    bool
	ThrusterUp    bool
	ThrusterDown  bool
	BoostKey      bool
	StatusQuery   bool
	MuteToggle    bool
	PauseToggle   bool
	RestartKey    bool
	QuitKey       bool
}
