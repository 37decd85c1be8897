package status

// Well-known metric keys written by simulation systems and read by
// the diagnostics logger
const (
	KeyFrames         = "engine.frames"
	KeyEventsRouted   = "engine.events_routed"
	KeyEventsDropped  = "engine.events_dropped"
	KeyRoundsFired    = "weapons.rounds_fired"
	KeyMissilesFired  = "weapons.missiles_fired"
	KeyBarrageDamage  = "weapons.last_barrage_damage"
	KeyFabrications   = "weapons.fabrications"
	KeyDronesActive   = "drones.active"
	KeyDronesKilled   = "drones.killed"
	KeyDroneShots     = "drones.shots_taken"
	KeyPlayerHull     = "player.hull"
	KeyPlayerDebris   = "player.debris"
	KeyMalfunctions   = "player.malfunctions"
	KeyRadarScans     = "scan.radar_scans"
	KeyEchoPings      = "scan.echo_pings"
	KeyNearestDrone   = "scan.nearest_distance"
	KeyDroneState     = "drones.nearest_state"
)
