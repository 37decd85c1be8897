package system

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// DroneSystem advances every drone's state machine:
// Spawning -> Patrol -> Alerted -> Engaging -> Attacking <-> Retreating
// with Disabled under EMP and Destroyed terminal
//
// A drone destroyed here is removed from the world in the same frame;
// the spawner backfills on its own interval
type DroneSystem struct {
	world *engine.World
	res   engine.CoreResources
}

func NewDroneSystem(world *engine.World) engine.System {
	s := &DroneSystem{world: world}
	s.Init()
	return s
}

func (s *DroneSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
}

func (s *DroneSystem) Name() string { return "drone" }

func (s *DroneSystem) Priority() int { return parameter.PriorityDrone }

func (s *DroneSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDroneDamaged,
		event.EventEmpBurst,
		event.EventWeaponFired,
	}
}

func (s *DroneSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDroneDamaged:
		if p, ok := ev.Payload.(*event.DroneDamagedPayload); ok {
			s.applyDamage(p.Target, p.Amount)
		}
	case event.EventEmpBurst:
		if p, ok := ev.Payload.(*event.EmpBurstPayload); ok {
			s.disableInRadius(p.X, p.Y, p.Radius)
		}
	case event.EventWeaponFired:
		s.alertToGunfire()
	}
}

func (s *DroneSystem) applyDamage(e core.Entity, amount float64) {
	d, ok := s.world.Components.Drone.GetComponent(e)
	if !ok || d.State == component.DroneDestroyed {
		return
	}

	d.Hull -= amount
	if d.Hull <= 0 {
		s.destroy(e, &d)
		return
	}

	// Taking fire reveals the player regardless of camo
	switch d.State {
	case component.DronePatrol, component.DroneAlerted, component.DroneRetreating:
		s.setState(&d, component.DroneEngaging)
	}
	s.world.Components.Drone.SetComponent(e, d)
}

func (s *DroneSystem) destroy(e core.Entity, d *component.DroneComponent) {
	s.res.Audio.Player.Play(core.CueDroneExplosion, audio.PlayOpts{
		Pan:    d.Spatial.Pan,
		Volume: 0.5 + 0.5*d.Spatial.Volume,
	})
	s.res.Speech.Announcer.Announce("drone destroyed", speech.PriorityNormal)

	wreck := s.world.CreateEntity()
	s.world.Components.Wreck.SetComponent(wreck, component.WreckComponent{
		X: d.X, Y: d.Y, Debris: parameter.DebrisPerWreck,
	})

	s.world.PushEvent(event.EventDroneDestroyed, &event.DroneDestroyedPayload{
		Entity: e, X: d.X, Y: d.Y,
	})
	s.res.Status.Ints.Get(status.KeyDronesKilled).Add(1)

	// Same-frame removal: the drone never appears in the next frame
	s.world.DestroyEntity(e)
}

func (s *DroneSystem) disableInRadius(x, y, radius float64) {
	now := s.res.Time.GameTime
	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}
		if math.Hypot(d.X-x, d.Y-y) > radius {
			continue
		}
		d.DisabledUntil = now + parameter.EmpDisableTime
		s.setState(&d, component.DroneDisabled)
		s.world.Components.Drone.SetComponent(e, d)
		s.res.Audio.Player.Play(core.CueDroneDisabled, audio.PlayOpts{
			Pan: d.Spatial.Pan, Volume: d.Spatial.Volume,
		})
	}
}

// alertToGunfire pulls passive drones toward the shooter
func (s *DroneSystem) alertToGunfire() {
	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok {
			continue
		}
		if d.Spatial.Distance > parameter.DroneDetectRadius*1.5 {
			continue
		}
		switch d.State {
		case component.DronePatrol:
			s.alert(&d)
		case component.DroneRetreating:
			s.setState(&d, component.DroneEngaging)
		default:
			continue
		}
		s.world.Components.Drone.SetComponent(e, d)
	}
}

func (s *DroneSystem) setState(d *component.DroneComponent, to component.DroneState) {
	d.State = to
	d.StateSince = s.res.Time.GameTime
}

func (s *DroneSystem) alert(d *component.DroneComponent) {
	s.setState(d, component.DroneAlerted)
	s.res.Audio.Player.Play(core.CueDroneAlert, audio.PlayOpts{
		Pan: d.Spatial.Pan, Volume: d.Spatial.Volume,
	})
}

func (s *DroneSystem) Update() {
	p := s.res.Player.State
	dt := s.res.Time.DeltaTime
	now := s.res.Time.GameTime
	rng := s.res.Rand.Rand

	for _, e := range s.world.Components.Drone.GetAllEntities() {
		d, ok := s.world.Components.Drone.GetComponent(e)
		if !ok || d.State == component.DroneDestroyed {
			continue
		}

		detect := parameter.DroneDetectRadius
		if p.CamoActive {
			detect = parameter.CamoDetectRadius
		}

		switch d.State {
		case component.DroneSpawning:
			if now-d.StateSince >= 1.0 {
				s.pickWaypoint(&d, rng)
				s.setState(&d, component.DronePatrol)
			}

		case component.DronePatrol:
			s.moveToward(&d, d.WaypointX, d.WaypointY, parameter.DronePatrolSpeed, dt)
			if math.Hypot(d.WaypointX-d.X, d.WaypointY-d.Y) < 2 {
				s.pickWaypoint(&d, rng)
			}
			if d.Spatial.Distance <= detect {
				s.alert(&d)
			}

		case component.DroneAlerted:
			if d.Spatial.Distance > detect*1.2 {
				s.setState(&d, component.DronePatrol)
				break
			}
			if now-d.StateSince >= parameter.AlertConfirmTime {
				s.setState(&d, component.DroneEngaging)
			}

		case component.DroneEngaging:
			s.engage(&d, p.X, p.Y, p.Altitude, dt)
			weaponRange := parameter.DroneWeaponRange[d.Weapon]
			if d.Spatial.Distance <= weaponRange*0.9 {
				d.BurstLeft = parameter.BurstMin + rng.Intn(parameter.BurstMax-parameter.BurstMin+1)
				d.NextRoundAt = now
				s.setState(&d, component.DroneAttacking)
			}

		case component.DroneAttacking:
			s.attack(&d, rng)

		case component.DroneRetreating:
			s.moveAway(&d, p.X, p.Y, parameter.DroneRetreatSpeed, dt)
			if d.Spatial.Distance >= d.RetreatDist {
				s.pickWaypoint(&d, rng)
				s.setState(&d, component.DronePatrol)
			}

		case component.DroneDisabled:
			if now >= d.DisabledUntil {
				s.setState(&d, component.DroneEngaging)
			}
		}

		s.world.Components.Drone.SetComponent(e, d)
	}
}

func (s *DroneSystem) pickWaypoint(d *component.DroneComponent, rng *rand.Rand) {
	angle := rng.Float64() * 2 * math.Pi
	dist := 10 + rng.Float64()*15
	d.WaypointX = d.X + math.Sin(angle)*dist
	d.WaypointY = d.Y + math.Cos(angle)*dist
}

func (s *DroneSystem) moveToward(d *component.DroneComponent, tx, ty, speed, dt float64) {
	dx, dy := tx-d.X, ty-d.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		return
	}
	d.X += dx / dist * speed * dt
	d.Y += dy / dist * speed * dt
}

func (s *DroneSystem) moveAway(d *component.DroneComponent, px, py, speed, dt float64) {
	dx, dy := d.X-px, d.Y-py
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		dx, dy, dist = 1, 0, 1
	}
	d.X += dx / dist * speed * dt
	d.Y += dy / dist * speed * dt
}

// engage closes on the player with a lateral jink so the approach is
// audible as weaving rather than a straight run
func (s *DroneSystem) engage(d *component.DroneComponent, px, py, palt, dt float64) {
	d.EvadePhase += dt * 3
	dx, dy := px-d.X, py-d.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		return
	}
	ux, uy := dx/dist, dy/dist
	// Perpendicular jink
	jink := math.Sin(d.EvadePhase) * parameter.DroneEvadeAmplitude
	d.X += (ux*parameter.DroneEngageSpeed - uy*jink) * dt
	d.Y += (uy*parameter.DroneEngageSpeed + ux*jink) * dt

	// Drift toward the player's altitude band
	d.Altitude += (palt + 15 - d.Altitude) * 0.2 * dt
}

// attack fires the queued burst, then withdraws after the cooldown
func (s *DroneSystem) attack(d *component.DroneComponent, rng *rand.Rand) {
	now := s.res.Time.GameTime

	if d.BurstLeft > 0 && now >= d.NextRoundAt {
		d.BurstLeft--
		d.NextRoundAt = now + parameter.BurstRoundGap
		s.fireRound(d, rng)
	}

	if d.BurstLeft <= 0 && now >= d.NextRoundAt+parameter.AttackCooldown {
		d.RetreatDist = parameter.RetreatSafeDist + rng.Float64()*parameter.RetreatDistJitter
		s.setState(d, component.DroneRetreating)
	}
}

func (s *DroneSystem) fireRound(d *component.DroneComponent, rng *rand.Rand) {
	cue := core.CueDroneFirePulse
	switch d.Weapon {
	case component.WeaponPlasma:
		cue = core.CueDroneFirePlasma
	case component.WeaponRail:
		cue = core.CueDroneFireRail
	}
	s.res.Audio.Player.Play(cue, audio.PlayOpts{
		Pan:    d.Spatial.Pan,
		Volume: 0.4 + 0.6*d.Spatial.Volume,
	})
	s.res.Status.Ints.Get(status.KeyDroneShots).Add(1)

	weaponRange := parameter.DroneWeaponRange[d.Weapon]
	distFactor := d.Spatial.Distance / weaponRange
	if distFactor > 1 {
		distFactor = 1
	}
	chance := parameter.DroneAccuracy -
		distFactor*parameter.DistancePenalty -
		math.Abs(d.Spatial.AltDiff)*parameter.AltitudePenaltyPerFt
	if chance < parameter.HitChanceFloor {
		chance = parameter.HitChanceFloor
	}

	if rng.Float64() < chance {
		s.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
			Amount: parameter.DroneWeaponDamage[d.Weapon],
			Source: event.SourceDrone,
		})
	}
}
