package system

import (
	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/component"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/event"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
	"github.com/lixenwraith/ironhull/status"
)

// MissileSystem runs the lock-on launcher machine:
// Ready -> Initializing -> Locking -> Locked -> Launching -> Ready
// with an InitEnding wind-down path and a warm re-arm shortcut that
// skips initialization shortly after a launch
type MissileSystem struct {
	world *engine.World
	res   engine.CoreResources

	state      component.MissileState
	stateSince float64

	initHandle   audio.Handle
	launchHandle audio.Handle
	endHandle    audio.Handle

	lockTarget   core.Entity
	lockStart    float64
	lockDeadline float64
	nextPing     float64
	lastLaunch   float64
}

func NewMissileSystem(world *engine.World) engine.System {
	s := &MissileSystem{world: world}
	s.Init()
	return s
}

func (s *MissileSystem) Init() {
	s.res = engine.GetCoreResources(s.world)
	s.state = component.MissileReady
	s.stateSince = 0
	s.lockTarget = core.InvalidEntity
	s.lastLaunch = -parameter.MissileWarmWindow
}

func (s *MissileSystem) Name() string { return "missile" }

func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) EventTypes() []event.EventType { return nil }

func (s *MissileSystem) HandleEvent(ev event.GameEvent) {}

// State exposes the machine for tests
func (s *MissileSystem) State() component.MissileState { return s.state }

// LockTimeFor returns the lock duration in seconds for a target distance
// Linear between the minimum and maximum over the launcher's range
func LockTimeFor(dist float64) float64 {
	t := dist / parameter.MissileMaxRange
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return parameter.MissileLockMin + t*(parameter.MissileLockMax-parameter.MissileLockMin)
}

func (s *MissileSystem) transition(to component.MissileState) {
	s.state = to
	s.stateSince = s.res.Time.GameTime
}

func (s *MissileSystem) Update() {
	p := s.res.Player.State
	in := s.res.Input.Snapshot
	now := s.res.Time.GameTime
	player := s.res.Audio.Player

	pressed := in.MissileKey && !p.MalfunctionActive(event.MalfunctionWeapons, now)

	switch s.state {
	case component.MissileReady:
		if pressed && p.Missiles > 0 {
			if now-s.lastLaunch <= parameter.MissileWarmWindow {
				// Tubes still warm from the last launch: straight to acquisition
				s.enterLocking()
			} else {
				s.initHandle = player.Play(core.CueMissileInit, audio.PlayOpts{})
				s.transition(component.MissileInitializing)
			}
		}

	case component.MissileInitializing:
		if now-s.stateSince >= parameter.MissileInitTime && player.Ended(s.initHandle) {
			s.enterLocking()
		}

	case component.MissileLocking:
		if pressed {
			s.windDown()
			break
		}
		s.updateLocking()

	case component.MissileLocked:
		if pressed {
			s.launch()
			break
		}
		// Target may die or leave the arc while locked
		if _, ok := s.validTarget(); !ok {
			s.enterLocking()
		}

	case component.MissileLaunching:
		if player.Ended(s.launchHandle) {
			s.transition(component.MissileReady)
		}

	case component.MissileInitEnding:
		if player.Ended(s.endHandle) {
			s.transition(component.MissileReady)
		}
	}
}

func (s *MissileSystem) enterLocking() {
	frame := s.res.Time.FrameNumber
	now := s.res.Time.GameTime

	target, ok := nearestInArc(s.world, frame, parameter.MissileMaxRange, parameter.MissileArc)
	if !ok {
		s.windDown()
		return
	}

	s.lockTarget = target.Entity
	s.lockStart = now
	s.lockDeadline = now + LockTimeFor(target.Drone.Spatial.Distance)
	s.nextPing = now
	s.transition(component.MissileLocking)
}

func (s *MissileSystem) updateLocking() {
	now := s.res.Time.GameTime

	target, ok := s.validTarget()
	if !ok {
		s.windDown()
		return
	}
	if target.Entity != s.lockTarget {
		// Nearest contact changed; restart acquisition against it
		s.lockTarget = target.Entity
		s.lockStart = now
		s.lockDeadline = now + LockTimeFor(target.Drone.Spatial.Distance)
		s.nextPing = now
		return
	}

	if now >= s.lockDeadline {
		s.res.Audio.Player.Play(core.CueMissileLocked, audio.PlayOpts{})
		s.res.Speech.Announcer.Announce("target locked", speech.PriorityNormal)
		s.transition(component.MissileLocked)
		return
	}

	// Feedback pings tighten linearly as the lock converges
	if now >= s.nextPing {
		s.res.Audio.Player.Play(core.CueMissileLockPing, audio.PlayOpts{})
		progress := (now - s.lockStart) / (s.lockDeadline - s.lockStart)
		interval := parameter.MissileBeepStart -
			(parameter.MissileBeepStart-parameter.MissileBeepEnd)*progress
		s.nextPing = now + interval
	}
}

// validTarget returns the current nearest arc target, if any
func (s *MissileSystem) validTarget() (arcTarget, bool) {
	frame := s.res.Time.FrameNumber
	return nearestInArc(s.world, frame, parameter.MissileMaxRange, parameter.MissileArc)
}

// launch resolves the barrage: one missile per arc target nearest
// first, bounded by barrage size and remaining stock
func (s *MissileSystem) launch() {
	p := s.res.Player.State
	frame := s.res.Time.FrameNumber
	player := s.res.Audio.Player

	spent := p.UseMissiles(parameter.BarrageSize)
	if spent == 0 {
		s.windDown()
		return
	}

	targets := targetsInArc(s.world, frame, parameter.MissileMaxRange, parameter.MissileArc)
	hits := len(targets)
	if hits > spent {
		hits = spent
	}

	total := 0.0
	for i := 0; i < hits; i++ {
		s.world.PushEvent(event.EventDroneDamaged, &event.DroneDamagedPayload{
			Target: targets[i].Entity,
			Amount: parameter.MissileDamage,
		})
		total += parameter.MissileDamage
	}
	if total > parameter.BarrageDamageCap {
		total = parameter.BarrageDamageCap
	}

	s.res.Status.Ints.Get(status.KeyMissilesFired).Add(int64(spent))
	s.res.Status.Floats.Get(status.KeyBarrageDamage).Set(total)
	s.world.PushEvent(event.EventWeaponFired, &event.WeaponFiredPayload{Weapon: event.WeaponMissiles})

	// Launch anchors the warm window; an aborted acquisition stays cold
	s.lastLaunch = s.res.Time.GameTime
	s.launchHandle = player.Play(core.CueMissileLaunch, audio.PlayOpts{})
	s.lockTarget = core.InvalidEntity
	s.transition(component.MissileLaunching)
}

// windDown exits acquisition through the InitEnding state
func (s *MissileSystem) windDown() {
	s.lockTarget = core.InvalidEntity
	s.endHandle = s.res.Audio.Player.Play(core.CueMissileInitEnd, audio.PlayOpts{})
	s.transition(component.MissileInitEnding)
}
