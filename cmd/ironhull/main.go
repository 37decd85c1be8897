// ironhull is an audio-only mech combat simulator for the terminal
// All situational awareness comes through positional sound and speech;
// the screen shows only the static key reference
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironhull/audio"
	"github.com/lixenwraith/ironhull/config"
	"github.com/lixenwraith/ironhull/core"
	"github.com/lixenwraith/ironhull/engine"
	"github.com/lixenwraith/ironhull/input"
	"github.com/lixenwraith/ironhull/parameter"
	"github.com/lixenwraith/ironhull/speech"
)

var (
	configFlag = flag.String("config", "", "path to config file (default: search ./ironhull.toml)")
	dronesFlag = flag.Int("drones", 0, "drone ceiling 1-4, overrides config")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironhull: %v\n", err)
		os.Exit(1)
	}
	if *dronesFlag != 0 {
		cfg.DroneCeiling = *dronesFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "ironhull: %v\n", err)
			os.Exit(1)
		}
	}

	log, logClose := setupLogging(cfg)
	defer logClose()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironhull: terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "ironhull: terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "ironhull crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	sound := audio.NewService(audioConfig(cfg), log)
	sound.Start()
	defer sound.Stop()

	announcer := buildAnnouncer(cfg, log)
	if stopper, ok := announcer.(*speech.EspeakAnnouncer); ok {
		defer stopper.Stop()
	}

	tracker := input.NewTracker()
	go pollKeys(screen, tracker)

	drawHelp(screen)
	sess := newSession(cfg, sound.Player(), announcer, log)
	announcer.Announce("ironhull online", speech.PriorityCritical)

	runLoop(sess, tracker, sound, log)
}

// runLoop drives the fixed-timestep simulation until quit
func runLoop(sess *session, tracker *input.Tracker, sound *audio.Service, log zerolog.Logger) {
	ticker := time.NewTicker(time.Second / parameter.TickRate)
	defer ticker.Stop()

	clock := engine.NewTimeProvider()
	last := clock.Now()
	wasOver := false
	for range ticker.C {
		now := clock.Now()
		dt := now.Sub(last).Seconds()
		last = now

		snap := tracker.BuildSnapshot(now)

		if snap.QuitKey {
			log.Info().Msg("quit requested")
			return
		}
		if snap.MuteToggle {
			muted := sound.ToggleMute()
			log.Info().Bool("muted", muted).Msg("mute toggled")
		}
		if snap.PauseToggle {
			sess.togglePause()
		}
		if sess.over() {
			if !wasOver {
				wasOver = true
				sess.flushEvents()
			}
			if snap.RestartKey {
				sess.restart()
				wasOver = false
			}
			continue
		}
		if sess.paused {
			continue
		}

		sess.tick(dt, now, snap)
	}
}

// pollKeys feeds terminal events to the tracker from its own goroutine
func pollKeys(screen tcell.Screen, tracker *input.Tracker) {
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			tracker.HandleKey(e, time.Now())
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
	}
}

func setupLogging(cfg *config.Config) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// The terminal belongs to the simulator; logs go to a file or nowhere
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeFn
}

func audioConfig(cfg *config.Config) *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.AudioEnabled
	ac.MasterVolume = cfg.MasterVolume
	ac.CategoryVolumes[core.CategoryWeapons] = cfg.WeaponsVolume
	ac.CategoryVolumes[core.CategoryEquipment] = cfg.EquipmentVolume
	ac.CategoryVolumes[core.CategoryDrones] = cfg.DronesVolume
	ac.CategoryVolumes[core.CategoryFeedback] = cfg.FeedbackVolume
	ac.CategoryVolumes[core.CategoryScan] = cfg.ScanVolume
	return ac
}

func buildAnnouncer(cfg *config.Config, log zerolog.Logger) speech.Announcer {
	if cfg.SpeechEnabled {
		if a := speech.NewEspeak(cfg.SpeechRate, log); a != nil {
			return a
		}
	}
	return speech.NewNull()
}

// drawHelp paints the static key reference; the game itself is sound
func drawHelp(screen tcell.Screen) {
	lines := []string{
		"IRONHULL  --  close your eyes, open your ears",
		"",
		"  w/s a/d   walk / turn          g (hold)  shield",
		"  j (hold)  chaingun             c         camouflage",
		"  k (hold)  blaster              ] [       thruster stage",
		"  l         missiles             b         boost",
		"  e         emp                  r         radar sweep",
		"  f         fabricate            t         echo pulse",
		"  1 2 3 4   select weapon mount for fabrication",
		"  h         status report        m         mute",
		"  p         pause                n         restart",
		"  q / Esc   quit",
	}
	style := tcell.StyleDefault
	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x+2, y+1, r, nil, style)
		}
	}
	screen.Show()
}
