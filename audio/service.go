package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Service wraps Engine with lifecycle and graceful degradation
// A machine without a playback device runs the full simulation silently
type Service struct {
	log      zerolog.Logger
	engine   *Engine
	fallback *NullPlayer
	disabled atomic.Bool
}

// NewService creates an audio service
func NewService(cfg *Config, log zerolog.Logger) *Service {
	return &Service{
		log:      log.With().Str("service", "audio").Logger(),
		engine:   NewEngine(cfg),
		fallback: NewNullPlayer(),
	}
}

// Start brings up the speaker; failure switches to the silent fallback
func (s *Service) Start() {
	if err := s.engine.Start(); err != nil {
		s.disabled.Store(true)
		s.log.Warn().Err(err).Msg("no audio backend, running silent")
		return
	}
	s.log.Info().Int("sample_rate", s.engine.config.SampleRate).Msg("audio started")
}

// Stop shuts the engine down
func (s *Service) Stop() {
	if !s.disabled.Load() {
		s.engine.Close()
	}
}

// Player returns the cue player; never nil
func (s *Service) Player() Player {
	if s.disabled.Load() {
		return s.fallback
	}
	return s.engine
}

// ToggleMute flips engine mute and reports the new muted state
func (s *Service) ToggleMute() bool {
	if s.disabled.Load() {
		return true
	}
	return s.engine.ToggleMute()
}

// IsDisabled reports whether playback is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}
