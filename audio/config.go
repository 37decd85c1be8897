package audio

import (
	"github.com/lixenwraith/ironhull/core"
)

// Config controls the cue engine
type Config struct {
	Enabled      bool
	SampleRate   int // Hz
	BufferMs     int // speaker buffer length
	MasterVolume float64
	// CategoryVolumes indexed by core.CueCategory
	CategoryVolumes [5]float64
}

// DefaultConfig returns the engine defaults
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		SampleRate:   48000,
		BufferMs:     50,
		MasterVolume: 0.8,
	}
	for i := range cfg.CategoryVolumes {
		cfg.CategoryVolumes[i] = 1.0
	}
	return cfg
}

// cueGain returns the composed gain for a cue before per-instance volume
func (c *Config) cueGain(cue core.CueID) float64 {
	return c.MasterVolume * c.CategoryVolumes[cue.Category()]
}
