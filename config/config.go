// Package config loads session settings from file, environment and defaults
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/ironhull/parameter"
)

// Config is the validated session configuration
type Config struct {
	// Simulation
	DroneCeiling int   `mapstructure:"drone_ceiling"`
	Seed         int64 `mapstructure:"seed"` // 0 = time-based

	// Audio
	AudioEnabled    bool    `mapstructure:"audio_enabled"`
	MasterVolume    float64 `mapstructure:"master_volume"`
	WeaponsVolume   float64 `mapstructure:"weapons_volume"`
	EquipmentVolume float64 `mapstructure:"equipment_volume"`
	DronesVolume    float64 `mapstructure:"drones_volume"`
	FeedbackVolume  float64 `mapstructure:"feedback_volume"`
	ScanVolume      float64 `mapstructure:"scan_volume"`

	// Speech
	SpeechEnabled bool `mapstructure:"speech_enabled"`
	SpeechRate    int  `mapstructure:"speech_rate"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("drone_ceiling", parameter.DroneCountDefault)
	v.SetDefault("seed", 0)
	v.SetDefault("audio_enabled", true)
	v.SetDefault("master_volume", 0.8)
	v.SetDefault("weapons_volume", 1.0)
	v.SetDefault("equipment_volume", 1.0)
	v.SetDefault("drones_volume", 1.0)
	v.SetDefault("feedback_volume", 1.0)
	v.SetDefault("scan_volume", 1.0)
	v.SetDefault("speech_enabled", true)
	v.SetDefault("speech_rate", 220)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load reads configuration with precedence env > file > defaults
// path may be empty; a missing file is not an error
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("IRONHULL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ironhull")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ironhull")
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Search-path miss is fine; a malformed discovered file is not
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps or rejects out-of-range settings
func (c *Config) Validate() error {
	if c.DroneCeiling < parameter.DroneCountMin || c.DroneCeiling > parameter.DroneCountMax {
		return fmt.Errorf("drone_ceiling %d out of range [%d, %d]",
			c.DroneCeiling, parameter.DroneCountMin, parameter.DroneCountMax)
	}
	for name, vol := range map[string]float64{
		"master_volume":    c.MasterVolume,
		"weapons_volume":   c.WeaponsVolume,
		"equipment_volume": c.EquipmentVolume,
		"drones_volume":    c.DronesVolume,
		"feedback_volume":  c.FeedbackVolume,
		"scan_volume":      c.ScanVolume,
	} {
		if vol < 0 || vol > 1 {
			return fmt.Errorf("%s %.2f out of range [0, 1]", name, vol)
		}
	}
	if c.SpeechRate < 80 || c.SpeechRate > 500 {
		return fmt.Errorf("speech_rate %d out of range [80, 500]", c.SpeechRate)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q not one of trace, debug, info, warn, error", c.LogLevel)
	}
	return nil
}
