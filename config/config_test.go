package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironhull/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ironhull.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	// An empty file exercises pure defaults without stray host config
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, parameter.DroneCountDefault, cfg.DroneCeiling)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.True(t, cfg.AudioEnabled)
	assert.True(t, cfg.SpeechEnabled)
	assert.Equal(t, 0.8, cfg.MasterVolume)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
drone_ceiling = 4
seed = 1234
master_volume = 0.5
log_level = "debug"
speech_enabled = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.DroneCeiling)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 0.5, cfg.MasterVolume)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SpeechEnabled)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"ceiling too high", "drone_ceiling = 9"},
		{"ceiling zero", "drone_ceiling = 0"},
		{"volume above one", "master_volume = 1.5"},
		{"negative volume", "scan_volume = -0.1"},
		{"bad log level", `log_level = "verbose"`},
		{"speech rate", "speech_rate = 10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err, "an explicitly named missing file is an error")
}
