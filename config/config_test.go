package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0/60, cfg.TickDuration(), 1e-7)
	assert.Equal(t, float32(10), cfg.FOV.MaxSpeed)
	assert.Equal(t, float32(0.75), cfg.FOV.Min)
	assert.Equal(t, float32(1.7), cfg.FOV.Max)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
tick_rate: 120
fov:
  max_fov: 1.9
navigation:
  mode: direct
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.TickRate)
	assert.Equal(t, float32(1.9), cfg.FOV.Max)
	assert.Equal(t, float32(0.75), cfg.FOV.Min, "unset keys keep defaults")
	assert.Equal(t, NavigationDirect, cfg.Navigation.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero_tick_rate", func(c *Config) { c.TickRate = 0 }},
		{"zero_max_speed", func(c *Config) { c.FOV.MaxSpeed = 0 }},
		{"inverted_fov", func(c *Config) { c.FOV.Min, c.FOV.Max = 2, 1 }},
		{"inverted_distance", func(c *Config) { c.Camera.MinDistance, c.Camera.MaxDistance = 5, 1 }},
		{"unknown_navigation", func(c *Config) { c.Navigation.Mode = "teleport" }},
		{"script_without_file", func(c *Config) {
			c.Navigation.Mode = NavigationScript
			c.Navigation.Script = ""
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("tick_rate: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("tick_rate: [\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEmbedded(t *testing.T) {
	cfg, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Positive(t, cfg.TickRate)
}
