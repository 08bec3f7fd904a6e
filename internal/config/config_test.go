package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 800.0, cfg.Window.Width)
	assert.Equal(t, 600.0, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TickRate)
	assert.Equal(t, int64(1), cfg.Round.Seed)
	assert.Equal(t, game.DefaultSpawnInterval, cfg.Round.SpawnInterval)
	assert.Equal(t, game.DefaultShipSpec(), cfg.Ship.Spec())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "reactive", cfg.Headless.Agent)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	t.Run("window", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Window.Width = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "window.width")
	})

	t.Run("spawn interval", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Round.SpawnInterval = 0
		assert.NoError(t, cfg.Validate(), "zero disables spawning")
		cfg.Round.SpawnInterval = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("ship", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Ship.ThrustIncr = cfg.Ship.ThrustMax + 1
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ship.thrust_incr")

		cfg = NewDefaultConfig()
		cfg.Ship.ReloadTicks = -1
		assert.Error(t, cfg.Validate())

		cfg = NewDefaultConfig()
		cfg.Ship.ThrustIncr = -0.4
		assert.Error(t, cfg.Validate(), "negative increment would drive thrust below zero")

		cfg = NewDefaultConfig()
		cfg.Ship.ThrustMax = -1
		cfg.Ship.ThrustIncr = -2
		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ship.thrust_max")
	})

	t.Run("headless", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Headless.Parallel = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asteroids.yaml")
	yaml := []byte(`
window:
  width: 1024
  height: 768
round:
  seed: 42
  spawn_interval: 0
ship:
  reload_ticks: 5
headless:
  agent: dumb
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Window.Width)
	assert.Equal(t, 768.0, cfg.Window.Height)
	assert.Equal(t, int64(42), cfg.Round.Seed)
	assert.Equal(t, 0, cfg.Round.SpawnInterval)
	assert.Equal(t, 5, cfg.Ship.ReloadTicks)
	assert.Equal(t, 10.0, cfg.Ship.Height, "unset keys keep their defaults")
	assert.Equal(t, "dumb", cfg.Headless.Agent)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -5\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Window.Width)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ASTEROIDS_ROUND_SEED", "99")
	t.Setenv("ASTEROIDS_HEADLESS_AGENT", "idle")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Round.Seed)
	assert.Equal(t, "idle", cfg.Headless.Agent)
}

func TestRoundOptions_BuildRound(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Window.Width = 400
	cfg.Window.Height = 300
	cfg.Round.SpawnInterval = 0

	r := game.NewRound(cfg.RoundOptions()...)
	w, h := r.Size()
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)
	r.RunTicks(100)
	assert.Zero(t, r.Report().Spawned)
}

func TestBindFlags_FlagBeatsDefault(t *testing.T) {
	v := NewViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("runs", 10, "")
	require.NoError(t, BindFlags(v, flags, map[string]string{"headless.runs": "runs"}))

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Headless.Runs, "unset flag keeps the default")

	require.NoError(t, flags.Parse([]string{"--runs", "3"}))
	cfg, err = FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Headless.Runs)

	err = BindFlags(v, flags, map[string]string{"headless.ticks": "nope"})
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
