// Package config loads game settings from defaults, an optional YAML file
// and ASTEROIDS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Garsondee/Asteroid-Sense/internal/game"
)

// EnvPrefix is prepended to every environment override, e.g.
// ASTEROIDS_ROUND_SEED.
const EnvPrefix = "ASTEROIDS"

// Config is the full application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Round    RoundConfig    `mapstructure:"round" yaml:"round"`
	Ship     ShipConfig     `mapstructure:"ship" yaml:"ship"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Headless HeadlessConfig `mapstructure:"headless" yaml:"headless"`
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
}

// WindowConfig is the playfield and frame pacing.
type WindowConfig struct {
	Width    float64 `mapstructure:"width" yaml:"width"`
	Height   float64 `mapstructure:"height" yaml:"height"`
	TickRate int     `mapstructure:"tick_rate" yaml:"tick_rate"`
	Title    string  `mapstructure:"title" yaml:"title"`
}

// RoundConfig controls the world each round starts with.
type RoundConfig struct {
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
	SpawnInterval  int     `mapstructure:"spawn_interval" yaml:"spawn_interval"`
	AsteroidRadius float64 `mapstructure:"asteroid_radius" yaml:"asteroid_radius"`
	Verbose        bool    `mapstructure:"verbose" yaml:"verbose"`
}

// ShipConfig mirrors game.ShipSpec.
type ShipConfig struct {
	Height      float64 `mapstructure:"height" yaml:"height"`
	TurnSpeed   float64 `mapstructure:"turn_speed" yaml:"turn_speed"`
	ThrustMax   float64 `mapstructure:"thrust_max" yaml:"thrust_max"`
	ThrustIncr  float64 `mapstructure:"thrust_incr" yaml:"thrust_incr"`
	CanonSpeed  float64 `mapstructure:"canon_speed" yaml:"canon_speed"`
	ReloadTicks int     `mapstructure:"reload_ticks" yaml:"reload_ticks"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the console colour of each log level.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// HeadlessConfig drives the batch report runner.
type HeadlessConfig struct {
	Runs     int    `mapstructure:"runs" yaml:"runs"`
	Ticks    int    `mapstructure:"ticks" yaml:"ticks"`
	SeedBase int64  `mapstructure:"seed_base" yaml:"seed_base"`
	SeedStep int64  `mapstructure:"seed_step" yaml:"seed_step"`
	Agent    string `mapstructure:"agent" yaml:"agent"`
	Parallel int    `mapstructure:"parallel" yaml:"parallel"`
	Realtime bool   `mapstructure:"realtime" yaml:"realtime"`
}

// TerminalConfig drives the terminal spectator.
type TerminalConfig struct {
	Agent string `mapstructure:"agent" yaml:"agent"`
	Sound bool   `mapstructure:"sound" yaml:"sound"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.width", 800.0)
	v.SetDefault("window.height", 600.0)
	v.SetDefault("window.tick_rate", 60)
	v.SetDefault("window.title", "Asteroid Sense")

	// -- Round --
	v.SetDefault("round.seed", 1)
	v.SetDefault("round.spawn_interval", game.DefaultSpawnInterval)
	v.SetDefault("round.asteroid_radius", game.DefaultAsteroidRadius)
	v.SetDefault("round.verbose", false)

	// -- Ship --
	spec := game.DefaultShipSpec()
	v.SetDefault("ship.height", spec.Height)
	v.SetDefault("ship.turn_speed", spec.TurnSpeed)
	v.SetDefault("ship.thrust_max", spec.ThrustMax)
	v.SetDefault("ship.thrust_incr", spec.ThrustIncr)
	v.SetDefault("ship.canon_speed", spec.CanonSpeed)
	v.SetDefault("ship.reload_ticks", spec.ReloadTicks)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "asteroids")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	// -- Headless --
	v.SetDefault("headless.runs", 10)
	v.SetDefault("headless.ticks", 3600)
	v.SetDefault("headless.seed_base", 1)
	v.SetDefault("headless.seed_step", 1)
	v.SetDefault("headless.agent", "reactive")
	v.SetDefault("headless.parallel", 4)
	v.SetDefault("headless.realtime", false)

	// -- Terminal --
	v.SetDefault("terminal.agent", "reactive")
	v.SetDefault("terminal.sound", true)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; a failure here is a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper returns a viper instance with defaults and environment overrides
// wired. Commands bind their flags onto it before calling FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path into v. With an empty path it looks for
// asteroids.yaml in the working directory and tolerates its absence.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("asteroids")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file %q: %w", path, err)
	}
	return nil
}

// BindFlags binds each viper key to the flag of the given name so a set
// flag overrides file and environment values.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for key %s", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads defaults, the config file at path (or ./asteroids.yaml) and
// the environment.
func Load(path string) (*Config, error) {
	v := NewViper()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Window.TickRate <= 0 {
		return fmt.Errorf("window.tick_rate must be a positive integer")
	}
	if c.Round.SpawnInterval < 0 {
		return fmt.Errorf("round.spawn_interval must not be negative")
	}
	if c.Round.AsteroidRadius <= 0 {
		return fmt.Errorf("round.asteroid_radius must be positive")
	}
	if err := c.Ship.Validate(); err != nil {
		return err
	}
	if c.Headless.Runs <= 0 || c.Headless.Ticks <= 0 {
		return fmt.Errorf("headless.runs and headless.ticks must be positive integers")
	}
	if c.Headless.Parallel <= 0 {
		return fmt.Errorf("headless.parallel must be a positive integer")
	}
	return nil
}

// Validate checks the ship handling values.
func (s ShipConfig) Validate() error {
	if s.Height <= 0 {
		return fmt.Errorf("ship.height must be positive")
	}
	if s.ReloadTicks < 0 {
		return fmt.Errorf("ship.reload_ticks must not be negative")
	}
	if s.ThrustMax < 0 || s.ThrustIncr < 0 {
		return fmt.Errorf("ship.thrust_max and ship.thrust_incr must not be negative")
	}
	if s.ThrustIncr > s.ThrustMax {
		return fmt.Errorf("ship.thrust_incr (%v) must not exceed ship.thrust_max (%v)", s.ThrustIncr, s.ThrustMax)
	}
	return nil
}

// Spec converts the ship settings into the game's ship spec.
func (s ShipConfig) Spec() game.ShipSpec {
	return game.ShipSpec{
		Height:      s.Height,
		TurnSpeed:   s.TurnSpeed,
		ThrustMax:   s.ThrustMax,
		ThrustIncr:  s.ThrustIncr,
		CanonSpeed:  s.CanonSpeed,
		ReloadTicks: s.ReloadTicks,
	}
}

// RoundOptions returns the round construction options the settings imply.
// Pilots and logging are left to the caller.
func (c *Config) RoundOptions() []game.RoundOption {
	return []game.RoundOption{
		game.WithWindowSize(c.Window.Width, c.Window.Height),
		game.WithSeed(c.Round.Seed),
		game.WithSpawnInterval(c.Round.SpawnInterval),
		game.WithAsteroidRadius(c.Round.AsteroidRadius),
		game.WithShipSpec(c.Ship.Spec()),
		game.WithVerbose(c.Round.Verbose),
	}
}
