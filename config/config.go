// Package config loads game settings from a YAML file with environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/game"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "YES_OR_NO_"

// Sentinel errors
var (
	ErrInvalidAttempts = errors.New("max_attempts must be at least 1")
	ErrInvalidVolume   = errors.New("volume must be within 0.0 - 1.0")
	ErrInvalidTiming   = errors.New("timing must be positive")
)

// Config is the user-facing configuration
type Config struct {
	MaxAttempts int       `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	Debug       bool      `yaml:"debug" env:"DEBUG"`
	Mute        bool      `yaml:"mute" env:"MUTE"`
	Text        Text      `yaml:"text" envPrefix:"TEXT_"`
	Volume      Volume    `yaml:"volume" envPrefix:"VOLUME_"`
	Timing      Timing    `yaml:"timing" envPrefix:"TIMING_"`
	Telemetry   Telemetry `yaml:"telemetry" envPrefix:"OTEL_"`
}

// Text holds the on-screen copy
type Text struct {
	Title    string `yaml:"title" env:"TITLE"`
	Subtitle string `yaml:"subtitle" env:"SUBTITLE"`
	Final    string `yaml:"final" env:"FINAL"`
}

// Volume holds per-track volume, 0.0 - 1.0
type Volume struct {
	Heartbeat float64 `yaml:"heartbeat" env:"HEARTBEAT"`
	Sad       float64 `yaml:"sad" env:"SAD"`
	Happy     float64 `yaml:"happy" env:"HAPPY"`
}

// Timing holds the escalation delays; YAML accepts Go duration strings like "1300ms"
type Timing struct {
	Damage       time.Duration `yaml:"damage" env:"DAMAGE"`
	Shake        time.Duration `yaml:"shake" env:"SHAKE"`
	DestroyDelay time.Duration `yaml:"destroy_delay" env:"DESTROY_DELAY"`
	RemovalDelay time.Duration `yaml:"removal_delay" env:"REMOVAL_DELAY"`
	AcceptSettle time.Duration `yaml:"accept_settle" env:"ACCEPT_SETTLE"`
}

// Telemetry configures OTLP trace export; an empty endpoint disables it
type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED"`
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		MaxAttempts: constants.MaxAttempts,
		Text: Text{
			Title:    constants.DefaultTitle,
			Subtitle: constants.DefaultSubtitle,
			Final:    constants.DefaultFinal,
		},
		Volume: Volume{
			Heartbeat: constants.HeartbeatVolume,
			Sad:       constants.SadVolume,
			Happy:     constants.HappyVolume,
		},
		Timing: Timing{
			Damage:       constants.DamageDuration,
			Shake:        constants.ShakeDuration,
			DestroyDelay: constants.DestroyDelay,
			RemovalDelay: constants.RemovalDelay,
			AcceptSettle: constants.AcceptSettle,
		},
		Telemetry: Telemetry{
			ServiceName: "yes-or-no",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		if path == "" {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// ParseEnv overlays YES_OR_NO_* environment variables onto target
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyDefaults restores copy blanked out by the file
func applyDefaults(cfg *Config) {
	if cfg.Text.Title == "" {
		cfg.Text.Title = constants.DefaultTitle
	}
	if cfg.Text.Subtitle == "" {
		cfg.Text.Subtitle = constants.DefaultSubtitle
	}
	if cfg.Text.Final == "" {
		cfg.Text.Final = constants.DefaultFinal
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "yes-or-no"
	}
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c.MaxAttempts < 1 {
		return ErrInvalidAttempts
	}
	for name, v := range map[string]float64{
		"heartbeat": c.Volume.Heartbeat,
		"sad":       c.Volume.Sad,
		"happy":     c.Volume.Happy,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %.2f: %w", name, v, ErrInvalidVolume)
		}
	}
	for name, d := range map[string]time.Duration{
		"damage":        c.Timing.Damage,
		"shake":         c.Timing.Shake,
		"destroy_delay": c.Timing.DestroyDelay,
		"removal_delay": c.Timing.RemovalDelay,
		"accept_settle": c.Timing.AcceptSettle,
	} {
		if d <= 0 {
			return fmt.Errorf("%s %v: %w", name, d, ErrInvalidTiming)
		}
	}
	return nil
}

// ControllerConfig converts to the controller's tuning
func (c *Config) ControllerConfig() game.Config {
	gc := game.DefaultConfig()
	gc.MaxAttempts = c.MaxAttempts
	gc.DamageDuration = c.Timing.Damage
	gc.ShakeDuration = c.Timing.Shake
	gc.DestroyDelay = c.Timing.DestroyDelay
	gc.RemovalDelay = c.Timing.RemovalDelay
	gc.AcceptSettle = c.Timing.AcceptSettle
	gc.Volumes = game.Volumes{
		Heartbeat: c.Volume.Heartbeat,
		Sad:       c.Volume.Sad,
		Happy:     c.Volume.Happy,
	}
	return gc
}
