// Package config provides YAML-based configuration loading for the game
// engine and the terminal front end.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Engine EngineConfig `yaml:"engine"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig defines how moves are computed.
type EngineConfig struct {
	ParallelLines bool `yaml:"parallel_lines"` // Collapse each line in its own goroutine
}

// SpawnConfig defines the tile spawn policy.
type SpawnConfig struct {
	NextBaseProbability float64 `yaml:"next_base_probability"` // 0.0 = always 2, 1.0 = always 4
}

// UIConfig defines front end behaviour.
type UIConfig struct {
	DefaultVariant string `yaml:"default_variant"`
	ShowAxisLock   bool   `yaml:"show_axis_lock"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the configuration for values the engine cannot use.
func (c T2048Config) Validate() error {
	if p := c.Spawn.NextBaseProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.next_base_probability %v outside [0,1]", ErrInvalidConfig, p)
	}
	if c.UI.DefaultVariant == "" {
		return fmt.Errorf("%w: ui.default_variant is empty", ErrInvalidConfig)
	}
	if _, ok := t2048.GetVariant(c.UI.DefaultVariant); !ok {
		return fmt.Errorf("%w: unknown ui.default_variant %q", ErrInvalidConfig, c.UI.DefaultVariant)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (c T2048Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Options converts the config into engine options for the given seed.
func (c T2048Config) Options(seed int64) t2048.Options {
	prob, alwaysBase := t2048.SpawnOptions(c.Spawn.NextBaseProbability)
	return t2048.Options{
		Seed:                seed,
		NextBaseProbability: prob,
		AlwaysBase:          alwaysBase,
		ParallelLines:       c.Engine.ParallelLines,
	}
}

// ApplyRuntime copies the engine and UI settings into a runtime config.
func (c T2048Config) ApplyRuntime(rc *core.RuntimeConfig) {
	rc.NextBaseProbability, rc.AlwaysBase = t2048.SpawnOptions(c.Spawn.NextBaseProbability)
	rc.ParallelLines = c.Engine.ParallelLines
	rc.ShowAxisLock = c.UI.ShowAxisLock
}
