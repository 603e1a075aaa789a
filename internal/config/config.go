// Package config loads t2048 settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game" envPrefix:"GAME_"`
	Runtime RuntimeConfig `yaml:"runtime" envPrefix:"RUNTIME_"`
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
	SSH     SSHConfig     `yaml:"ssh" envPrefix:"SSH_"`
}

// GameConfig holds the rules of a session.
type GameConfig struct {
	WinTile              int           `yaml:"win_tile" env:"WIN_TILE"`
	SpawnFourProbability float64       `yaml:"spawn_four_probability" env:"SPAWN_FOUR_PROBABILITY"`
	ResetDelay           time.Duration `yaml:"reset_delay" env:"RESET_DELAY"` // how long the end banner stays up
}

// RuntimeConfig controls the simulation loop.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate" env:"TICK_RATE"`
}

// StorageConfig points at the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"DB_PATH"`
}

// LogConfig configures the log sink.
type LogConfig struct {
	File  string `yaml:"file" env:"FILE"`
	Level string `yaml:"level" env:"LEVEL"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"ADDRESS"`
	HostKey     string        `yaml:"host_key" env:"HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			WinTile:              2048,
			SpawnFourProbability: 0.1,
			ResetDelay:           3 * time.Second,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/t2048_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var errs []error

	if c.Game.WinTile < 4 || c.Game.WinTile&(c.Game.WinTile-1) != 0 {
		errs = append(errs, fmt.Errorf("game.win_tile must be a power of two >= 4, got %d", c.Game.WinTile))
	}
	if p := c.Game.SpawnFourProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("game.spawn_four_probability must be in [0,1], got %g", p))
	}
	if c.Game.ResetDelay <= 0 {
		errs = append(errs, fmt.Errorf("game.reset_delay must be positive, got %s", c.Game.ResetDelay))
	}
	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DataDir returns ~/.t2048, or the working directory if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".t2048")
}

// DBPath returns the configured database path or the default under DataDir.
func (c Config) DBPath() string {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath
	}
	return filepath.Join(DataDir(), "scores.db")
}

// LogFile returns the configured log file or the default under DataDir.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(DataDir(), "t2048.log")
}
