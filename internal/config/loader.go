package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. T2048_GAME_WIN_TILE.
const EnvPrefix = "T2048_"

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Files only need to set the fields they change.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, ApplyEnv(&cfg)
	}

	if loaded, ok := loadFile(userConfigPath(), cfg); ok {
		return loaded, ApplyEnv(&loaded)
	}
	if loaded, ok := loadFile(filepath.Join("configs", "t2048.yaml"), cfg); ok {
		return loaded, ApplyEnv(&loaded)
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default()
	}
	return cfg, ApplyEnv(&cfg)
}

// loadFile decodes path over base. Missing or broken files are skipped.
func loadFile(path string, base Config) (Config, bool) {
	if path == "" {
		return base, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// ApplyEnv overrides cfg with any T2048_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}
