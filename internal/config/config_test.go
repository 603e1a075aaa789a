package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so a real user config cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
game:
  win_tile: 512
  reset_delay: 1500ms
runtime:
  tick_rate: 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Game.WinTile != 512 {
		t.Errorf("WinTile = %d, want 512", cfg.Game.WinTile)
	}
	if cfg.Game.ResetDelay != 1500*time.Millisecond {
		t.Errorf("ResetDelay = %s, want 1.5s", cfg.Game.ResetDelay)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.Runtime.TickRate)
	}
	// Unset fields keep their defaults.
	if cfg.Game.SpawnFourProbability != 0.1 {
		t.Errorf("SpawnFourProbability = %g, want 0.1", cfg.Game.SpawnFourProbability)
	}
	if cfg.SSH.Address != ":23234" {
		t.Errorf("SSH.Address = %q, want :23234", cfg.SSH.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "game: [not, a, map")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game:\n  win_tile: 4096\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.WinTile != 4096 {
		t.Errorf("WinTile = %d, want 4096 from user config", cfg.Game.WinTile)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_GAME_WIN_TILE", "1024")
	t.Setenv("T2048_GAME_SPAWN_FOUR_PROBABILITY", "0.25")
	t.Setenv("T2048_STORAGE_DB_PATH", "/tmp/scores.db")
	t.Setenv("T2048_SSH_IDLE_TIMEOUT", "5m")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Game.WinTile != 1024 {
		t.Errorf("WinTile = %d, want 1024", cfg.Game.WinTile)
	}
	if cfg.Game.SpawnFourProbability != 0.25 {
		t.Errorf("SpawnFourProbability = %g, want 0.25", cfg.Game.SpawnFourProbability)
	}
	if cfg.DBPath() != "/tmp/scores.db" {
		t.Errorf("DBPath() = %q", cfg.DBPath())
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %s, want 5m", cfg.SSH.IdleTimeout)
	}
	// Untouched fields survive.
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Runtime.TickRate)
	}
}

func TestEnvOverridesBadValue(t *testing.T) {
	isolate(t)
	t.Setenv("T2048_RUNTIME_TICK_RATE", "fast")

	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric tick rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default", func(*Config) {}, ""},
		{"win tile 4", func(c *Config) { c.Game.WinTile = 4 }, ""},
		{"win tile 2", func(c *Config) { c.Game.WinTile = 2 }, "win_tile"},
		{"win tile not power of two", func(c *Config) { c.Game.WinTile = 1000 }, "win_tile"},
		{"probability zero", func(c *Config) { c.Game.SpawnFourProbability = 0 }, ""},
		{"probability one", func(c *Config) { c.Game.SpawnFourProbability = 1 }, ""},
		{"probability negative", func(c *Config) { c.Game.SpawnFourProbability = -0.1 }, "spawn_four_probability"},
		{"probability above one", func(c *Config) { c.Game.SpawnFourProbability = 1.5 }, "spawn_four_probability"},
		{"zero reset delay", func(c *Config) { c.Game.ResetDelay = 0 }, "reset_delay"},
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, "tick_rate"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Game.WinTile = 3
	cfg.Runtime.TickRate = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"win_tile", "tick_rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestDefaultPaths(t *testing.T) {
	home := isolate(t)
	cfg := Default()

	if want := filepath.Join(home, ".t2048", "scores.db"); cfg.DBPath() != want {
		t.Errorf("DBPath() = %q, want %q", cfg.DBPath(), want)
	}
	if want := filepath.Join(home, ".t2048", "t2048.log"); cfg.LogFile() != want {
		t.Errorf("LogFile() = %q, want %q", cfg.LogFile(), want)
	}

	cfg.Log.File = "/var/log/t2048.log"
	if cfg.LogFile() != "/var/log/t2048.log" {
		t.Errorf("LogFile() = %q", cfg.LogFile())
	}
}
