package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// loadConfig resolves the configuration: file, then env, then flags that
// were set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	return cfg, cfg.Validate()
}

// gameOptions converts the game section of the config.
func gameOptions(cfg config.Config) t2048.Options {
	return t2048.Options{
		WinTile:              cfg.Game.WinTile,
		SpawnFourProbability: cfg.Game.SpawnFourProbability,
		ResetDelay:           cfg.Game.ResetDelay,
	}
}

// gameFactory builds a fresh game with the configured rules.
func gameFactory(cfg config.Config) tui.GameFactory {
	opts := gameOptions(cfg)
	return func() tui.Game { return t2048.New(opts) }
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. A failure is logged and the game runs
// without persistence.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.DBPath(), "error", err)
		return nil
	}
	return store
}

// localLogger logs to the rotating log file. If the file cannot be opened,
// logs are discarded so the TUI output stays clean.
func localLogger(cfg config.Config) (*log.Logger, func()) {
	logger, closer, err := tui.NewFileLogger(cfg.LogFile(), tui.ParseLevel(cfg.Log.Level))
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return logger, func() { closer.Close() }
}

// localOptions bundles everything a local TUI session needs. The caller must
// call the returned cleanup function.
func localOptions(cfg config.Config) (tui.Options, func()) {
	logger, closeLog := localLogger(cfg)
	store := openStore(cfg, logger)

	opts := tui.Options{
		Store:   store,
		Logger:  logger,
		Runtime: runtimeConfig(cfg),
		Session: tui.Session{Player: currentUser()},
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return opts, cleanup
}

// currentUser names the local player for the score table.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return os.Getenv("USERNAME")
}
