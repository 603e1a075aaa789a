package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 straight away.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game
  P                - Pause
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

After a win or a loss the result stays on screen for a few seconds
(game.reset_delay) and a new game starts.

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, cleanup := localOptions(cfg)
	defer cleanup()

	return tui.Run(gameFactory(cfg)(), opts)
}
