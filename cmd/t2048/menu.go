package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Esc or B during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, cleanup := localOptions(cfg)
	defer cleanup()

	return tui.RunSession(gameFactory(cfg), opts)
}
