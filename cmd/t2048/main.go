// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 menu               - Start menu: new game, high scores, quit
//	t2048 scores             - Show high scores and stats
//	t2048 serve              - Start SSH server for remote play
//	t2048 autoplay           - Let a policy play headless games
//	t2048 policies           - List autoplay policies
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--db <path>       - Scores database (default: ~/.t2048/scores.db)
//	--fps <rate>      - Tick rate (default: 60)
//	--seed <value>    - RNG seed for reproducible games
//	--log-file <path> - Log file for local play (default: ~/.t2048/t2048.log)
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal.

Slide the board with the arrow keys. Equal tiles merge and add to your
score. Reach 2048 to win; the game is lost when no move is left.

Available commands:
  play      - Play a game directly
  menu      - Start menu with high scores
  scores    - Print high scores
  serve     - Start SSH server for remote play
  autoplay  - Watch a policy play
  policies  - List autoplay policies

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 menu
  t2048 serve --ssh :2222
  t2048 autoplay --policy greedy --games 10 --quiet`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Path to log file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(policiesCmd)
}
