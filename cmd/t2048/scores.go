package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall stats.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --db ./scores.db
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(t2048.ID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(t2048.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-6s  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.Outcome, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(t2048.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Wins: %d  Best: %d  Average: %.0f  Best tile: %d\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.BestTile)
	return nil
}
