package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
)

var (
	flagPolicy string
	flagGames  int
	flagDelay  int
	flagQuiet  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a policy play 2048",
	Long: `Play headless games with a move policy and print the results.

Without --quiet every board is printed along with the chosen move.
Run 't2048 policies' to see the available policies.

Examples:
  t2048 autoplay
  t2048 autoplay --policy corner --delay 50
  t2048 autoplay --policy greedy --games 100 --quiet --seed 7`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagPolicy, "policy", autoplay.PolicyRandom, "Move policy")
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().IntVar(&flagDelay, "delay", 0, "Delay between moves (ms)")
	autoplayCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print per-game results and the summary")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	if !autoplay.Exists(flagPolicy) {
		return fmt.Errorf("unknown policy %q, run 't2048 policies' to list them", flagPolicy)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = autoplay.Run(ctx, cmd.OutOrStdout(), rng, autoplay.Config{
		Policy:               flagPolicy,
		Games:                flagGames,
		Delay:                time.Duration(flagDelay) * time.Millisecond,
		Verbose:              !flagQuiet,
		WinTile:              cfg.Game.WinTile,
		SpawnFourProbability: cfg.Game.SpawnFourProbability,
	})
	return err
}
