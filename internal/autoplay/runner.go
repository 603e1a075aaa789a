package autoplay

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Config controls a self-play run.
type Config struct {
	Policy               string
	Games                int
	Delay                time.Duration // pause between moves
	Verbose              bool          // print every board
	WinTile              int
	SpawnFourProbability float64
}

// DefaultConfig returns a single verbose game with the random policy.
func DefaultConfig() Config {
	return Config{
		Policy:               PolicyRandom,
		Games:                1,
		Verbose:              true,
		WinTile:              engine.DefaultWinTile,
		SpawnFourProbability: engine.DefaultSpawnFourProbability,
	}
}

// Result is the outcome of one finished game.
type Result struct {
	Score   int
	Moves   int
	MaxTile int
	Outcome engine.Outcome
}

// Summary aggregates a run.
type Summary struct {
	Games     int
	Wins      int
	BestScore int
	BestTile  int
	AvgScore  float64
}

// Summarize folds results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	total := 0
	for _, r := range results {
		total += r.Score
		if r.Outcome == engine.Win {
			s.Wins++
		}
		s.BestScore = max(s.BestScore, r.Score)
		s.BestTile = max(s.BestTile, r.MaxTile)
	}
	if s.Games > 0 {
		s.AvgScore = float64(total) / float64(s.Games)
	}
	return s
}

// Run plays cfg.Games games with the configured policy and writes progress to
// w. It stops early when ctx is cancelled and returns the finished games.
func Run(ctx context.Context, w io.Writer, rng *rand.Rand, cfg Config) ([]Result, error) {
	policy, err := Create(cfg.Policy, rng)
	if err != nil {
		return nil, err
	}
	if cfg.WinTile == 0 {
		cfg.WinTile = engine.DefaultWinTile
	}
	games := max(cfg.Games, 1)

	if cfg.Verbose {
		fmt.Fprintln(w, "=== 2048 autoplay ===")
		fmt.Fprintf(w, "Policy: %s, Games: %d\n\n", policy.Name(), games)
	}

	results := make([]Result, 0, games)
	for i := 0; i < games; i++ {
		spawner := engine.NewSpawner(rand.NewSource(rng.Int63()), cfg.SpawnFourProbability)
		res, err := playOne(ctx, w, policy, spawner, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		fmt.Fprintf(w, "Game %d: %s, score %d, moves %d, max tile %d\n",
			i+1, res.Outcome, res.Score, res.Moves, res.MaxTile)
	}

	s := Summarize(results)
	fmt.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "Games: %d, Wins: %d\n", s.Games, s.Wins)
	fmt.Fprintf(w, "Best score: %d, Average: %.1f\n", s.BestScore, s.AvgScore)
	fmt.Fprintf(w, "Best tile: %d\n", s.BestTile)

	return results, nil
}

func playOne(ctx context.Context, w io.Writer, policy Policy, spawner *engine.Spawner, cfg Config) (Result, error) {
	st := engine.NewState(spawner)
	outcome := engine.Evaluate(st.Board, cfg.WinTile)

	for !outcome.Terminal() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		dir, ok := policy.Choose(st.Board)
		if !ok {
			// Evaluate said a move exists; a policy that disagrees ends the game.
			outcome = engine.Loss
			break
		}

		if cfg.Verbose {
			fmt.Fprint(w, st.Board)
			fmt.Fprintf(w, "Score: %d, Moves: %d, Move: %s\n\n", st.Score, st.Moves, dir)
		}

		var step engine.Step
		st, step = engine.Transition(st, dir, spawner, cfg.WinTile)
		outcome = step.Outcome

		if cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}

	if cfg.Verbose {
		fmt.Fprint(w, st.Board)
	}

	return Result{
		Score:   st.Score,
		Moves:   st.Moves,
		MaxTile: st.Board.MaxTile(),
		Outcome: outcome,
	}, nil
}
