package autoplay

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestListBuiltins(t *testing.T) {
	names := make([]string, 0)
	for _, info := range List() {
		names = append(names, info.Name)
		if info.Description == "" {
			t.Errorf("policy %q has no description", info.Name)
		}
	}

	want := []string{PolicyCorner, PolicyGreedy, PolicyRandom}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", names, want)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("minimax", rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for unknown policy")
	}
	if Exists("minimax") {
		t.Error("Exists should be false for unknown policy")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(PolicyRandom, "again", func(*rand.Rand) Policy { return greedyPolicy{} })
}

func TestPoliciesOnlyChooseLegalMoves(t *testing.T) {
	// Only left and up change this board.
	b := engine.Board{
		{0, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
		{8, 16, 32, 64},
	}
	legal := map[engine.Direction]bool{}
	for _, d := range legalMoves(b) {
		legal[d] = true
	}

	for _, info := range List() {
		t.Run(info.Name, func(t *testing.T) {
			p, err := Create(info.Name, rand.New(rand.NewSource(7)))
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 50; i++ {
				d, ok := p.Choose(b)
				if !ok || !legal[d] {
					t.Fatalf("Choose() = %s, %v; not a legal move", d, ok)
				}
			}
		})
	}
}

func TestPoliciesStuckBoard(t *testing.T) {
	b := engine.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, info := range List() {
		p, _ := Create(info.Name, rand.New(rand.NewSource(1)))
		if _, ok := p.Choose(b); ok {
			t.Errorf("%s: Choose on a stuck board should report !ok", info.Name)
		}
	}
}

func TestGreedyPrefersLargestGain(t *testing.T) {
	// Left/right merge the 8s in row 0, up/down merge only the 2s.
	b := engine.Board{
		{8, 8, 0, 2},
		{0, 0, 0, 2},
	}

	d, ok := greedyPolicy{}.Choose(b)
	if !ok {
		t.Fatal("expected a move")
	}
	if d != engine.Left && d != engine.Right {
		t.Errorf("greedy chose %s, want left or right", d)
	}
}

func TestCornerPreference(t *testing.T) {
	b := engine.Board{
		{2, 0, 0, 0},
	}
	d, _ := cornerPolicy{}.Choose(b)
	if d != engine.Down {
		t.Errorf("corner chose %s, want down", d)
	}

	// Down is blocked once everything sits on the bottom row.
	b = engine.Board{
		{},
		{},
		{},
		{0, 2, 0, 0},
	}
	d, _ = cornerPolicy{}.Choose(b)
	if d != engine.Left {
		t.Errorf("corner chose %s, want left", d)
	}
}

func TestRunPlaysToTerminal(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Games = 3
	cfg.Verbose = false

	results, err := Run(context.Background(), &buf, rand.New(rand.NewSource(42)), cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if !r.Outcome.Terminal() {
			t.Errorf("game %d ended with %s", i, r.Outcome)
		}
		if r.Moves == 0 || r.MaxTile < 4 {
			t.Errorf("game %d looks unplayed: %+v", i, r)
		}
	}

	out := buf.String()
	for _, want := range []string{"Game 1:", "Game 3:", "=== Summary ===", "Games: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Games = 2
	cfg.Verbose = false

	var a, b bytes.Buffer
	ra, _ := Run(context.Background(), &a, rand.New(rand.NewSource(9)), cfg)
	rb, _ := Run(context.Background(), &b, rand.New(rand.NewSource(9)), cfg)

	if len(ra) != len(rb) {
		t.Fatalf("result counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("game %d differs: %+v vs %+v", i, ra[i], rb[i])
		}
	}
	if a.String() != b.String() {
		t.Error("same seed should print the same output")
	}
}

func TestRunVerbosePrintsBoards(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Policy = PolicyCorner

	if _, err := Run(context.Background(), &buf, rand.New(rand.NewSource(3)), cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Policy: corner") || !strings.Contains(out, "Move: down") {
		t.Errorf("verbose output missing header or moves:\n%s", out[:min(len(out), 400)])
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := Run(ctx, &buf, rand.New(rand.NewSource(1)), DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunUnknownPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = "nope"
	if _, err := Run(context.Background(), &bytes.Buffer{}, rand.New(rand.NewSource(1)), cfg); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Result{
		{Score: 100, MaxTile: 64, Outcome: engine.Loss},
		{Score: 300, MaxTile: 2048, Outcome: engine.Win},
	})

	if s.Games != 2 || s.Wins != 1 || s.BestScore != 300 || s.BestTile != 2048 || s.AvgScore != 200 {
		t.Errorf("Summarize() = %+v", s)
	}
	if (Summarize(nil) != Summary{}) {
		t.Error("empty summary should be zero")
	}
}
