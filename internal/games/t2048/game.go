// Package t2048 runs a 2048 session on top of the engine: it turns input
// frames into moves, shows the win/loss banner for a fixed time, resets the
// board afterwards and draws everything into a core.Screen.
package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

// ID is the game identifier used for score storage.
const ID = "2048"

// Options tunes the rules of a session.
type Options struct {
	WinTile              int           // tile that ends the game with a win
	SpawnFourProbability float64       // chance a new tile is a 4
	ResetDelay           time.Duration // how long the end banner stays up
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		WinTile:              engine.DefaultWinTile,
		SpawnFourProbability: engine.DefaultSpawnFourProbability,
		ResetDelay:           3 * time.Second,
	}
}

// Game implements a single-player 2048 session.
type Game struct {
	opts    Options
	spawner *engine.Spawner
	tick    uint64

	state    engine.State
	lastStep engine.Step
	outcome  engine.Outcome
	best     int
	played   int // games started since Reset

	tickRate    int
	bannerTicks int // ticks left before the automatic reset

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game with the given rules.
func New(opts Options) *Game {
	if opts.WinTile == 0 {
		opts.WinTile = engine.DefaultWinTile
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset seeds the random source and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.spawner = engine.NewSpawner(rand.NewSource(cfg.Seed), g.opts.SpawnFourProbability)
	g.tick = 0
	g.played = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.newGame()
}

// newGame clears the board and score. The spawner keeps its stream so a
// seeded run stays reproducible across automatic resets.
func (g *Game) newGame() {
	g.state = engine.NewState(g.spawner)
	g.lastStep = engine.Step{}
	g.outcome = engine.Continue
	g.bannerTicks = 0
	g.played++
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// SetBest seeds the best score shown in the header, usually from storage.
func (g *Game) SetBest(score int) {
	if score > g.best {
		g.best = score
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.paused = false
		g.newGame()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if in.Has(core.ActionPause) && !g.outcome.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.outcome.Terminal() {
		g.bannerTicks--
		if g.bannerTicks <= 0 {
			g.newGame()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in.FirstDirection())
	if !ok {
		return core.StepResult{State: g.State()}
	}

	return g.move(dir)
}

// move applies one direction and arms the banner on a terminal outcome.
func (g *Game) move(dir engine.Direction) core.StepResult {
	g.state, g.lastStep = engine.Transition(g.state, dir, g.spawner, g.opts.WinTile)
	if g.state.Score > g.best {
		g.best = g.state.Score
	}

	if !g.lastStep.Outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.outcome = g.lastStep.Outcome
	g.bannerTicks = g.bannerDuration()
	return core.StepResult{State: g.State(), Finished: true}
}

// bannerDuration converts the reset delay to ticks, at least one.
func (g *Game) bannerDuration() int {
	ticks := int(g.opts.ResetDelay * time.Duration(g.tickRate) / time.Second)
	return core.Max(ticks, 1)
}

func directionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return engine.Left, true
	case core.ActionRight:
		return engine.Right, true
	case core.ActionUp:
		return engine.Up, true
	case core.ActionDown:
		return engine.Down, true
	default:
		return 0, false
	}
}

// Board returns the current board.
func (g *Game) Board() engine.Board {
	return g.state.Board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.state.Score,
		MaxTile:  g.state.Board.MaxTile(),
		Moves:    g.state.Moves,
		GameOver: g.outcome.Terminal(),
		Paused:   g.paused || g.tooSmall,
	}
	if st.GameOver {
		st.Result = g.outcome.String()
	}
	return st
}
