package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StateLoss        GameStateType = "loss"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Game        int // 1-based count of games since Reset
	Score       int
	Best        int
	Moves       int
	Board       engine.Board
	MaxTile     int
	BannerTicks int
	State       GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.outcome == engine.Win:
		state = StateWin
	case g.outcome == engine.Loss:
		state = StateLoss
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:        g.tick,
		Game:        g.played,
		Score:       g.state.Score,
		Best:        g.best,
		Moves:       g.state.Moves,
		Board:       g.state.Board,
		MaxTile:     g.state.Board.MaxTile(),
		BannerTicks: g.bannerTicks,
		State:       state,
	}
}
