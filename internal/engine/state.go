package engine

// DefaultWinTile is the tile value that ends the game with a win.
const DefaultWinTile = 2048

// Outcome is the result of evaluating a board after a move.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Loss
)

// String returns the outcome name used in logs and the score store.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Win || o == Loss
}

// State is everything a game needs between moves.
type State struct {
	Board Board
	Score int
	Moves int // moves that changed the board
}

// NewState returns a fresh game: an empty board with two 2-tiles on
// distinct random cells and a zero score.
func NewState(sp *Spawner) State {
	var st State
	sp.SpawnValue(&st.Board, 2)
	sp.SpawnValue(&st.Board, 2)
	return st
}

// Evaluate checks terminal conditions in order: win tile present, any empty
// cell, any adjacent equal pair, otherwise loss.
func Evaluate(b Board, winTile int) Outcome {
	if b.Contains(winTile) {
		return Win
	}
	if b.HasEmpty() {
		return Continue
	}
	if b.HasAdjacentPair() {
		return Continue
	}
	return Loss
}

// Step describes what a single Transition did.
type Step struct {
	Gained  int  // score added by merges
	Changed bool // whether the board moved
	Spawned bool // whether a tile was added
	Spawn   Cell // where the tile went, valid if Spawned
	Outcome Outcome
}

// Transition applies one move to st and returns the next state.
// When the board changes, exactly one tile is spawned. The outcome is
// evaluated after spawning, on every call.
func Transition(st State, dir Direction, sp *Spawner, winTile int) (State, Step) {
	next, gained := Slide(st.Board, dir)

	step := Step{
		Gained:  gained,
		Changed: next != st.Board,
	}

	st.Board = next
	st.Score += gained

	if step.Changed {
		st.Moves++
		step.Spawned = sp.Spawn(&st.Board)
		if step.Spawned {
			step.Spawn = sp.LastSpawn()
		}
	}

	step.Outcome = Evaluate(st.Board, winTile)
	return st, step
}
