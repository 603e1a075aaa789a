package autoplay

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Built-in policy names.
const (
	PolicyRandom = "random"
	PolicyGreedy = "greedy"
	PolicyCorner = "corner"
)

func init() {
	Register(PolicyRandom, "uniform choice among moves that change the board",
		func(rng *rand.Rand) Policy { return &randomPolicy{rng: rng} })
	Register(PolicyGreedy, "move with the largest immediate merge gain",
		func(*rand.Rand) Policy { return greedyPolicy{} })
	Register(PolicyCorner, "keep the largest tiles in the bottom-left corner",
		func(*rand.Rand) Policy { return cornerPolicy{} })
}

// legalMoves returns the directions that change b, in engine order.
func legalMoves(b engine.Board) []engine.Direction {
	moves := make([]engine.Direction, 0, len(engine.Directions))
	for _, d := range engine.Directions {
		if engine.CanSlide(b, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

type randomPolicy struct {
	rng *rand.Rand
}

func (p *randomPolicy) Name() string { return PolicyRandom }

func (p *randomPolicy) Choose(b engine.Board) (engine.Direction, bool) {
	moves := legalMoves(b)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[p.rng.Intn(len(moves))], true
}

// greedyPolicy maximises the score gained by this move. Ties go to the move
// that leaves more empty cells, then to engine order.
type greedyPolicy struct{}

func (greedyPolicy) Name() string { return PolicyGreedy }

func (greedyPolicy) Choose(b engine.Board) (engine.Direction, bool) {
	var (
		best      engine.Direction
		bestGain  = -1
		bestEmpty = -1
	)
	for _, d := range legalMoves(b) {
		next, gain := engine.Slide(b, d)
		empty := len(next.EmptyCells())
		if gain > bestGain || (gain == bestGain && empty > bestEmpty) {
			best, bestGain, bestEmpty = d, gain, empty
		}
	}
	return best, bestGain >= 0
}

// cornerPreference is tried in order; up is the move of last resort.
var cornerPreference = [...]engine.Direction{engine.Down, engine.Left, engine.Right, engine.Up}

type cornerPolicy struct{}

func (cornerPolicy) Name() string { return PolicyCorner }

func (cornerPolicy) Choose(b engine.Board) (engine.Direction, bool) {
	for _, d := range cornerPreference {
		if engine.CanSlide(b, d) {
			return d, true
		}
	}
	return 0, false
}
