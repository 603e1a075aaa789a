package engine

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Left, Right, Up, Down}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// slideLeft is the shared pipeline every direction funnels into.
func slideLeft(b Board) (Board, int) {
	b = Stack(b)
	b, gained := Combine(b)
	return Stack(b), gained
}

// Slide moves and merges every tile in the given direction.
// Right, up and down reuse the left pipeline through Reverse and Transpose.
// An unknown direction returns the board untouched.
func Slide(b Board, dir Direction) (Board, int) {
	var gained int

	switch dir {
	case Left:
		b, gained = slideLeft(b)
	case Right:
		b, gained = slideLeft(Reverse(b))
		b = Reverse(b)
	case Up:
		b, gained = slideLeft(Transpose(b))
		b = Transpose(b)
	case Down:
		b, gained = slideLeft(Reverse(Transpose(b)))
		b = Transpose(Reverse(b))
	}

	return b, gained
}

// CanSlide reports whether moving in dir would change the board.
func CanSlide(b Board, dir Direction) bool {
	next, _ := Slide(b, dir)
	return next != b
}
