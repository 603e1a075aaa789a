// Package engine implements the 2048 board transformations: compaction,
// merging, orientation adapters and the per-direction move pipelines.
// It has no UI dependencies; the platform calls Transition and renders
// whatever state comes back.
package engine

import (
	"fmt"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Board is a 4x4 grid of tile values. Zero means empty.
type Board [Size][Size]int

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// Stack slides the non-zero values of every row to the left edge,
// keeping their order. Trailing cells become zero.
func Stack(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		fill := 0
		for c := 0; c < Size; c++ {
			if b[r][c] != 0 {
				out[r][fill] = b[r][c]
				fill++
			}
		}
	}
	return out
}

// Combine merges adjacent equal tiles in every row, scanning left to right.
// The left tile doubles and the right one is cleared, so on a stacked board a
// tile takes part in at most one merge. Returns the board and the sum of the
// merged values.
func Combine(b Board) (Board, int) {
	gained := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-1; c++ {
			if b[r][c] != 0 && b[r][c] == b[r][c+1] {
				b[r][c] *= 2
				b[r][c+1] = 0
				gained += b[r][c]
			}
		}
	}
	return b, gained
}

// Reverse mirrors every row end to end.
func Reverse(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b[r][Size-1-c]
		}
	}
	return out
}

// Transpose swaps rows and columns.
func Transpose(b Board) Board {
	var out Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b[c][r]
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmpty reports whether at least one cell is empty.
func (b Board) HasEmpty() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair reports whether two horizontally or vertically
// adjacent cells hold the same value.
func (b Board) HasAdjacentPair() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b[r][c]
			if c < Size-1 && b[r][c+1] == v {
				return true
			}
			if r < Size-1 && b[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// Contains reports whether any cell equals v.
func (b Board) Contains(v int) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// String renders the board as right-aligned columns, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
				continue
			}
			fmt.Fprintf(&sb, "%5d", b[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
