package engine

import (
	"math/rand"
	"testing"
)

func TestSlideLeftRows(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		gained   int
	}{
		{"simple merge", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4},
		{"merge result not merged again", [Size]int{2, 2, 4, 0}, [Size]int{4, 4, 0, 0}, 4},
		{"merge with trailing tile", [Size]int{2, 2, 2, 0}, [Size]int{4, 2, 0, 0}, 4},
		{"double merge", [Size]int{2, 2, 2, 2}, [Size]int{4, 4, 0, 0}, 8},
		{"chain does not cascade", [Size]int{4, 4, 4, 4}, [Size]int{8, 8, 0, 0}, 16},
		{"no merge possible", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0},
		{"slide with gap", [Size]int{0, 0, 2, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [Size]int{2, 0, 0, 2}, [Size]int{4, 0, 0, 0}, 4},
		{"two different pairs", [Size]int{2, 2, 4, 4}, [Size]int{4, 8, 0, 0}, 12},
		{"single tile", [Size]int{0, 4, 0, 0}, [Size]int{4, 0, 0, 0}, 0},
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained := Slide(Board{tt.input}, Left)
			if got[0] != tt.expected {
				t.Errorf("Slide(%v, left) = %v, want %v", tt.input, got[0], tt.expected)
			}
			if gained != tt.gained {
				t.Errorf("Slide(%v, left) gained = %d, want %d", tt.input, gained, tt.gained)
			}
		})
	}
}

func TestSlideDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		input    Board
		expected Board
		gained   int
	}{
		{
			name: "left",
			dir:  Left,
			input: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "right",
			dir:  Right,
			input: Board{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			gained: 20,
		},
		{
			name: "right merges from the right edge",
			dir:  Right,
			input: Board{
				{2, 2, 2, 0},
			},
			expected: Board{
				{0, 0, 2, 4},
			},
			gained: 4,
		},
		{
			name: "up",
			dir:  Up,
			input: Board{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: Board{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			gained: 20,
		},
		{
			name: "down",
			dir:  Down,
			input: Board{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			gained: 20,
		},
		{
			name: "down merges from the bottom edge",
			dir:  Down,
			input: Board{
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{2, 0, 0, 0},
				{0, 0, 0, 0},
			},
			expected: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
			},
			gained: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained := Slide(tt.input, tt.dir)
			if got != tt.expected {
				t.Errorf("Slide(%s):\n%v\nwant\n%v", tt.dir, got, tt.expected)
			}
			if gained != tt.gained {
				t.Errorf("Slide(%s) gained = %d, want %d", tt.dir, gained, tt.gained)
			}
		})
	}
}

func TestSlideRotationSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		b := randomBoard(rng)

		up, upGain := Slide(b, Up)
		left, leftGain := Slide(Transpose(b), Left)
		if up != Transpose(left) || upGain != leftGain {
			t.Fatalf("up differs from transpose-left-transpose for\n%v", b)
		}

		right, rightGain := Slide(b, Right)
		left, leftGain = Slide(Reverse(b), Left)
		if right != Reverse(left) || rightGain != leftGain {
			t.Fatalf("right differs from reverse-left-reverse for\n%v", b)
		}

		down, downGain := Slide(b, Down)
		up, upGain = Slide(Transpose(Reverse(Transpose(b))), Up)
		if down != Transpose(Reverse(Transpose(up))) || downGain != upGain {
			t.Fatalf("down differs from flipped up for\n%v", b)
		}
	}
}

func TestSlideUnknownDirection(t *testing.T) {
	b := Board{{2, 0, 2, 0}}
	got, gained := Slide(b, Direction(42))
	if got != b || gained != 0 {
		t.Errorf("unknown direction should leave the board alone, got\n%v", got)
	}
}

func TestCanSlide(t *testing.T) {
	b := Board{
		{4, 2, 0, 0},
	}

	if CanSlide(b, Left) {
		t.Error("left-aligned row should not slide left")
	}
	if !CanSlide(b, Right) {
		t.Error("row should slide right")
	}
	if !CanSlide(b, Down) {
		t.Error("row should slide down")
	}
	if CanSlide(b, Up) {
		t.Error("top row should not slide up")
	}
}
