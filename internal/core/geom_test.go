package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 2)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, want 13", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, want 6", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy int
		w, h   int
		want   Rect
	}{
		{"even size", 10, 5, 4, 2, Rect{X: 8, Y: 4, W: 4, H: 2}},
		{"odd size", 10, 5, 5, 3, Rect{X: 8, Y: 4, W: 5, H: 3}},
		{"at origin", 0, 0, 2, 2, Rect{X: -1, Y: -1, W: 2, H: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenteredRect(tt.cx, tt.cy, tt.w, tt.h); got != tt.want {
				t.Errorf("CenteredRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 8) != 2 || Min(8, 2) != 2 {
		t.Error("Min returned the wrong value")
	}
	if Max(2, 8) != 8 || Max(8, 2) != 8 || Max(-1, -1) != -1 {
		t.Error("Max returned the wrong value")
	}
}
