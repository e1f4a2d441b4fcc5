package vmath

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{2, 3}, true},
		{"inside", Point{4.5, 4}, true},
		{"right edge exclusive", Point{6, 4}, false},
		{"bottom edge exclusive", Point{3, 5}, false},
		{"left of rect", Point{1.9, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 4, W: 8, H: 2}.Center()
	if c.X != 14 || c.Y != 5 {
		t.Errorf("Center = %v, want {14 5}", c)
	}
}

func TestClampInvertedRange(t *testing.T) {
	// Degenerate region: lower bound must win
	if got := Clamp(5, 2, -1); got != 2 {
		t.Errorf("Clamp(5, 2, -1) = %v, want 2", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}
}

func TestEaseOutCubicBounds(t *testing.T) {
	if EaseOutCubic(0) != 0 {
		t.Error("EaseOutCubic(0) should be 0")
	}
	if EaseOutCubic(1) != 1 {
		t.Error("EaseOutCubic(1) should be 1")
	}
	if EaseOutCubic(2) != 1 {
		t.Error("EaseOutCubic should clamp above 1")
	}
	if EaseOutCubic(0.5) <= 0.5 {
		t.Error("EaseOutCubic should be ahead of linear at midpoint")
	}
}

func TestPointRound(t *testing.T) {
	x, y := Point{X: 2.5, Y: 3.49}.Round()
	if x != 3 || y != 3 {
		t.Errorf("Round = (%d, %d), want (3, 3)", x, y)
	}
}
