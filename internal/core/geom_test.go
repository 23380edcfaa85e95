package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 25, false},
		{"left of rect", 5, 15, false},
		{"above rect", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("Abs() misbehaves")
	}
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min() misbehaves")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max() misbehaves")
	}
}
