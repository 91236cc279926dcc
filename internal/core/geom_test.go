package core

import (
	"math"
	"testing"
)

func TestRectTouches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separate horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"separate vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"shared vertical edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"shared horizontal edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"fractional gap", NewRect(0, 0, 10, 10), NewRect(10.01, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Touches(tc.b); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Touches(tc.a); got != tc.expected {
				t.Errorf("Touches() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if c := r.Center(); c != (Vec{X: 15, Y: 17.5}) {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}
}

func TestSquareAround(t *testing.T) {
	sq := SquareAround(Vec{X: 50, Y: 40}, 12)
	if sq != NewRect(38, 28, 24, 24) {
		t.Errorf("SquareAround() = %+v", sq)
	}
}

func TestVec(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(Vec{X: 1, Y: -1}).Scale(0.5); got != (Vec{X: 2, Y: 1.5}) {
		t.Errorf("Add/Scale = %+v", got)
	}
	if math.IsNaN(Vec{}.Len()) {
		t.Error("zero vector length should be 0")
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
