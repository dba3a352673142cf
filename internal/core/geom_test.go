package core

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point{X: 20, Y: 13}
	d := Point{X: 1, Y: 0}

	got := p.Add(d)
	if got != (Point{X: 21, Y: 13}) {
		t.Errorf("Add() = %+v, expected {21 13}", got)
	}

	// Negative directions work the same way
	got = p.Add(Point{X: 0, Y: -1})
	if got != (Point{X: 20, Y: 12}) {
		t.Errorf("Add() = %+v, expected {20 12}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(14, 11, 11, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 18, 12, true},
		{"top-left corner", 14, 11, true},
		{"right edge (exclusive)", 25, 12, false},
		{"bottom edge (exclusive)", 18, 14, false},
		{"last cell", 24, 13, true},
		{"left of region", 13, 12, false},
		{"above region", 18, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 || Max(5, 5) != 5 {
		t.Error("Max is wrong")
	}
}
