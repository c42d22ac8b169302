package core

import (
	"math"
	"testing"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{"start", 0.0, 0.0},
		{"end", 1.0, 1.0},
		{"midpoint", 0.5, 0.875},
		{"clamped below", -0.5, 0.0},
		{"clamped above", 1.5, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := EaseOutCubic(tc.t)
			if math.Abs(result-tc.expected) > 1e-9 {
				t.Errorf("EaseOutCubic(%f) = %f, expected %f", tc.t, result, tc.expected)
			}
		})
	}
}

func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		cur := EaseOutCubic(float64(i) / 100)
		if cur < prev {
			t.Fatalf("easing not monotonic at t=%f: %f < %f", float64(i)/100, cur, prev)
		}
		prev = cur
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-1, 0.5, 10}

	sum := a.Add(b)
	if sum != (Vec3{0, 2.5, 13}) {
		t.Errorf("Add() = %+v", sum)
	}

	scaled := a.Mul(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Mul() = %+v", scaled)
	}

	if Uniform(0.5) != (Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Uniform() = %+v", Uniform(0.5))
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
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
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(1.5) != 1.5 {
		t.Error("AbsF(1.5) should be 1.5")
	}
	if AbsF(-1.5) != 1.5 {
		t.Error("AbsF(-1.5) should be 1.5")
	}
	if AbsF(0) != 0 {
		t.Error("AbsF(0) should be 0")
	}
}
