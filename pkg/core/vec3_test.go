package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, -3, 9)) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); !got.Equals(NewVec3(-3, 7, -3)) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); !got.Equals(NewVec3(4, -10, 18)) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y is z", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z is x", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x is y", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"parallel vectors", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// Zero vector stays zero rather than producing NaNs
	if got := NewVec3(0, 0, 0).Normalize(); !got.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero vector", NewVec3(0, 0, 0), true},
		{"tiny vector", NewVec3(1e-9, -1e-9, 1e-9), true},
		{"small but not tiny", NewVec3(1e-7, 0, 0), false},
		{"unit vector", NewVec3(0, 1, 0), false},
		{"one tiny component", NewVec3(1e-9, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v): expected %t, got %t", tt.v, tt.expected, got)
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !v.Equals(NewVec3(0, 0.5, 1)) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1.0, 0.0).GammaCorrect(2.0)

	tolerance := 1e-12
	if math.Abs(v.X-0.5) > tolerance || math.Abs(v.Y-1.0) > tolerance || math.Abs(v.Z) > tolerance {
		t.Errorf("Expected (0.5,1,0), got %v", v)
	}
}
