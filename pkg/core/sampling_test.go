package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleUnitVector_Length(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := SampleUnitVector(sampler.Get2D())
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Sample %d: expected unit length, got %f for %v", i, v.Length(), v)
		}
	}
}

func TestSampleUnitVector_CoversBothHemispheres(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	up, down := 0, 0
	for i := 0; i < 1000; i++ {
		v := SampleUnitVector(sampler.Get2D())
		if v.Z > 0 {
			up++
		} else {
			down++
		}
	}

	// Uniform sampling should split roughly evenly; allow wide slack
	if up < 350 || down < 350 {
		t.Errorf("Expected roughly even split, got up=%d down=%d", up, down)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Sample %d: disk point should have z=0, got %v", i, p)
		}
		if p.Length() > 1.0+1e-9 {
			t.Fatalf("Sample %d: point outside unit disk: %v (r=%f)", i, p, p.Length())
		}
	}

	// Degenerate center sample maps to the origin
	if got := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); !got.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Expected origin for center sample, got %v", got)
	}
}

func TestSampleRange(t *testing.T) {
	tests := []struct {
		name     string
		sample   float64
		lo, hi   float64
		expected float64
	}{
		{"low end", 0.0, 2, 5, 2},
		{"midpoint", 0.5, 2, 5, 3.5},
		{"near high end", 1.0, 2, 5, 5},
		{"negative range", 0.5, -1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleRange(tt.sample, tt.lo, tt.hi); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		if v := sampler.Get1D(); v < 0 || v >= 1 {
			t.Fatalf("Get1D out of [0,1): %f", v)
		}
	}

	v2 := sampler.Get2D()
	if v2.X < 0 || v2.X >= 1 || v2.Y < 0 || v2.Y >= 1 {
		t.Errorf("Get2D out of [0,1): %v", v2)
	}
}
