package material

import (
	"math/rand"
	"testing"

	"github.com/akobel/weekend-tracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.4, 0.2)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Iteration %d: lambertian must always scatter", i)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Iteration %d: attenuation should equal albedo, got %v", i, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Iteration %d: scattered ray should originate at the hit point", i)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	// A 2D sample of (1, anything) makes the unit vector sampler return
	// (0, 0, -1), which exactly cancels a +z normal
	sampler := newStubSampler(1.0, 0.0)

	rayIn := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian must scatter even for a degenerate direction")
	}

	if !scatter.Scattered.Direction.Equals(hit.Normal) {
		t.Errorf("Expected fallback to normal %v, got %v", hit.Normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_ScatterStaysAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	rayIn := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewVec3(0, 1, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	for i := 0; i < 1000; i++ {
		scatter, _ := lambertian.Scatter(rayIn, hit, sampler)
		// normal + unit vector can graze the surface but never point into it
		if scatter.Scattered.Direction.Dot(hit.Normal) < -1e-9 {
			t.Fatalf("Iteration %d: scatter direction %v points into the surface", i, scatter.Scattered.Direction)
		}
	}
}
