// Package integrator computes radiance estimates for camera rays.
package integrator

import (
	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/geometry"
)

// PathTracer implements a depth-bounded recursive path tracing integrator.
// Rays that miss the scene receive a vertical sky gradient between
// BottomColor and TopColor.
type PathTracer struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewPathTracer creates a path tracer with the given sky gradient colors
func NewPathTracer(topColor, bottomColor core.Vec3) *PathTracer {
	return &PathTracer{TopColor: topColor, BottomColor: bottomColor}
}

// NewDefaultPathTracer creates a path tracer with the classic white-to-blue sky
func NewDefaultPathTracer() *PathTracer {
	return NewPathTracer(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// RayColor returns the estimated radiance for a ray with the given remaining
// bounce budget
func (pt *PathTracer) RayColor(ray core.Ray, world *geometry.World, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.ShadowInterval())
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	// Attenuate whatever light arrives along the scattered ray
	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}

// backgroundGradient returns a sky color based on ray direction
func (pt *PathTracer) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the vertical component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
