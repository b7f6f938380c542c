package material

import (
	"github.com/akobel/weekend-tracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces a scattered ray and attenuation for an incident ray,
	// or reports false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Created fresh per intersection query, never persisted.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always opposing the incident ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray struck the outside of the surface
	Material  Material  // Material of the hit object, shared across hits
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
