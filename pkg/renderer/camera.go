package renderer

import (
	"fmt"
	"math"

	"github.com/akobel/weekend-tracer/pkg/core"
)

// CameraConfig holds camera parameters, set once before rendering
type CameraConfig struct {
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width over height
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	DefocusAngle  float64   // Variation angle of rays through each pixel, degrees
	FocusDistance float64   // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns sensible default camera values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          90.0,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 1.0,
	}
}

// MergeCameraConfig overlays non-zero override fields onto a base config
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if !override.LookFrom.Equals(core.Vec3{}) {
		merged.LookFrom = override.LookFrom
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		merged.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Validate rejects configurations the render loop cannot handle
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("camera: width must be positive, got %d", c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("camera: aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("camera: vfov must be in (0, 180) degrees, got %g", c.VFov)
	}
	if c.FocusDistance <= 0 {
		return fmt.Errorf("camera: focus distance must be positive, got %g", c.FocusDistance)
	}
	if c.DefocusAngle < 0 {
		return fmt.Errorf("camera: defocus angle must be non-negative, got %g", c.DefocusAngle)
	}
	if c.LookFrom.Subtract(c.LookAt).NearZero() {
		return fmt.Errorf("camera: look-from and look-at must differ")
	}
	if c.Up.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero() {
		return fmt.Errorf("camera: up vector is parallel to the view direction")
	}
	return nil
}

// Camera converts pixel coordinates into sampled rays. All derived fields
// are computed once and read-only for the duration of the render.
type Camera struct {
	config       CameraConfig
	height       int
	center       core.Vec3
	pixel00      core.Vec3 // World-space location of the upper-left pixel center
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera and precomputes its viewport geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Camera{config: config}

	c.height = int(float64(config.Width) / config.AspectRatio)
	if c.height < 1 {
		c.height = 1
	}

	c.center = config.LookFrom

	// Viewport dimensions from the vertical field of view at the focus plane
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(config.Width) / float64(c.height))

	// Orthonormal camera basis: w points backward, u right, v up
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	// Per-pixel delta vectors
	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(config.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.height))

	// Upper-left pixel center
	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	// Defocus disk basis vectors
	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the derived image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

// GetRay generates a sampled ray for the pixel at (i, j), jittered within
// the pixel footprint and originating from the defocus disk when a defocus
// angle is configured
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(sampler.Get2D()))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler.Get2D())
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// pixelSampleSquare returns a random offset within the pixel's footprint
func (c *Camera) pixelSampleSquare(sample core.Vec2) core.Vec3 {
	px := sample.X - 0.5
	py := sample.Y - 0.5
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}

// defocusDiskSample returns a random origin on the defocus disk
func (c *Camera) defocusDiskSample(sample core.Vec2) core.Vec3 {
	p := core.SamplePointInUnitDisk(sample)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
