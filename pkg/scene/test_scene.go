package scene

import (
	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/geometry"
	"github.com/akobel/weekend-tracer/pkg/material"
	"github.com/akobel/weekend-tracer/pkg/renderer"
)

// NewTestScene creates a minimal scene: a single gray unit sphere at the
// origin with the camera looking straight at it. Useful for smoke tests and
// quick sanity renders.
func NewTestScene() *Scene {
	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(
		core.NewVec3(0, 0, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			Width:         200,
			AspectRatio:   1.0,
			VFov:          60,
			LookFrom:      core.NewVec3(0, 0, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			DefocusAngle:  0,
			FocusDistance: 3.0,
		},
		RenderConfig: renderer.RenderConfig{
			SamplesPerPixel: 10,
			MaxDepth:        10,
			TileSize:        64,
			Seed:            42,
		},
		TopColor:    skyBlue,
		BottomColor: skyWhite,
	}
}
