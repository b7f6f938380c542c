package scene

import (
	"math/rand"

	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/geometry"
	"github.com/akobel/weekend-tracer/pkg/material"
	"github.com/akobel/weekend-tracer/pkg/renderer"
)

// NewCoverScene creates the classic randomized sphere field: a gray ground
// sphere, a grid of small spheres with randomized placement and materials,
// and three large showcase spheres. The seed makes the layout reproducible.
func NewCoverScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	world := geometry.NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Scatter small spheres across the grid, avoiding the big glass sphere
	for x := -5; x < 5; x++ {
		for z := -5; z < 5; z++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(
				float64(x)+0.9*random.Float64(),
				0.2,
				float64(z)+0.4*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 1, 0)).Length() <= 1 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.75:
				// Diffuse: component-wise product of two random colors
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := randomColorInRange(random, 0.5, 1.0)
				fuzz := core.SampleRange(random.Float64(), 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.2)
			}

			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	// The three big showcase spheres
	world.Add(
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.2))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.4, 0.7, 0.1), 0.0)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewDielectric(1.5)),
	)

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			Width:         1200,
			AspectRatio:   16.0 / 9.0,
			VFov:          20,
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			DefocusAngle:  1.0,
			FocusDistance: 10.0,
		},
		RenderConfig: renderer.RenderConfig{
			SamplesPerPixel: 100,
			MaxDepth:        25,
			TileSize:        64,
			Seed:            seed,
		},
		TopColor:    skyBlue,
		BottomColor: skyWhite,
	}
}

// randomColor returns a color with each channel uniform in [0, 1)
func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

// randomColorInRange returns a color with each channel uniform in [lo, hi)
func randomColorInRange(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		core.SampleRange(random.Float64(), lo, hi),
		core.SampleRange(random.Float64(), lo, hi),
		core.SampleRange(random.Float64(), lo, hi),
	)
}
