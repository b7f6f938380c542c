// Package scene builds renderable worlds with their camera and sampling
// configuration.
package scene

import (
	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/geometry"
	"github.com/akobel/weekend-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *geometry.World
	CameraConfig renderer.CameraConfig
	RenderConfig renderer.RenderConfig
	TopColor     core.Vec3 // Sky gradient at the zenith
	BottomColor  core.Vec3 // Sky gradient at the horizon
}

// skyBlue and skyWhite are the classic background gradient endpoints
var (
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
)
