package renderer

import (
	"time"

	"github.com/akobel/weekend-tracer/pkg/core"
)

// PixelStats accumulates radiance samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // Linear RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Tiles        int           // Number of tiles rendered
	Workers      int           // Number of parallel workers used
	Elapsed      time.Duration // Wall-clock render time
}
