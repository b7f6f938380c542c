// Package imageio converts accumulated linear radiance to displayable pixel
// values and writes rendered images in PPM, PNG and BMP formats.
package imageio

import (
	"image/color"

	"github.com/akobel/weekend-tracer/pkg/core"
)

// EncodeColor converts an accumulated linear RGB color plus its sample count
// to an 8-bit display color: average, gamma-correct (gamma 2.0), clamp to
// [0, 0.999] and scale to the 0-255 output range.
func EncodeColor(accum core.Vec3, samples int) color.RGBA {
	c := accum
	if samples > 0 {
		c = c.Multiply(1.0 / float64(samples))
	}

	c = c.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}
