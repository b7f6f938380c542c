package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM writes an image in the plain-text PPM (P3) format: a three-line
// header (format tag, dimensions, max channel value) followed by one ASCII
// triple per pixel in row-major order.
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("writing PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; the PPM max value is 255
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("writing PPM pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
