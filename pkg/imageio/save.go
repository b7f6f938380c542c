package imageio

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// Format identifies a supported output image format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPPM, FormatPNG, FormatBMP:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown image format %q (supported: ppm, png, bmp)", name)
	}
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	return "." + string(f)
}

// Save writes the image to path in the given format
func Save(path string, img image.Image, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	switch format {
	case FormatPPM:
		err = WritePPM(file, img)
	case FormatPNG:
		err = png.Encode(file, img)
	case FormatBMP:
		err = bmp.Encode(file, img)
	default:
		err = fmt.Errorf("unknown image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
