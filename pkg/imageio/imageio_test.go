package imageio

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akobel/weekend-tracer/pkg/core"
)

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name     string
		accum    core.Vec3
		samples  int
		expected color.RGBA
	}{
		{
			name:     "white round-trips to channel maximum",
			accum:    core.NewVec3(1, 1, 1),
			samples:  1,
			expected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name:     "black stays zero",
			accum:    core.NewVec3(0, 0, 0),
			samples:  1,
			expected: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		},
		{
			name:     "accumulated samples are averaged",
			accum:    core.NewVec3(2, 2, 2),
			samples:  2,
			expected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name:     "quarter intensity gamma corrects to half",
			accum:    core.NewVec3(0.25, 0.25, 0.25),
			samples:  1,
			expected: color.RGBA{R: 128, G: 128, B: 128, A: 255},
		},
		{
			name:     "overbright clamps to maximum",
			accum:    core.NewVec3(5, 5, 5),
			samples:  1,
			expected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name:     "negative clamps to zero",
			accum:    core.NewVec3(-1, -1, -1),
			samples:  1,
			expected: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeColor(tt.accum, tt.samples))
		})
	}
}

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 128, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 64, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, img))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7, "three header lines plus one line per pixel")

	// Header: format tag, dimensions, max channel value
	assert.Equal(t, "P3", lines[0])
	assert.Equal(t, "2 2", lines[1])
	assert.Equal(t, "255", lines[2])

	// Pixels in row-major order, top to bottom, left to right
	assert.Equal(t, "255 0 0", lines[3])
	assert.Equal(t, "0 128 0", lines[4])
	assert.Equal(t, "0 0 64", lines[5])
	assert.Equal(t, "255 255 255", lines[6])
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"ppm", "png", "bmp"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, "."+name, format.Extension())
	}

	_, err := ParseFormat("jpeg")
	assert.Error(t, err)
	_, err = ParseFormat("")
	assert.Error(t, err)
}

func TestSave_RoundTripFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for _, format := range []Format{FormatPPM, FormatPNG, FormatBMP} {
		path := t.TempDir() + "/out" + format.Extension()
		require.NoError(t, Save(path, img, format))
		assert.FileExists(t, path)
	}
}
