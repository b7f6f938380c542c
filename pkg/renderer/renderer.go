// Package renderer drives the per-pixel sampling loop over a tile-parallel
// worker pool.
package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/geometry"
	"github.com/akobel/weekend-tracer/pkg/imageio"
	"github.com/akobel/weekend-tracer/pkg/integrator"
)

// RenderConfig contains sampling and parallelism configuration
type RenderConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Tile side length in pixels
	NumWorkers      int   // Parallel workers (0 = CPU count)
	Seed            int64 // Base seed for per-tile generators
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        64,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate rejects configurations the render loop cannot handle
func (c RenderConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("render: samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("render: max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("render: tile size must be positive, got %d", c.TileSize)
	}
	return nil
}

// nopLogger discards progress output
type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}

// Renderer renders a world through a camera into an image
type Renderer struct {
	camera     *Camera
	world      *geometry.World
	integrator *integrator.PathTracer
	config     RenderConfig
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger disables progress output.
func NewRenderer(camera *Camera, world *geometry.World, pt *integrator.PathTracer, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Renderer{
		camera:     camera,
		world:      world,
		integrator: pt,
		config:     config,
		logger:     logger,
	}, nil
}

// Render runs the full sampling loop and returns the gamma-corrected image
// along with render statistics
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	width, height := r.camera.Width(), r.camera.Height()
	start := time.Now()

	// Shared pixel statistics array in global image coordinates
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	tiles := NewTileGrid(width, height, r.config.TileSize)
	pool := NewWorkerPool(r, r.config.NumWorkers, len(tiles))
	pool.Start()

	for _, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			PixelStats: pixelStats,
			Seed:       r.config.Seed,
		})
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     pool.NumWorkers(),
	}

	// Collect one result per submitted tile, then shut the pool down
	for completed := 0; completed < len(tiles); completed++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
		r.logger.Printf("\rTiles completed: %d/%d ", completed+1, len(tiles))
	}
	pool.Stop()
	r.logger.Printf("\rDone.                  \n")

	stats.Elapsed = time.Since(start)
	return r.buildImage(pixelStats), stats
}

// renderTile renders all pixels within one tile's bounds
func (r *Renderer) renderTile(tile Tile, pixelStats [][]PixelStats, random *rand.Rand) int {
	sampler := core.NewRandomSampler(random)
	samples := 0

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for s := 0; s < r.config.SamplesPerPixel; s++ {
				ray := r.camera.GetRay(i, j, sampler)
				ps.AddSample(r.integrator.RayColor(ray, r.world, sampler, r.config.MaxDepth))
			}
			samples += r.config.SamplesPerPixel
		}
	}

	return samples
}

// buildImage converts accumulated pixel statistics to a gamma-corrected image
func (r *Renderer) buildImage(pixelStats [][]PixelStats) *image.RGBA {
	width, height := r.camera.Width(), r.camera.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			ps := &pixelStats[j][i]
			img.SetRGBA(i, j, imageio.EncodeColor(ps.ColorAccum, ps.SampleCount))
		}
	}

	return img
}
