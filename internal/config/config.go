// Package config handles render configuration loading and validation.
package config

import (
	"fmt"

	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/imageio"
	"github.com/akobel/weekend-tracer/pkg/renderer"
)

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds sampling and parallelism settings.
type RenderConfig struct {
	Width           int   `yaml:"width"`
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	TileSize        int   `yaml:"tile_size"`
	Workers         int   `yaml:"workers"`
	Seed            int64 `yaml:"seed"`
}

// CameraConfig holds optional camera overrides. Zero values leave the
// scene's own camera settings untouched.
type CameraConfig struct {
	VFov          float64   `yaml:"vfov"`
	LookFrom      []float64 `yaml:"look_from"`
	LookAt        []float64 `yaml:"look_at"`
	DefocusAngle  float64   `yaml:"defocus_angle"`
	FocusDistance float64   `yaml:"focus_distance"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Format string `yaml:"format"` // ppm, png or bmp
	Dir    string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:           0, // 0 keeps the scene's own width
			SamplesPerPixel: 0,
			MaxDepth:        0,
			TileSize:        64,
			Workers:         0,
			Seed:            42,
		},
		Output: OutputConfig{
			Format: "png",
			Dir:    "output",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects degenerate settings with a descriptive error.
func (c *Config) Validate() error {
	if c.Render.Width < 0 {
		return fmt.Errorf("render.width must be non-negative, got %d", c.Render.Width)
	}
	if c.Render.SamplesPerPixel < 0 {
		return fmt.Errorf("render.samples_per_pixel must be non-negative, got %d", c.Render.SamplesPerPixel)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("render.max_depth must be non-negative, got %d", c.Render.MaxDepth)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("render.tile_size must be positive, got %d", c.Render.TileSize)
	}
	if _, err := imageio.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	for name, p := range map[string][]float64{
		"camera.look_from": c.Camera.LookFrom,
		"camera.look_at":   c.Camera.LookAt,
	} {
		if len(p) != 0 && len(p) != 3 {
			return fmt.Errorf("%s must have exactly 3 components, got %d", name, len(p))
		}
	}
	return nil
}

// ApplyRender overlays non-zero config values onto a scene's render config.
func (c *Config) ApplyRender(base renderer.RenderConfig) renderer.RenderConfig {
	merged := base
	if c.Render.SamplesPerPixel > 0 {
		merged.SamplesPerPixel = c.Render.SamplesPerPixel
	}
	if c.Render.MaxDepth > 0 {
		merged.MaxDepth = c.Render.MaxDepth
	}
	if c.Render.TileSize > 0 {
		merged.TileSize = c.Render.TileSize
	}
	if c.Render.Workers > 0 {
		merged.NumWorkers = c.Render.Workers
	}
	merged.Seed = c.Render.Seed
	return merged
}

// ApplyCamera overlays non-zero config values onto a scene's camera config.
func (c *Config) ApplyCamera(base renderer.CameraConfig) renderer.CameraConfig {
	override := renderer.CameraConfig{
		VFov:          c.Camera.VFov,
		DefocusAngle:  c.Camera.DefocusAngle,
		FocusDistance: c.Camera.FocusDistance,
		Width:         c.Render.Width,
	}
	if len(c.Camera.LookFrom) == 3 {
		override.LookFrom = core.NewVec3(c.Camera.LookFrom[0], c.Camera.LookFrom[1], c.Camera.LookFrom[2])
	}
	if len(c.Camera.LookAt) == 3 {
		override.LookAt = core.NewVec3(c.Camera.LookAt[0], c.Camera.LookAt[1], c.Camera.LookAt[2])
	}
	return renderer.MergeCameraConfig(base, override)
}
