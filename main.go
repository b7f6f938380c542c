package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akobel/weekend-tracer/internal/config"
	"github.com/akobel/weekend-tracer/internal/logger"
	"github.com/akobel/weekend-tracer/pkg/imageio"
	"github.com/akobel/weekend-tracer/pkg/integrator"
	"github.com/akobel/weekend-tracer/pkg/renderer"
	"github.com/akobel/weekend-tracer/pkg/scene"
)

// progressLogger adapts the zap sugared logger to the renderer's Logger
// interface
type progressLogger struct {
	sugar *zap.SugaredLogger
}

func (p progressLogger) Printf(format string, args ...interface{}) {
	p.sugar.Debugf(format, args...)
}

// createScene builds a scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(seed), nil
	case "test":
		return scene.NewTestScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (available: cover, test)", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'test'")
	configPath := flag.String("config", "", "Path to a YAML config file")
	width := flag.Int("width", 0, "Image width override")
	samples := flag.Int("samples", 0, "Samples per pixel override")
	maxDepth := flag.Int("depth", 0, "Maximum bounce depth override")
	format := flag.String("format", "", "Output format override: ppm, png or bmp")
	seed := flag.Int64("seed", 0, "Random seed override")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Monte Carlo sphere path tracer")
		fmt.Println("Usage: weekend-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover - Randomized sphere field with the three showcase spheres")
		fmt.Println("  test  - Single gray sphere, quick smoke render")
		fmt.Println()
		fmt.Println("Output is saved to <output.dir>/<scene>/render_<timestamp>_<id>.<ext>")
		return
	}

	if err := run(*sceneType, *configPath, *width, *samples, *maxDepth, *format, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType, configPath string, width, samples, maxDepth int, format string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags take priority over the config file
	if width > 0 {
		cfg.Render.Width = width
	}
	if samples > 0 {
		cfg.Render.SamplesPerPixel = samples
	}
	if maxDepth > 0 {
		cfg.Render.MaxDepth = maxDepth
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if seed != 0 {
		cfg.Render.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	jobID := uuid.New()
	log := logger.Sugar.With("job", jobID.String())

	sel, err := createScene(sceneType, cfg.Render.Seed)
	if err != nil {
		return err
	}

	cameraConfig := cfg.ApplyCamera(sel.CameraConfig)
	renderConfig := cfg.ApplyRender(sel.RenderConfig)

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return err
	}

	pt := integrator.NewPathTracer(sel.TopColor, sel.BottomColor)
	r, err := renderer.NewRenderer(camera, sel.World, pt, renderConfig, progressLogger{log})
	if err != nil {
		return err
	}

	log.Infow("starting render",
		"scene", sceneType,
		"width", camera.Width(),
		"height", camera.Height(),
		"samples", renderConfig.SamplesPerPixel,
		"max_depth", renderConfig.MaxDepth,
		"shapes", sel.World.Count(),
	)

	img, stats := r.Render()

	log.Infow("render complete",
		"elapsed", stats.Elapsed,
		"tiles", stats.Tiles,
		"workers", stats.Workers,
		"total_samples", stats.TotalSamples,
	)

	outputFormat, err := imageio.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(cfg.Output.Dir, sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir,
		fmt.Sprintf("render_%s_%s%s", timestamp, shortID(jobID), outputFormat.Extension()))

	if err := imageio.Save(filename, img, outputFormat); err != nil {
		return err
	}

	log.Infow("render saved", "file", filename)
	return nil
}

// shortID returns the first uuid group, enough to keep filenames unique per run
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
