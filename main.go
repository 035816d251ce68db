package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

// options are the command line settings of a render
type options struct {
	Scene      string
	Width      int
	Height     int
	OutputDir  string
	Checkpoint string // Save the accumulation state here when done
	Resume     string // Continue from this checkpoint
	SceneCfg   scene.Config
	FrameCfg   renderer.FrameConfig
	Integrator integrator.Config
}

func parseFlags(args []string) (options, error) {
	sceneDefaults := scene.DefaultConfig()
	frameDefaults := renderer.DefaultFrameConfig()
	integratorDefaults := integrator.DefaultConfig()

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	sceneType := fs.String("scene", "random", "Scene: "+strings.Join(scene.IDs(), ", "))
	width := fs.Int("width", 640, "Image width in pixels")
	height := fs.Int("height", 360, "Image height in pixels")
	frames := fs.Int("frames", frameDefaults.Frames, "Number of accumulated frames")
	output := fs.String("output", "output", "Output directory; renders go to <output>/<scene>/")
	checkpoint := fs.String("checkpoint", "", "Write the accumulation state to this file when done")
	resume := fs.String("resume", "", "Continue accumulating from a checkpoint file")
	seed := fs.Uint64("seed", sceneDefaults.Seed, "Seed for scene content and pixel samplers")
	workers := fs.Int("workers", frameDefaults.NumWorkers, "Render workers (0 = CPU count)")
	tileSize := fs.Int("tile-size", frameDefaults.TileSize, "Tile size in pixels")
	movingBounces := fs.Int("moving-bounces", integratorDefaults.MovingBounces, "Bounce limit while the camera moves")
	stationaryBounces := fs.Int("stationary-bounces", integratorDefaults.StationaryBounces, "Bounce limit while the camera is at rest")
	noRR := fs.Bool("no-rr", false, "Disable Russian roulette")
	env := fs.String("env", "", "Environment map (EXR, PNG or JPEG) replacing the scene sky")
	envIntensity := fs.Float64("env-intensity", sceneDefaults.EnvironmentIntensity, "Environment map multiplier")
	mesh := fs.String("mesh", "", "PLY mesh for the mesh scene")
	meshScale := fs.Float64("mesh-scale", sceneDefaults.MeshScale, "Uniform scale for the PLY mesh")
	spheres := fs.Int("spheres", sceneDefaults.SphereCount, "Sphere count for the spheres scene")
	depth := fs.Int("depth", sceneDefaults.CubeceptionDepth, "Nesting depth for the cubeception scene")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case *width <= 0 || *height <= 0:
		return options{}, fmt.Errorf("image size must be positive, got %dx%d", *width, *height)
	case *width > renderer.MaxCheckpointDimension || *height > renderer.MaxCheckpointDimension:
		return options{}, fmt.Errorf("image size must be at most %d, got %dx%d", renderer.MaxCheckpointDimension, *width, *height)
	case *frames <= 0:
		return options{}, fmt.Errorf("frames must be positive, got %d", *frames)
	case *tileSize <= 0:
		return options{}, fmt.Errorf("tile size must be positive, got %d", *tileSize)
	case *movingBounces <= 0 || *stationaryBounces <= 0:
		return options{}, fmt.Errorf("bounce limits must be positive")
	}

	sceneCfg := sceneDefaults
	sceneCfg.Seed = *seed
	sceneCfg.EnvironmentPath = *env
	sceneCfg.EnvironmentIntensity = *envIntensity
	sceneCfg.MeshPath = *mesh
	sceneCfg.MeshScale = *meshScale
	sceneCfg.SphereCount = *spheres
	sceneCfg.CubeceptionDepth = *depth

	frameCfg := frameDefaults
	frameCfg.Frames = *frames
	frameCfg.NumWorkers = *workers
	frameCfg.TileSize = *tileSize
	frameCfg.Seed = *seed

	return options{
		Scene:      *sceneType,
		Width:      *width,
		Height:     *height,
		OutputDir:  *output,
		Checkpoint: *checkpoint,
		Resume:     *resume,
		SceneCfg:   sceneCfg,
		FrameCfg:   frameCfg,
		Integrator: integrator.Config{
			MovingBounces:          *movingBounces,
			StationaryBounces:      *stationaryBounces,
			DisableRussianRoulette: *noRR,
		},
	}, nil
}

// createScene builds the named built-in scene
func createScene(opts options, logger core.Logger) (*scene.Scene, error) {
	if opts.Scene == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	return scene.New(opts.Scene, opts.SceneCfg, logger)
}

// run renders the configured frames and writes PNG and EXR outputs. It
// returns the written file names.
func run(ctx context.Context, opts options, logger core.Logger) ([]string, error) {
	selectedScene, err := createScene(opts, logger)
	if err != nil {
		return nil, err
	}
	logger.Printf("Scene %s: %d primitives\n", opts.Scene, selectedScene.GetPrimitiveCount())

	outputDir := filepath.Join(opts.OutputDir, opts.Scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	camera := renderer.NewCamera(selectedScene.Camera.Position, selectedScene.Camera.LookAt, selectedScene.Camera.VFov)
	tracer := integrator.NewPathTracer(opts.Integrator)
	fr := renderer.NewFrameRenderer(selectedScene, camera, tracer, opts.Width, opts.Height, opts.FrameCfg, logger)
	defer fr.Close()

	if opts.Resume != "" {
		cp, err := renderer.LoadCheckpointFile(opts.Resume)
		if err != nil {
			return nil, err
		}
		if err := fr.Resume(cp); err != nil {
			return nil, err
		}
		logger.Printf("Resuming from %s\n", opts.Resume)
	}

	startTime := time.Now()
	var last renderer.FrameResult
	err = fr.Run(ctx, func(result renderer.FrameResult) error {
		last = result
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	if errors.Is(err, context.Canceled) {
		logger.Printf("Interrupted after %d frames, saving what was accumulated\n", last.Frame)
	}

	logger.Printf("Render completed in %v (%d frames, mean age %.1f)\n",
		time.Since(startTime), last.Frame, last.Stats.MeanAge)

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(outputDir, fmt.Sprintf("render_%s", timestamp))
	accum := fr.Accumulator()

	written := []string{base + ".png", base + ".exr"}
	if err := renderer.WritePNG(written[0], accum); err != nil {
		return nil, err
	}
	if err := renderer.WriteEXR(written[1], accum); err != nil {
		return nil, err
	}
	if opts.Checkpoint != "" {
		if err := renderer.SaveCheckpointFile(opts.Checkpoint, fr.Checkpoint()); err != nil {
			return nil, err
		}
		written = append(written, opts.Checkpoint)
	}

	for _, name := range written {
		logger.Printf("Saved %s\n", name)
	}
	return written, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("Starting spectral path tracer...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
