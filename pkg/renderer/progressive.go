// Package renderer drives progressive frame rendering: the camera uniform,
// tiled parallel path estimation and temporal accumulation.
package renderer

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// FrameConfig contains configuration for progressive rendering
type FrameConfig struct {
	TileSize   int    // Size of each square tile in pixels
	NumWorkers int    // Number of parallel workers (0 = use CPU count)
	Frames     int    // Frames rendered by Run (0 = until cancelled)
	Seed       uint64 // Base seed for the per-pixel sampler streams
}

// DefaultFrameConfig returns sensible default values
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		TileSize:   32,
		NumWorkers: 0,
		Frames:     64,
		Seed:       1,
	}
}

// FrameResult describes one rendered frame
type FrameResult struct {
	Frame      uint64        `json:"frame"` // 1-based count of frames rendered by this renderer
	Reset      bool          `json:"reset"`
	Stationary bool          `json:"stationary"`
	Bounces    int           `json:"bounces"`
	Duration   time.Duration `json:"duration"`
	Stats      FrameStats    `json:"stats"`
}

// FrameRenderer renders frames progressively into a temporal accumulator.
// RenderFrame must be called from one goroutine at a time; camera, size and
// checkpoint changes may come from any goroutine and apply at the next frame.
type FrameRenderer struct {
	tracer       *integrator.PathTracer
	config       FrameConfig
	accum        *Accumulator
	tileRenderer *TileRenderer
	workerPool   *WorkerPool
	logger       core.Logger

	tiles         []*Tile
	width, height int
	frames        uint64

	mu              sync.Mutex // Guards the fields below
	camera          Camera
	publishedCamera Camera // pose of the frame the accumulator last published
	uniform         CameraUniform
	pendingWidth    int
	pendingHeight   int
	forceReset      bool
	pendingResume   *Checkpoint
}

// NewFrameRenderer creates a frame renderer and starts its worker pool
func NewFrameRenderer(scene integrator.Scene, camera *Camera, tracer *integrator.PathTracer, width, height int, config FrameConfig, logger core.Logger) *FrameRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultFrameConfig().TileSize
	}

	accum := NewAccumulator(width, height)
	tileRenderer := NewTileRenderer(scene, tracer, accum)
	workerPool := NewWorkerPool(tileRenderer, config.NumWorkers)
	workerPool.Start()

	return &FrameRenderer{
		tracer:          tracer,
		config:          config,
		accum:           accum,
		tileRenderer:    tileRenderer,
		workerPool:      workerPool,
		logger:          logger,
		tiles:           NewTileGrid(width, height, config.TileSize),
		width:           width,
		height:          height,
		camera:          *camera,
		publishedCamera: *camera,
		pendingWidth:    width,
		pendingHeight:   height,
	}
}

// Close stops the worker pool
func (fr *FrameRenderer) Close() {
	fr.workerPool.Stop()
}

// Accumulator returns the accumulation image
func (fr *FrameRenderer) Accumulator() *Accumulator {
	return fr.accum
}

// Camera returns a copy of the current camera
func (fr *FrameRenderer) Camera() Camera {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.camera
}

// Uniform returns a copy of the camera uniform of the latest frame
func (fr *FrameRenderer) Uniform() CameraUniform {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.uniform
}

// UpdateCamera applies fn to the camera. A pose change resets accumulation
// on the next frame.
func (fr *FrameRenderer) UpdateCamera(fn func(*Camera)) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fn(&fr.camera)
}

// Resize changes the image size from the next frame on, discarding history
func (fr *FrameRenderer) Resize(width, height int) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.pendingWidth = width
	fr.pendingHeight = height
}

// Reset discards accumulated history on the next frame
func (fr *FrameRenderer) Reset() {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.forceReset = true
}

// beginFrame applies pending changes and advances the camera uniform. It
// returns the camera pose the frame renders from.
func (fr *FrameRenderer) beginFrame() (FrameParams, Camera) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	resized := fr.pendingWidth != fr.width || fr.pendingHeight != fr.height
	if resized {
		fr.width, fr.height = fr.pendingWidth, fr.pendingHeight
		fr.accum.Resize(fr.width, fr.height)
		fr.tiles = NewTileGrid(fr.width, fr.height, fr.config.TileSize)
		fr.logger.Printf("Resized to %dx%d (%d tiles)\n", fr.width, fr.height, len(fr.tiles))
	}

	resumed := false
	if cp := fr.pendingResume; cp != nil && !resized {
		fr.pendingResume = nil
		if fr.accum.Restore(cp.Pixels) {
			fr.camera = cp.Camera
			resumed = true
		}
	}

	fr.uniform.Update(&fr.camera, fr.width, fr.height)

	reset := fr.uniform.FrameCount == 1 || !fr.uniform.PoseUnchanged() || resized || fr.forceReset
	if resumed {
		reset = fr.forceReset
	}
	fr.forceReset = false

	fr.frames++
	return FrameParams{
		Uniform:    fr.uniform,
		Seed:       frameSeed(fr.config.Seed, fr.frames),
		Reset:      reset,
		Stationary: !reset,
	}, fr.camera
}

// frameSeed derives a distinct sampler seed for every frame
func frameSeed(base, frame uint64) uint64 {
	return base ^ (frame * 0x9E3779B97F4A7C15)
}

// RenderFrame renders one frame: every tile is estimated in parallel, then the
// accumulator is swapped. A cancelled frame leaves the published image intact.
func (fr *FrameRenderer) RenderFrame(ctx context.Context) (FrameResult, error) {
	if err := ctx.Err(); err != nil {
		return FrameResult{}, err
	}

	startTime := time.Now()
	params, camera := fr.beginFrame()
	tiles := fr.tiles

	go func() {
		for i, tile := range tiles {
			fr.workerPool.SubmitTask(TileTask{Ctx: ctx, Tile: tile, TaskID: i, Frame: params})
		}
	}()

	var firstErr error
	nonFinite := 0
	for range tiles {
		result, ok := fr.workerPool.GetResult()
		if !ok {
			return FrameResult{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		nonFinite += result.Stats.NonFinite
	}
	if firstErr != nil {
		if params.Reset {
			fr.Reset()
		}
		return FrameResult{}, firstErr
	}

	fr.mu.Lock()
	fr.accum.Swap()
	fr.publishedCamera = camera
	fr.mu.Unlock()

	pixels, _, _ := fr.accum.Snapshot()
	stats := ComputeFrameStats(pixels)
	stats.NonFinite = nonFinite

	result := FrameResult{
		Frame:      fr.frames,
		Reset:      params.Reset,
		Stationary: params.Stationary,
		Bounces:    fr.tracer.Bounces(params.Stationary),
		Duration:   time.Since(startTime),
		Stats:      stats,
	}

	fr.logger.Printf("Frame %d completed in %v (reset: %t, bounces: %d, mean age: %.1f)\n",
		result.Frame, result.Duration, result.Reset, result.Bounces, stats.MeanAge)
	if nonFinite > 0 {
		fr.logger.Printf("Frame %d: dropped %d non-finite estimates\n", result.Frame, nonFinite)
	}

	return result, nil
}

// Run renders frames until the configured frame count is reached or ctx is
// cancelled, calling onFrame after each one. An error from onFrame stops the loop.
func (fr *FrameRenderer) Run(ctx context.Context, onFrame func(FrameResult) error) error {
	fr.logger.Printf("Starting progressive rendering (%d workers, %d tiles)...\n",
		fr.workerPool.GetNumWorkers(), len(fr.tiles))

	for n := 0; fr.config.Frames <= 0 || n < fr.config.Frames; n++ {
		result, err := fr.RenderFrame(ctx)
		if err != nil {
			return err
		}
		if onFrame != nil {
			if err := onFrame(result); err != nil {
				return err
			}
		}
	}
	fr.logger.Printf("Tiles per worker: %v\n", fr.workerPool.TilesRendered())
	return nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
