package renderer

import (
	"image"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
)

// FrameParams is the per-frame state every tile of a frame shares
type FrameParams struct {
	Uniform    CameraUniform
	Seed       uint64 // Frame seed, combined with the pixel index per pixel
	Reset      bool   // Discard accumulated history
	Stationary bool   // Camera at rest, use the long bounce budget
}

// TileStats summarises one rendered tile
type TileStats struct {
	Pixels    int
	NonFinite int // Estimates dropped because they were NaN or infinite
}

// TileRenderer renders the pixels of a tile into the accumulator
type TileRenderer struct {
	scene  integrator.Scene
	tracer *integrator.PathTracer
	accum  *Accumulator
}

// NewTileRenderer creates a new tile renderer for the given scene, tracer and accumulator
func NewTileRenderer(scene integrator.Scene, tracer *integrator.PathTracer, accum *Accumulator) *TileRenderer {
	return &TileRenderer{
		scene:  scene,
		tracer: tracer,
		accum:  accum,
	}
}

// RenderTile estimates one path per pixel of the tile and resolves it into
// the accumulator. Each pixel gets its own sampler stream.
func (tr *TileRenderer) RenderTile(tile *Tile, frame FrameParams) TileStats {
	return tr.RenderBounds(tile.Bounds, frame)
}

// RenderBounds renders pixels within the specified bounds
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, frame FrameParams) TileStats {
	stats := TileStats{Pixels: bounds.Dx() * bounds.Dy()}
	width := frame.Uniform.Width

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sampler := core.NewPixelSampler(frame.Seed, uint64(y*width+x))
			ray := frame.Uniform.Ray(x, y)

			estimate := tr.tracer.Estimate(ray, tr.scene, sampler, frame.Stationary)
			if !estimate.IsFinite() {
				stats.NonFinite++
				estimate = core.Vec3{}
			}
			tr.accum.Resolve(x, y, estimate, frame.Reset)
		}
	}

	return stats
}
