package material

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Transmittance is the Beer-Lambert fraction of light crossing distance d
func Transmittance(density, d float64) float64 {
	return math.Exp(-density * d)
}

// scatterVolume samples a free path inside the medium bounded by the hit
// primitive. A path shorter than the chord scatters with a Henyey-Greenstein
// direction; otherwise the ray passes straight through. Sampling the free
// path makes the pass-through probability equal the transmittance, so the
// through weight is one.
func scatterVolume(ray core.Ray, hit core.Hit, lambda float64, sampler core.Sampler) (float64, core.Ray) {
	m := hit.Material
	direction := ray.Direction.Normalize()

	// Outside: the medium spans entry to exit. Inside: it ends at the hit.
	entry, span := hit.Position, hit.FarDistance-hit.Distance
	if !hit.FrontFace {
		entry, span = ray.Origin, hit.Distance
	}

	if m.Density <= 0 {
		return 1.0, core.NewRay(entry.Add(direction.Multiply(span+NudgeEpsilon)), direction)
	}

	freePath := -math.Log(1-sampler.Get1D()) / m.Density
	if freePath >= span {
		return 1.0, core.NewRay(entry.Add(direction.Multiply(span+NudgeEpsilon)), direction)
	}

	scatterPoint := entry.Add(direction.Multiply(freePath))
	next := core.SampleHenyeyGreenstein(direction, m.G, sampler.Get2D())
	return SpectralAlbedo(m, lambda), core.NewRay(scatterPoint, next)
}
