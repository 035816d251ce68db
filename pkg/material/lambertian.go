package material

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// LambertianBRDF is the diffuse BRDF value albedo/π at lambda
func LambertianBRDF(m core.Material, lambda float64) float64 {
	return SpectralAlbedo(m, lambda) / math.Pi
}

// scatterLambertian draws a cosine-weighted direction (GGX with roughness 1).
// With pdf cos/π the estimator BRDF·cos/pdf reduces to the spectral albedo.
func scatterLambertian(hit core.Hit, lambda float64, sampler core.Sampler) (float64, core.Ray) {
	direction := core.SampleGGX(hit.Normal, 1.0, sampler.Get2D())
	next := core.NewRay(nudge(hit.Position, hit.Normal, 1), direction)
	return SpectralAlbedo(hit.Material, lambda), next
}
