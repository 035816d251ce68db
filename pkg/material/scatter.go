// Package material evaluates the per-wavelength scattering of each material type.
package material

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/spectral"
)

const (
	// AirIOR is the medium outside every object
	AirIOR = 1.0

	// DispersionCoefficient shifts the IOR per nm away from 550 nm
	DispersionCoefficient = 1e-4

	// NudgeEpsilon moves scattered ray origins off the surface
	NudgeEpsilon = 1e-4
)

// Scatter samples the next ray leaving hit and returns the throughput
// multiplier for wavelength lambda. A weight of zero means the path was absorbed.
func Scatter(ray core.Ray, hit core.Hit, lambda float64, stack *RefractionStack, sampler core.Sampler) (float64, core.Ray) {
	switch hit.Material.Type {
	case core.MaterialLambertian:
		return scatterLambertian(hit, lambda, sampler)
	case core.MaterialMetal:
		return scatterMetal(ray, hit, lambda, sampler)
	case core.MaterialDielectric:
		return scatterDielectric(ray, hit, lambda, stack, sampler)
	case core.MaterialVolume:
		return scatterVolume(ray, hit, lambda, sampler)
	default:
		return 0, ray
	}
}

// SpectralAlbedo returns the material albedo at lambda
func SpectralAlbedo(m core.Material, lambda float64) float64 {
	return spectral.RGBToSpectralIntensity(m.Albedo, lambda)
}

// SpectralEmission returns the emitted radiance at lambda
func SpectralEmission(m core.Material, lambda float64) float64 {
	if !m.IsEmissive() {
		return 0
	}
	return spectral.RGBToSpectralIntensity(m.Emission, lambda)
}

// nudge offsets p along n by NudgeEpsilon in the given direction (+1 or -1)
func nudge(p, n core.Vec3, side float64) core.Vec3 {
	return p.Add(n.Multiply(side * NudgeEpsilon))
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// refract bends the unit vector uv through the surface with normal n using Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
