package material

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// DispersedIOR returns the index of refraction at lambda, rising toward blue
func DispersedIOR(ior, lambda float64) float64 {
	return ior + DispersionCoefficient*(550-lambda)
}

// scatterDielectric reflects or refracts with probability given by Schlick's
// approximation. Entering pushes the medium onto the stack, leaving pops it.
func scatterDielectric(ray core.Ray, hit core.Hit, lambda float64, stack *RefractionStack, sampler core.Sampler) (float64, core.Ray) {
	eta := DispersedIOR(hit.Material.IOR, lambda)

	var incident, transmitted float64
	if hit.FrontFace {
		incident, transmitted = stack.Peek(AirIOR), eta
	} else {
		incident, transmitted = eta, stack.PeekUnder(AirIOR)
	}
	refractionRatio := incident / transmitted

	unitDirection := ray.Direction.Normalize()
	normal := core.SampleGGX(hit.Normal, hit.Material.Roughness, sampler.Get2D())

	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)
	sinTheta := math.Sqrt(max(0, 1.0-cosTheta*cosTheta))
	cannotRefract := refractionRatio*sinTheta > 1.0

	if cannotRefract || sampler.Get1D() < Reflectance(cosTheta, refractionRatio) {
		direction := core.Reflect(unitDirection, normal)
		return 1.0, core.NewRay(nudge(hit.Position, hit.Normal, 1), direction)
	}

	direction := refract(unitDirection, normal, refractionRatio)
	if hit.FrontFace {
		stack.Push(eta)
	} else {
		stack.Pop()
	}
	return SpectralAlbedo(hit.Material, lambda), core.NewRay(nudge(hit.Position, hit.Normal, -1), direction)
}
