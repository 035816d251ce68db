package material

import "github.com/df07/go-spectral-pathtracer/pkg/core"

// scatterMetal reflects about a GGX microfacet normal. There is no Fresnel
// term; the reflectance is the spectral albedo.
func scatterMetal(ray core.Ray, hit core.Hit, lambda float64, sampler core.Sampler) (float64, core.Ray) {
	microfacet := core.SampleGGX(hit.Normal, hit.Material.Roughness, sampler.Get2D())
	direction := core.Reflect(ray.Direction.Normalize(), microfacet)
	next := core.NewRay(nudge(hit.Position, hit.Normal, 1), direction)

	// Rough lobes can reflect below the surface; those paths are absorbed
	if direction.Dot(hit.Normal) <= 0 {
		return 0, next
	}
	return SpectralAlbedo(hit.Material, lambda), next
}
