package core

import (
	"math"
	"math/rand/v2"
)

// MaterialType tags the active arm of Material
type MaterialType uint32

const (
	MaterialLambertian MaterialType = iota
	MaterialMetal
	MaterialDielectric
	// MaterialVolume is a participating medium bounded by the primitive.
	// Built-in scenes never produce it.
	MaterialVolume
)

func (t MaterialType) String() string {
	switch t {
	case MaterialLambertian:
		return "lambertian"
	case MaterialMetal:
		return "metal"
	case MaterialDielectric:
		return "dielectric"
	case MaterialVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// Material is a closed sum type over the supported surface models.
// Albedo and Emission are RGB anchors into the RGB to spectrum table.
type Material struct {
	Type      MaterialType
	Albedo    Vec3
	Emission  Vec3
	Roughness float64
	IOR       float64

	// Volume only
	G       float64 // Henyey-Greenstein anisotropy in (-1, 1)
	Density float64
}

// Lambertian creates a diffuse material
func Lambertian(albedo Vec3) Material {
	return Material{Type: MaterialLambertian, Albedo: albedo}
}

// Metal creates a reflective material with GGX roughness in [0,1]
func Metal(albedo Vec3, roughness float64) Material {
	return Material{Type: MaterialMetal, Albedo: albedo, Roughness: clamp01(roughness)}
}

// Dielectric creates a transparent material
func Dielectric(albedo Vec3, roughness, ior float64) Material {
	return Material{Type: MaterialDielectric, Albedo: albedo, Roughness: clamp01(roughness), IOR: ior}
}

// Volume creates a homogeneous participating medium
func Volume(albedo Vec3, density, g float64) Material {
	return Material{Type: MaterialVolume, Albedo: albedo, Density: density, G: g}
}

// Emissive returns a copy of m that also emits light
func (m Material) Emissive(emission Vec3) Material {
	m.Emission = emission
	return m
}

// IsEmissive reports whether the material emits any light
func (m Material) IsEmissive() bool {
	return m.Emission.X > 0 || m.Emission.Y > 0 || m.Emission.Z > 0
}

// RandomMaterial picks a surface type, a gamma-decoded albedo, occasional
// emission, a roughness biased toward smooth and an IOR in [sqrt(0.5), sqrt(3)).
func RandomMaterial(random *rand.Rand) Material {
	m := Material{
		Type: MaterialType(random.IntN(3)),
		Albedo: NewVec3(
			math.Pow(random.Float64(), 2.2),
			math.Pow(random.Float64(), 2.2),
			math.Pow(random.Float64(), 2.2),
		),
	}
	if random.Float64() < 0.1 {
		m.Emission = NewVec3(
			1+9*random.Float64(),
			1+9*random.Float64(),
			1+9*random.Float64(),
		)
	}
	r := random.Float64()
	m.Roughness = r * r * r
	m.IOR = math.Sqrt(0.5 + 2.5*random.Float64())
	return m
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
