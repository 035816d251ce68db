package core

import (
	"math"
	"math/rand/v2"
)

// Sampler provides uniform [0,1) samples to rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewPixelSampler returns a PCG stream for one pixel of one frame. Distinct
// (frameSeed, pixelIndex) pairs give decorrelated streams.
func NewPixelSampler(frameSeed, pixelIndex uint64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(frameSeed, pixelIndex)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// OrthonormalBasis returns two unit vectors perpendicular to the unit vector n
// and to each other.
func OrthonormalBasis(n Vec3) (tangent, bitangent Vec3) {
	var helper Vec3
	if math.Abs(n.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}
	tangent = helper.Cross(n).Normalize()
	bitangent = n.Cross(tangent)
	return tangent, bitangent
}

// ToWorld maps a direction expressed in the local frame (z along n) to world space
func ToWorld(local, n Vec3) Vec3 {
	tangent, bitangent := OrthonormalBasis(n)
	return tangent.Multiply(local.X).Add(bitangent.Multiply(local.Y)).Add(n.Multiply(local.Z))
}

// SampleGGX draws a microfacet normal around n from the GGX distribution with
// alpha = roughness². The half-vector pdf is D(h)·cos(h), so roughness 1 reduces
// to a cosine-weighted hemisphere.
func SampleGGX(normal Vec3, roughness float64, sample Vec2) Vec3 {
	alpha := roughness * roughness
	if alpha <= 0 {
		return normal
	}
	alpha2 := alpha * alpha
	cos2Theta := (1 - sample.Y) / (1 + (alpha2-1)*sample.Y)
	cosTheta := math.Sqrt(max(0, cos2Theta))
	sinTheta := math.Sqrt(max(0, 1-cos2Theta))
	phi := 2.0 * math.Pi * sample.X
	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return ToWorld(local, normal).Normalize()
}

// SampleHenyeyGreenstein samples a scattering direction around the propagation
// direction wo for anisotropy g.
func SampleHenyeyGreenstein(wo Vec3, g float64, sample Vec2) Vec3 {
	var cosTheta float64
	if math.Abs(g) < 1e-3 {
		cosTheta = 1 - 2*sample.X
	} else {
		sq := (1 - g*g) / (1 - g + 2*g*sample.X)
		cosTheta = (1 + g*g - sq*sq) / (2 * g)
	}
	cosTheta = max(-1, min(1, cosTheta))
	sinTheta := math.Sqrt(max(0, 1-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y
	local := NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	return ToWorld(local, wo.Normalize())
}
