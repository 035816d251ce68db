package core

import "math"

// Hit is the result of a ray/primitive intersection test.
// Normal always opposes the ray direction; FrontFace records whether the ray
// arrived from outside the surface before that correction.
type Hit struct {
	Success     bool
	Position    Vec3
	Normal      Vec3
	Distance    float64
	UV          Vec2 // (-1,-1) when the primitive has no texture mapping
	FarDistance float64
	FrontFace   bool
	Material    Material
}

// NoUV is the sentinel texture coordinate for primitives without a mapping
var NoUV = Vec2{X: -1, Y: -1}

// NoHit returns the failed intersection sentinel
func NoHit() Hit {
	return Hit{Distance: math.Inf(1), FarDistance: math.Inf(1), UV: NoUV}
}

// HasUV reports whether the hit carries a texture coordinate
func (h Hit) HasUV() bool {
	return h.UV.X >= 0 && h.UV.Y >= 0
}

// SetFaceNormal orients the normal against the ray and records which side was hit
func (h *Hit) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Closest merges two intersection results: a failed hit loses to a successful
// one, and between two successful hits the nearer wins. Ties keep a.
func Closest(a, b Hit) Hit {
	if !b.Success {
		return a
	}
	if !a.Success {
		return b
	}
	if b.Distance < a.Distance {
		return b
	}
	return a
}
