package geometry

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Plane is an infinite plane through Point with the given Normal
type Plane struct {
	Normal   core.Vec3
	Point    core.Vec3
	Material core.Material
}

// NewPlane creates a new plane, normalizing the normal
func NewPlane(normal, point core.Vec3, material core.Material) Plane {
	return Plane{Normal: normal.Normalize(), Point: point, Material: material}
}

// Intersect computes t = n·(p0-o) / n·d, rejecting near-parallel rays and
// intersections behind the origin.
func (p Plane) Intersect(ray core.Ray) core.Hit {
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-6 {
		return core.NoHit()
	}

	t := p.Normal.Dot(p.Point.Subtract(ray.Origin)) / denominator
	if t < MinHitDistance {
		return core.NoHit()
	}

	hit := core.Hit{
		Success:     true,
		Distance:    t,
		FarDistance: t,
		Position:    ray.At(t),
		UV:          core.NoUV,
		Material:    p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)
	return hit
}
