package geometry

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: material}
}

// Pad returns the sphere shrunk by PadThickness
func (s Sphere) Pad() Sphere {
	s.Radius -= PadThickness
	return s
}

// Intersect solves a t² + 2b t + c = 0 for the ray. The nearer valid root is
// the hit distance; the farther root is kept as the exit distance.
func (s Sphere) Intersect(ray core.Ray) core.Hit {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant < 0 || a == 0 {
		return core.NoHit()
	}

	sqrtD := math.Sqrt(discriminant)
	near := (-b - sqrtD) / a
	far := (-b + sqrtD) / a

	root := near
	if root < MinHitDistance {
		root = far
		if root < MinHitDistance {
			return core.NoHit()
		}
	}

	hit := core.Hit{
		Success:     true,
		Distance:    root,
		FarDistance: far,
		Position:    ray.At(root),
		UV:          core.NoUV,
		Material:    s.Material,
	}
	hit.SetFaceNormal(ray, hit.Position.Subtract(s.Center).Multiply(1.0/s.Radius))
	return hit
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s Sphere) Bounds() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
