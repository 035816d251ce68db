package geometry

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// Triangle represents a single triangle with per-vertex texture coordinates
type Triangle struct {
	A, B, C       core.Vec3
	UVA, UVB, UVC core.Vec2
	Material      core.Material
}

// NewTriangle creates a triangle without texture coordinates
func NewTriangle(a, b, c core.Vec3, material core.Material) Triangle {
	return Triangle{A: a, B: b, C: c, UVA: core.NoUV, UVB: core.NoUV, UVC: core.NoUV, Material: material}
}

// Intersect uses the Möller-Trumbore algorithm.
// The hit UV is the first vertex's UV, not the barycentric interpolation.
func (t Triangle) Intersect(ray core.Ray) core.Hit {
	edge1 := t.B.Subtract(t.A)
	edge2 := t.C.Subtract(t.A)

	p := ray.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < 1e-8 {
		return core.NoHit()
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(t.A)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return core.NoHit()
	}

	q := s.Cross(edge1)
	v := ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return core.NoHit()
	}

	dist := edge2.Dot(q) * invDet
	if dist < MinHitDistance {
		return core.NoHit()
	}

	hit := core.Hit{
		Success:     true,
		Distance:    dist,
		FarDistance: dist,
		Position:    ray.At(dist),
		UV:          t.UVA,
		Material:    t.Material,
	}
	hit.SetFaceNormal(ray, t.Normal())
	return hit
}

// Normal returns the geometric normal following the A, B, C winding
func (t Triangle) Normal() core.Vec3 {
	return t.B.Subtract(t.A).Cross(t.C.Subtract(t.A)).Normalize()
}

// Bounds returns the bounding box of the three vertices
func (t Triangle) Bounds() core.AABB {
	return core.NewAABBFromPoints(t.A, t.B, t.C)
}

// Centroid returns the average of the three vertices
func (t Triangle) Centroid() core.Vec3 {
	return t.A.Add(t.B).Add(t.C).Multiply(1.0 / 3.0)
}
