package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box = box.Extend(point)
	}
	return box
}

// Extend returns the smallest AABB containing both the box and the point
func (aabb AABB) Extend(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// EmptyAABB returns an inverted box that any Extend or Union replaces
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: NewVec3(inf, inf, inf), Max: NewVec3(-inf, -inf, -inf)}
}

// Slab holds the entry and exit distances of a ray against an AABB along with
// the axis that produced each one.
type Slab struct {
	Near, Far         float64
	NearAxis, FarAxis int
}

// Intersect runs the slab test and returns the entry/exit interval of the
// infinite line through the ray. ok is false when the line misses the box or
// the box lies entirely behind the origin.
func (aabb AABB) Intersect(ray Ray) (Slab, bool) {
	slab := Slab{Near: math.Inf(-1), Far: math.Inf(1)}

	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min.Axis(axis)
		hi := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return slab, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > slab.Near {
			slab.Near = t1
			slab.NearAxis = axis
		}
		if t2 < slab.Far {
			slab.Far = t2
			slab.FarAxis = axis
		}
		if slab.Near > slab.Far {
			return slab, false
		}
	}

	return slab, slab.Far >= 0
}

// HitDistance returns the distance at which the ray enters the box, or zero if
// the origin is already inside. ok is false on a miss.
func (aabb AABB) HitDistance(ray Ray) (float64, bool) {
	slab, ok := aabb.Intersect(ray)
	if !ok {
		return 0, false
	}
	return max(slab.Near, 0), true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}
