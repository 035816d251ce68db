// Package geometry implements the ray intersection routines for the
// primitive lists and the flattened triangle BVH.
package geometry

import "github.com/df07/go-spectral-pathtracer/pkg/core"

// MinHitDistance rejects intersections this close to the ray origin so a
// scattered ray does not immediately re-hit the surface it left.
const MinHitDistance = 1e-4

// PadThickness shrinks primitives that rest on another surface so their
// boundaries do not coincide.
const PadThickness = 0.00025

// Bounded is implemented by anything the BVH builder can partition
type Bounded interface {
	Bounds() core.AABB
}

// IntersectAll returns the closest hit among a list of primitives
func IntersectAll[T interface{ Intersect(core.Ray) core.Hit }](items []T, ray core.Ray) core.Hit {
	closest := core.NoHit()
	for i := range items {
		closest = core.Closest(closest, items[i].Intersect(ray))
	}
	return closest
}
