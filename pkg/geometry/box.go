package geometry

import "github.com/df07/go-spectral-pathtracer/pkg/core"

// Box is an axis-aligned solid box
type Box struct {
	Min      core.Vec3
	Max      core.Vec3
	Material core.Material
}

// NewBox creates a box from two opposite corners
func NewBox(a, b core.Vec3, material core.Material) Box {
	return Box{Min: a.Min(b), Max: a.Max(b), Material: material}
}

// NewCenteredBox creates a box from its center and half extents
func NewCenteredBox(center, halfSize core.Vec3, material core.Material) Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), material)
}

// Pad returns the box shrunk by PadThickness on every face
func (b Box) Pad() Box {
	pad := core.NewVec3(PadThickness, PadThickness, PadThickness)
	b.Min = b.Min.Add(pad)
	b.Max = b.Max.Subtract(pad)
	return b
}

// Intersect uses the slab method. A ray starting inside the box reports the
// exit face instead of the entry face.
func (b Box) Intersect(ray core.Ray) core.Hit {
	slab, ok := core.NewAABB(b.Min, b.Max).Intersect(ray)
	if !ok {
		return core.NoHit()
	}

	t, axis, sign := slab.Near, slab.NearAxis, -1.0
	if t < MinHitDistance {
		t, axis, sign = slab.Far, slab.FarAxis, 1.0
		if t < MinHitDistance {
			return core.NoHit()
		}
	}

	// Outward normal of the selected face: entry faces oppose the ray, exit faces follow it
	var outward core.Vec3
	d := ray.Direction.Axis(axis)
	if d < 0 {
		sign = -sign
	}
	switch axis {
	case 0:
		outward = core.NewVec3(sign, 0, 0)
	case 1:
		outward = core.NewVec3(0, sign, 0)
	default:
		outward = core.NewVec3(0, 0, sign)
	}

	hit := core.Hit{
		Success:     true,
		Distance:    t,
		FarDistance: slab.Far,
		Position:    ray.At(t),
		UV:          core.NoUV,
		Material:    b.Material,
	}
	hit.SetFaceNormal(ray, outward)
	return hit
}

// Bounds returns the box itself as an AABB
func (b Box) Bounds() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
