package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// MeshOptions contains optional parameters for triangle mesh creation
type MeshOptions struct {
	UVs         []core.Vec2     // Optional per-vertex texture coordinates
	Materials   []core.Material // Optional per-triangle materials
	Scale       float64         // Uniform scale applied first (0 means 1)
	Rotation    core.Vec3       // Rotation in radians around X, Y, Z (applied in that order)
	Translation core.Vec3       // Offset applied last
}

// NewTriangleMesh expands indexed vertices into a flat triangle list ready for
// BuildBVH. faces holds three vertex indices per triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *MeshOptions) ([]Triangle, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}
	numTriangles := len(faces) / 3

	opts := MeshOptions{}
	if options != nil {
		opts = *options
	}
	if opts.UVs != nil && len(opts.UVs) != len(vertices) {
		return nil, fmt.Errorf("got %d UVs for %d vertices", len(opts.UVs), len(vertices))
	}
	if opts.Materials != nil && len(opts.Materials) != numTriangles {
		return nil, fmt.Errorf("got %d materials for %d triangles", len(opts.Materials), numTriangles)
	}

	transformed := make([]core.Vec3, len(vertices))
	for i, v := range vertices {
		transformed[i] = opts.transform(v)
	}

	triangles := make([]Triangle, numTriangles)
	for i := range triangles {
		idx := [3]int{faces[i*3], faces[i*3+1], faces[i*3+2]}
		for _, j := range idx {
			if j < 0 || j >= len(transformed) {
				return nil, fmt.Errorf("triangle %d: vertex index %d out of range", i, j)
			}
		}

		triangleMaterial := material
		if opts.Materials != nil {
			triangleMaterial = opts.Materials[i]
		}

		t := NewTriangle(transformed[idx[0]], transformed[idx[1]], transformed[idx[2]], triangleMaterial)
		if opts.UVs != nil {
			t.UVA, t.UVB, t.UVC = opts.UVs[idx[0]], opts.UVs[idx[1]], opts.UVs[idx[2]]
		}
		triangles[i] = t
	}

	return triangles, nil
}

// MeshBounds returns the bounding box of a triangle list
func MeshBounds(triangles []Triangle) core.AABB {
	bounds := core.EmptyAABB()
	for _, t := range triangles {
		bounds = bounds.Union(t.Bounds())
	}
	return bounds
}

func (o MeshOptions) transform(v core.Vec3) core.Vec3 {
	if o.Scale != 0 {
		v = v.Multiply(o.Scale)
	}
	return rotateVertex(v, o.Rotation).Add(o.Translation)
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(v, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		sin, cos := math.Sincos(rotation.X)
		v = core.NewVec3(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
	}
	if rotation.Y != 0 {
		sin, cos := math.Sincos(rotation.Y)
		v = core.NewVec3(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
	}
	if rotation.Z != 0 {
		sin, cos := math.Sincos(rotation.Z)
		v = core.NewVec3(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
	}
	return v
}
