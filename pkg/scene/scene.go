// Package scene assembles primitive lists, the triangle BVH and the sky into
// a renderable world, and registers the built-in scenes.
package scene

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/sky"
)

// Scene contains all the elements needed for rendering. It is read-only
// once built and may be shared by every render worker.
type Scene struct {
	Name        string
	Spheres     []geometry.Sphere
	Planes      []geometry.Plane
	Boxes       []geometry.Box
	BVH         *geometry.BVH // Triangles, nil when the scene has none
	Environment sky.Environment
	Camera      CameraSetup
}

// CameraSetup is the starting camera pose of a scene
type CameraSetup struct {
	Position core.Vec3
	LookAt   core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// Config carries the options the built-in scene builders understand
type Config struct {
	Seed                 uint64  // Seed for scenes with random content
	SphereCount          int     // Number of random spheres in the spheres scene
	CubeceptionDepth     int     // Number of nested shells in the cubeception scene
	MeshPath             string  // PLY file for the mesh scene, empty for procedural meshes
	MeshScale            float64 // Uniform scale for the loaded mesh
	EnvironmentPath      string  // Optional EXR/PNG/JPEG sky replacing the scene's own
	EnvironmentIntensity float64 // Multiplier for the loaded sky
}

// DefaultConfig returns the settings used by the CLI and the web preview
func DefaultConfig() Config {
	return Config{
		Seed:                 1,
		SphereCount:          200,
		CubeceptionDepth:     8,
		MeshScale:            1,
		EnvironmentIntensity: 1,
	}
}

// Intersect returns the closest hit across every primitive list
func (s *Scene) Intersect(ray core.Ray) core.Hit {
	hit := geometry.IntersectAll(s.Spheres, ray)
	hit = core.Closest(hit, geometry.IntersectAll(s.Planes, ray))
	hit = core.Closest(hit, geometry.IntersectAll(s.Boxes, ray))
	if s.BVH != nil {
		hit = core.Closest(hit, s.BVH.Intersect(ray))
	}
	return hit
}

// Sky returns the environment seen by escaping rays
func (s *Scene) Sky() sky.Environment {
	return s.Environment
}

// SetTriangles builds the acceleration structure over the scene's triangles
func (s *Scene) SetTriangles(triangles []geometry.Triangle, logger core.Logger) {
	if len(triangles) == 0 {
		s.BVH = nil
		return
	}
	s.BVH = geometry.BuildBVH(triangles, logger)
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := len(s.Spheres) + len(s.Planes) + len(s.Boxes)
	if s.BVH != nil {
		count += len(s.BVH.Triangles)
	}
	return count
}
