package scene

import (
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/loaders"
)

// newMeshScene puts triangle meshes on a ground plane. With a MeshPath the
// PLY file is loaded and dropped onto the ground, otherwise a box, a pyramid
// and an icosahedron are generated.
func newMeshScene(config Config, logger core.Logger) (*Scene, error) {
	s := &Scene{
		Environment: defaultSky(),
		Camera: CameraSetup{
			Position: core.NewVec3(0, 2, 6),
			LookAt:   core.NewVec3(0, 1, 0),
			VFov:     45,
		},
	}
	s.Planes = append(s.Planes, geometry.NewPlane(core.NewVec3(0, 1, 0), core.Vec3{}, core.Lambertian(core.NewVec3(0.7, 0.7, 0.7))))

	var triangles []geometry.Triangle
	var err error
	if config.MeshPath != "" {
		triangles, err = loadGroundedMesh(config, logger)
	} else {
		triangles, err = proceduralMeshes()
	}
	if err != nil {
		return nil, err
	}

	s.SetTriangles(triangles, logger)
	return s, nil
}

// loadGroundedMesh loads the PLY mesh, centres it on the Y axis and rests it on y=0
func loadGroundedMesh(config Config, logger core.Logger) ([]geometry.Triangle, error) {
	gold := core.Metal(core.NewVec3(1.0, 0.75, 0.2), 0.05)
	triangles, err := loaders.LoadPLYMesh(config.MeshPath, gold, &geometry.MeshOptions{Scale: config.MeshScale}, logger)
	if err != nil {
		return nil, err
	}

	bounds := geometry.MeshBounds(triangles)
	center := bounds.Center()
	offset := core.NewVec3(-center.X, -bounds.Min.Y, -center.Z)
	for i := range triangles {
		triangles[i].A = triangles[i].A.Add(offset)
		triangles[i].B = triangles[i].B.Add(offset)
		triangles[i].C = triangles[i].C.Add(offset)
	}
	return triangles, nil
}

func proceduralMeshes() ([]geometry.Triangle, error) {
	redMetal := core.Metal(core.NewVec3(0.8, 0.2, 0.2), 0.1)
	blueLambertian := core.Lambertian(core.NewVec3(0.2, 0.3, 0.8))
	glass := core.Dielectric(core.NewVec3(1, 1, 1), 0, 1.5)

	var all []geometry.Triangle
	meshes := []struct {
		build func(core.Material, *geometry.MeshOptions) ([]geometry.Triangle, error)
		mat   core.Material
		opts  geometry.MeshOptions
	}{
		{boxMesh, redMetal, geometry.MeshOptions{Rotation: core.NewVec3(0, math.Pi/6, 0), Translation: core.NewVec3(-2, 0.5, 0)}},
		{pyramidMesh, blueLambertian, geometry.MeshOptions{Scale: 1.5, Rotation: core.NewVec3(0, math.Pi/4, 0), Translation: core.NewVec3(0, 0, 0)}},
		{icosahedronMesh, glass, geometry.MeshOptions{Scale: 0.8, Rotation: core.NewVec3(0, math.Pi/3, 0), Translation: core.NewVec3(2, 0.8, 0)}},
	}
	for _, m := range meshes {
		triangles, err := m.build(m.mat, &m.opts)
		if err != nil {
			return nil, err
		}
		all = append(all, triangles...)
	}
	return all, nil
}

// boxMesh is a unit cube centred on the origin
func boxMesh(material core.Material, opts *geometry.MeshOptions) ([]geometry.Triangle, error) {
	vertices := []core.Vec3{
		core.NewVec3(-0.5, -0.5, -0.5), // 0: left-bottom-back
		core.NewVec3(+0.5, -0.5, -0.5), // 1: right-bottom-back
		core.NewVec3(+0.5, +0.5, -0.5), // 2: right-top-back
		core.NewVec3(-0.5, +0.5, -0.5), // 3: left-top-back
		core.NewVec3(-0.5, -0.5, +0.5), // 4: left-bottom-front
		core.NewVec3(+0.5, -0.5, +0.5), // 5: right-bottom-front
		core.NewVec3(+0.5, +0.5, +0.5), // 6: right-top-front
		core.NewVec3(-0.5, +0.5, +0.5), // 7: left-top-front
	}

	// Two triangles per face
	faces := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
	}

	return geometry.NewTriangleMesh(vertices, faces, material, opts)
}

// pyramidMesh is a square pyramid with a unit base resting on y=0
func pyramidMesh(material core.Material, opts *geometry.MeshOptions) ([]geometry.Triangle, error) {
	vertices := []core.Vec3{
		core.NewVec3(-0.5, 0, -0.5), // 0: left-back
		core.NewVec3(+0.5, 0, -0.5), // 1: right-back
		core.NewVec3(+0.5, 0, +0.5), // 2: right-front
		core.NewVec3(-0.5, 0, +0.5), // 3: left-front
		core.NewVec3(0, 4.0/3.0, 0), // 4: apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4, // sides
	}

	return geometry.NewTriangleMesh(vertices, faces, material, opts)
}

// icosahedronMesh is a regular icosahedron with unit circumradius
func icosahedronMesh(material core.Material, opts *geometry.MeshOptions) ([]geometry.Triangle, error) {
	phi := (1 + math.Sqrt(5)) / 2
	s := 1 / math.Sqrt(1+phi*phi)

	vertices := []core.Vec3{
		core.NewVec3(-1, phi, 0).Multiply(s),
		core.NewVec3(1, phi, 0).Multiply(s),
		core.NewVec3(-1, -phi, 0).Multiply(s),
		core.NewVec3(1, -phi, 0).Multiply(s),
		core.NewVec3(0, -1, phi).Multiply(s),
		core.NewVec3(0, 1, phi).Multiply(s),
		core.NewVec3(0, -1, -phi).Multiply(s),
		core.NewVec3(0, 1, -phi).Multiply(s),
		core.NewVec3(phi, 0, -1).Multiply(s),
		core.NewVec3(phi, 0, 1).Multiply(s),
		core.NewVec3(-phi, 0, -1).Multiply(s),
		core.NewVec3(-phi, 0, 1).Multiply(s),
	}

	faces := []int{
		// around vertex 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// around vertex 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return geometry.NewTriangleMesh(vertices, faces, material, opts)
}
