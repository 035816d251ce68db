package scene

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/sky"
)

// newSphereScene is a single grey unit sphere at the origin seen from +Z
func newSphereScene(config Config, logger core.Logger) (*Scene, error) {
	return &Scene{
		Spheres:     []geometry.Sphere{geometry.NewSphere(core.Vec3{}, 1, core.Lambertian(core.NewVec3(0.8, 0.8, 0.8)))},
		Environment: sky.NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)),
		Camera: CameraSetup{
			Position: core.NewVec3(0, 0, 5),
			LookAt:   core.Vec3{},
			VFov:     45,
		},
	}, nil
}

// newCornellScene creates a classic Cornell box with slab walls and an
// emissive panel under the ceiling. The sky is black.
func newCornellScene(config Config, logger core.Logger) (*Scene, error) {
	white := core.Lambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := core.Lambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := core.Lambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := core.Lambertian(core.Vec3{}).Emissive(core.NewVec3(15, 15, 15))

	// Standard 555 unit box, walls are 10 units thick
	const size = 555.0
	const wall = 10.0

	s := &Scene{
		Camera: CameraSetup{
			Position: core.NewVec3(278, 278, -800),
			LookAt:   core.NewVec3(278, 278, 0),
			VFov:     40,
		},
	}

	s.Boxes = append(s.Boxes,
		geometry.NewBox(core.NewVec3(0, -wall, 0), core.NewVec3(size, 0, size), white),        // floor
		geometry.NewBox(core.NewVec3(0, size, 0), core.NewVec3(size, size+wall, size), white), // ceiling
		geometry.NewBox(core.NewVec3(0, 0, size), core.NewVec3(size, size, size+wall), white), // back
		geometry.NewBox(core.NewVec3(-wall, 0, 0), core.NewVec3(0, size, size), red),          // left
		geometry.NewBox(core.NewVec3(size, 0, 0), core.NewVec3(size+wall, size, size), green), // right
		geometry.NewBox(core.NewVec3(212.5, size-1, 212.5), core.NewVec3(342.5, size, 342.5), light),
	)

	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, core.Metal(core.NewVec3(0.8, 0.8, 0.9), 0)),
		geometry.NewSphere(core.NewVec3(370, 90, 351), 90, core.Dielectric(core.NewVec3(1, 1, 1), 0, 1.5)),
	)

	return s, nil
}
