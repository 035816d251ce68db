package scene

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/sky"
)

// defaultSky is the blue-to-white gradient used by the outdoor scenes
func defaultSky() sky.Environment {
	return sky.NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// uniform returns a sample in [lo, hi]
func uniform(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}

// newRandomScene scatters one sphere or box per cell of a 5x5 grid over a
// white floor covered by a thin rough glass layer.
func newRandomScene(config Config, logger core.Logger) (*Scene, error) {
	random := rand.New(rand.NewPCG(config.Seed, 0))

	s := &Scene{
		Environment: defaultSky(),
		Camera: CameraSetup{
			Position: core.NewVec3(0, 4, 24),
			LookAt:   core.NewVec3(0, 1, 0),
			VFov:     45,
		},
	}

	s.Planes = append(s.Planes,
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -geometry.PadThickness*2.5, 0), core.Lambertian(core.NewVec3(1, 1, 1))),
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.Vec3{}, core.Dielectric(core.NewVec3(1, 1, 1), 0.1, 1.05)),
	)

	const regionSize = 7.0
	const regionsRadius = 2
	maxOffset := regionSize / 2 * 0.8
	minRadius := regionSize / 2 * 0.2

	for gx := -regionsRadius; gx <= regionsRadius; gx++ {
		for gz := -regionsRadius; gz <= regionsRadius; gz++ {
			x := float64(gx) * regionSize
			z := float64(gz) * regionSize

			offsetX := uniform(random, -maxOffset, maxOffset)
			offsetZ := uniform(random, -maxOffset, maxOffset)
			maxRadius := maxOffset - math.Max(math.Abs(offsetX), math.Abs(offsetZ))
			randRadius := func() float64 {
				return math.Sqrt(math.Max(uniform(random, 0, maxRadius), minRadius))
			}

			if random.IntN(2) == 0 {
				radius := randRadius()
				center := core.NewVec3(x+offsetX, radius, z+offsetZ)
				s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, core.RandomMaterial(random)).Pad())
			} else {
				rx, ry, rz := randRadius(), randRadius(), randRadius()
				s.Boxes = append(s.Boxes, geometry.NewBox(
					core.NewVec3(x+offsetX-rx, 0, z+offsetZ-rz),
					core.NewVec3(x+offsetX+rx, 2*ry, z+offsetZ+rz),
					core.RandomMaterial(random),
				).Pad())
			}
		}
	}

	return s, nil
}

// newCubeceptionScene nests alternating glass boxes and spheres. Each sphere
// is inscribed in the previous box and the next box is inscribed in it.
func newCubeceptionScene(config Config, logger core.Logger) (*Scene, error) {
	s := &Scene{
		Environment: defaultSky(),
		Camera: CameraSetup{
			Position: core.NewVec3(4, 5, 9),
			LookAt:   core.NewVec3(0, 2.5, 0),
			VFov:     45,
		},
	}
	s.Planes = append(s.Planes, geometry.NewPlane(core.NewVec3(0, 1, 0), core.Vec3{}, core.Lambertian(core.NewVec3(0.7, 0.7, 0.7))))

	AddCubeception(s, core.NewVec3(1, 1, 1), core.NewVec3(0, 2.5, 0), 2, 1.5, config.CubeceptionDepth)
	return s, nil
}

// AddCubeception appends depth nested dielectric shells around position,
// starting with a box of half-size radius.
func AddCubeception(s *Scene, albedo, position core.Vec3, radius, ior float64, depth int) {
	m := core.Dielectric(albedo, 0, ior)
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			s.Boxes = append(s.Boxes, geometry.NewCenteredBox(position, core.NewVec3(radius, radius, radius), m))
		} else {
			s.Spheres = append(s.Spheres, geometry.NewSphere(position, radius, m))
			radius /= math.Sqrt(3)
		}
	}
}

// newSpheresScene places unit spheres with random materials in a flattened
// cloud around a large diffuse sphere.
func newSpheresScene(config Config, logger core.Logger) (*Scene, error) {
	random := rand.New(rand.NewPCG(config.Seed, 1))

	s := &Scene{
		Environment: defaultSky(),
		Camera: CameraSetup{
			Position: core.NewVec3(0, 10, 60),
			LookAt:   core.NewVec3(0, 10, 0),
			VFov:     45,
		},
	}

	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 30, 0), 5, core.Lambertian(core.NewVec3(0.5, 1.0, 0.2))))

	const spread = 20.0
	for i := 0; i < config.SphereCount; i++ {
		center := core.NewVec3(
			uniform(random, -spread, spread),
			uniform(random, -spread, spread),
			uniform(random, -spread*0.25, spread*0.25),
		)
		s.Spheres = append(s.Spheres, geometry.NewSphere(center, 1, core.RandomMaterial(random)))
	}

	return s, nil
}
