package integrator

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/geometry"
	"github.com/df07/go-spectral-pathtracer/pkg/sky"
	"gonum.org/v1/gonum/stat"
)

// testScene is a minimal Scene over a list of spheres and planes
type testScene struct {
	spheres []geometry.Sphere
	planes  []geometry.Plane
	env     sky.Environment
}

func (s *testScene) Intersect(ray core.Ray) core.Hit {
	return core.Closest(geometry.IntersectAll(s.spheres, ray), geometry.IntersectAll(s.planes, ray))
}

func (s *testScene) Sky() sky.Environment {
	return s.env
}

func newSampler(seed uint64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewPCG(seed, 7)))
}

// furnace is the inside of a sphere that both emits and reflects: every bounce
// adds emission·albedo^k, independent of direction.
func furnace(albedo, emission float64) *testScene {
	m := core.Lambertian(core.NewVec3(albedo, albedo, albedo)).Emissive(core.NewVec3(emission, emission, emission))
	return &testScene{spheres: []geometry.Sphere{geometry.NewSphere(core.Vec3{}, 1, m)}}
}

func TestTrace_Furnace(t *testing.T) {
	scene := furnace(0.5, 1)
	pt := NewPathTracer(Config{DisableRussianRoulette: true})
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	tests := []struct {
		bounces  int
		expected float64
	}{
		{0, 0},
		{1, 1},
		{2, 1.5},
		{5, 1.9375},
	}
	for _, tt := range tests {
		got := pt.Trace(ray, scene, 550, tt.bounces, newSampler(1))
		if math.Abs(got-tt.expected) > 1e-4 {
			t.Errorf("%d bounces: expected %f, got %f", tt.bounces, tt.expected, got)
		}
	}
}

func TestTrace_RussianRouletteUnbiased(t *testing.T) {
	scene := furnace(0.5, 1)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	const bounces = 5
	expected := NewPathTracer(Config{DisableRussianRoulette: true}).Trace(ray, scene, 550, bounces, newSampler(1))

	pt := NewPathTracer(Config{})
	sampler := newSampler(2)
	samples := make([]float64, 40000)
	terminatedEarly := false
	for i := range samples {
		samples[i] = pt.Trace(ray, scene, 550, bounces, sampler)
		if samples[i] != expected {
			terminatedEarly = true
		}
	}

	mean, std := stat.MeanStdDev(samples, nil)
	stdErr := std / math.Sqrt(float64(len(samples)))
	if !terminatedEarly {
		t.Fatal("Russian roulette never changed a path")
	}
	if math.Abs(mean-expected) > 4*stdErr {
		t.Errorf("Biased estimate: mean %f ± %f, expected %f", mean, stdErr, expected)
	}
}

func TestTrace_MissReturnsSky(t *testing.T) {
	scene := &testScene{env: sky.NewUniform(core.NewVec3(2, 2, 2))}
	pt := NewPathTracer(DefaultConfig())
	got := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), scene, 600, 5, newSampler(3))
	if math.Abs(got-2) > 1e-3 {
		t.Errorf("Expected sky radiance 2, got %f", got)
	}

	scene.env = nil
	if got := pt.Trace(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), scene, 600, 5, newSampler(3)); got != 0 {
		t.Errorf("Expected black without a sky, got %f", got)
	}
}

func TestTrace_DiffuseGroundUnderUniformSky(t *testing.T) {
	// One bounce off an infinite grey floor sees only sky: L = albedo · sky
	scene := &testScene{
		planes: []geometry.Plane{geometry.NewPlane(core.NewVec3(0, 1, 0), core.Vec3{}, core.Lambertian(core.NewVec3(0.5, 0.5, 0.5)))},
		env:    sky.NewUniform(core.NewVec3(1, 1, 1)),
	}
	pt := NewPathTracer(Config{DisableRussianRoulette: true})
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.3, -1, 0.1).Normalize())
	sampler := newSampler(4)
	for i := 0; i < 100; i++ {
		if got := pt.Trace(ray, scene, 500, 10, sampler); math.Abs(got-0.5) > 1e-3 {
			t.Fatalf("Expected 0.5, got %f", got)
		}
	}
}

func TestEstimate_WhiteSkyIsWhite(t *testing.T) {
	scene := &testScene{env: sky.NewUniform(core.NewVec3(1, 1, 1))}
	pt := NewPathTracer(DefaultConfig())
	sampler := newSampler(5)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	const n = 200000
	r, g, b := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		c := pt.Estimate(ray, scene, sampler, false)
		r[i], g[i], b[i] = c.X, c.Y, c.Z
	}
	mean := core.NewVec3(stat.Mean(r, nil), stat.Mean(g, nil), stat.Mean(b, nil))
	if mean.Subtract(core.NewVec3(1, 1, 1)).Length() > 0.05 {
		t.Errorf("Expected white, got %v", mean)
	}
}

func TestBounces(t *testing.T) {
	pt := NewPathTracer(DefaultConfig())
	if pt.Bounces(false) != 5 || pt.Bounces(true) != 100 {
		t.Errorf("Unexpected bounce limits %d/%d", pt.Bounces(false), pt.Bounces(true))
	}
}

func TestRussianRoulette(t *testing.T) {
	sampler := newSampler(6)
	if ok, _ := russianRoulette(0, sampler); ok {
		t.Error("Zero throughput must terminate")
	}
	if ok, c := russianRoulette(3, sampler); !ok || c != 1 {
		t.Errorf("Throughput above one always survives uncompensated, got %v %f", ok, c)
	}
}
