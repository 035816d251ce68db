package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

var grey = core.Lambertian(core.NewVec3(0.8, 0.8, 0.8))

type intersector interface {
	Intersect(core.Ray) core.Hit
}

// checkHitInvariants verifies the properties every successful hit must satisfy
func checkHitInvariants(t *testing.T, ray core.Ray, hit core.Hit) {
	t.Helper()
	if !hit.Success {
		return
	}
	if hit.Distance < MinHitDistance {
		t.Errorf("Distance %f below MinHitDistance", hit.Distance)
	}
	// Distance equals |P - O| for unit directions
	if d := hit.Position.Subtract(ray.Origin).Length(); math.Abs(d-hit.Distance) > 1e-6 {
		t.Errorf("Distance %f does not match |P-O| = %f", hit.Distance, d)
	}
	if dot := hit.Normal.Dot(ray.Direction); dot > 1e-9 {
		t.Errorf("Normal %v does not oppose ray direction %v (dot=%f)", hit.Normal, ray.Direction, dot)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Normal %v is not unit length", hit.Normal)
	}
	if hit.FarDistance < hit.Distance {
		t.Errorf("FarDistance %f before Distance %f", hit.FarDistance, hit.Distance)
	}
}

func TestSphere_UnitSphereScenario(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, grey)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit := sphere.Intersect(ray)
	if !hit.Success {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.FrontFace {
		t.Error("Expected front face")
	}
	if math.Abs(hit.Distance-4) > 1e-9 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if math.Abs(hit.FarDistance-6) > 1e-9 {
		t.Errorf("Expected far distance 6, got %f", hit.FarDistance)
	}
	if hit.Material.Albedo != grey.Albedo {
		t.Errorf("Material not copied into hit: %+v", hit.Material)
	}
}

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, grey)

	tests := []struct {
		name           string
		ray            core.Ray
		hit            bool
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			ray:            core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1)),
			hit:            true,
			expectedT:      1,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			hit:            true,
			expectedT:      1,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name: "miss",
			ray:  core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)),
		},
		{
			name: "behind origin",
			ray:  core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := sphere.Intersect(tt.ray)
			if hit.Success != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit.Success)
			}
			if !tt.hit {
				return
			}
			checkHitInvariants(t, tt.ray, hit)
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Pad(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 1, 0), 1, grey).Pad()
	if math.Abs(s.Radius-(1-PadThickness)) > 1e-15 {
		t.Errorf("Expected padded radius, got %f", s.Radius)
	}
}

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), grey)

	tests := []struct {
		name          string
		ray           core.Ray
		hit           bool
		expectedT     float64
		expectedFront bool
	}{
		{"From above", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), true, 2, true},
		{"From below", core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)), true, 2, false},
		{"Parallel", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"Pointing away", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := plane.Intersect(tt.ray)
			if hit.Success != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit.Success)
			}
			if !tt.hit {
				return
			}
			checkHitInvariants(t, tt.ray, hit)
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 || hit.FrontFace != tt.expectedFront {
				t.Errorf("Got t=%f front=%v", hit.Distance, hit.FrontFace)
			}
		})
	}
}

func TestBox_Intersect(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), grey)

	tests := []struct {
		name           string
		ray            core.Ray
		hit            bool
		expectedT      float64
		expectedFar    float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"Entry +z face", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), true, 4, 6, true, core.NewVec3(0, 0, 1)},
		{"Entry -x face", core.NewRay(core.NewVec3(-4, 0.2, 0.3), core.NewVec3(1, 0, 0)), true, 3, 5, true, core.NewVec3(-1, 0, 0)},
		{"Exit from inside", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), true, 1, 1, false, core.NewVec3(0, -1, 0)},
		{"Miss", core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)), false, 0, 0, false, core.Vec3{}},
		{"Behind", core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), false, 0, 0, false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := box.Intersect(tt.ray)
			if hit.Success != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit.Success)
			}
			if !tt.hit {
				return
			}
			checkHitInvariants(t, tt.ray, hit)
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 || math.Abs(hit.FarDistance-tt.expectedFar) > 1e-9 {
				t.Errorf("Got t=%f far=%f", hit.Distance, hit.FarDistance)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestTriangle_Intersect(t *testing.T) {
	tri := Triangle{
		A: core.NewVec3(-1, -1, 0), B: core.NewVec3(1, -1, 0), C: core.NewVec3(0, 1, 0),
		UVA: core.NewVec2(0, 0), UVB: core.NewVec2(1, 0), UVC: core.NewVec2(0.5, 1),
		Material: grey,
	}

	tests := []struct {
		name          string
		ray           core.Ray
		hit           bool
		expectedT     float64
		expectedFront bool
	}{
		{"Front", core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1)), true, 3, true},
		{"Back", core.NewRay(core.NewVec3(0, 0, -2), core.NewVec3(0, 0, 1)), true, 2, false},
		{"Outside barycentric", core.NewRay(core.NewVec3(0.9, 0.9, 3), core.NewVec3(0, 0, -1)), false, 0, false},
		{"Parallel", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := tri.Intersect(tt.ray)
			if hit.Success != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit.Success)
			}
			if !tt.hit {
				return
			}
			checkHitInvariants(t, tt.ray, hit)
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 || hit.FrontFace != tt.expectedFront {
				t.Errorf("Got t=%f front=%v", hit.Distance, hit.FrontFace)
			}
		})
	}
}

// The hit UV is the first vertex's UV regardless of where the triangle is hit.
// Barycentric interpolation is intentionally not performed.
func TestTriangle_UVIsFirstVertex(t *testing.T) {
	tri := Triangle{
		A: core.NewVec3(-1, -1, 0), B: core.NewVec3(1, -1, 0), C: core.NewVec3(0, 1, 0),
		UVA: core.NewVec2(0.1, 0.2), UVB: core.NewVec2(1, 0), UVC: core.NewVec2(0.5, 1),
	}
	for _, p := range []core.Vec3{core.NewVec3(0.8, -0.9, 3), core.NewVec3(0, 0.8, 3)} {
		hit := tri.Intersect(core.NewRay(p, core.NewVec3(0, 0, -1)))
		if !hit.Success || hit.UV != tri.UVA {
			t.Errorf("Expected UV %v at %v, got %v", tri.UVA, p, hit.UV)
		}
	}

	untextured := NewTriangle(tri.A, tri.B, tri.C, grey)
	if hit := untextured.Intersect(core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))); hit.HasUV() {
		t.Errorf("Untextured triangle should report the UV sentinel, got %v", hit.UV)
	}
}

func TestPrimitives_RandomRayInvariants(t *testing.T) {
	random := rand.New(rand.NewPCG(3, 14))
	prims := []intersector{
		NewSphere(core.NewVec3(0.3, -0.2, 0.1), 1.2, grey),
		NewPlane(core.NewVec3(0.2, 1, -0.3), core.NewVec3(0, -0.5, 0), grey),
		NewBox(core.NewVec3(-1, -0.5, -2), core.NewVec3(0.5, 1, 0.7), grey),
		NewTriangle(core.NewVec3(-2, -1, 0), core.NewVec3(2, -1, 0.5), core.NewVec3(0, 2, -0.5), grey),
	}

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.NewVec3(random.Float64()*8-4, random.Float64()*8-4, random.Float64()*8-4)
		target := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := core.NewRay(origin, target.Subtract(origin).Normalize())
		for _, p := range prims {
			hit := p.Intersect(ray)
			if hit.Success {
				hits++
			}
			checkHitInvariants(t, ray, hit)
		}
	}
	if hits == 0 {
		t.Fatal("Expected some hits")
	}
}

func TestIntersectAll_MergeOrderIndependent(t *testing.T) {
	spheres := []Sphere{
		NewSphere(core.NewVec3(0, 0, -10), 1, grey),
		NewSphere(core.NewVec3(0, 0, -5), 1, grey),
		NewSphere(core.NewVec3(0, 0, -20), 1, grey),
	}
	reversed := []Sphere{spheres[2], spheres[1], spheres[0]}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	a := IntersectAll(spheres, ray)
	b := IntersectAll(reversed, ray)
	if !a.Success || a.Distance != 4 || b.Distance != a.Distance {
		t.Errorf("Expected distance 4 in both orders, got %f and %f", a.Distance, b.Distance)
	}
}
