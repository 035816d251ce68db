package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestCamera_LookAtForward(t *testing.T) {
	tests := []struct {
		name   string
		lookAt core.Vec3
	}{
		{"negative z", core.NewVec3(0, 0, -1)},
		{"positive x", core.NewVec3(1, 0, 0)},
		{"up and away", core.NewVec3(1, 1, 1)},
		{"down", core.NewVec3(0.3, -2, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(core.Vec3{}, tt.lookAt, 45)
			expected := tt.lookAt.Normalize()
			if got := camera.Forward(); !vecNear(got, expected, 1e-5) {
				t.Errorf("Expected forward %v, got %v", expected, got)
			}
		})
	}
}

func TestCamera_BasisIsOrthonormal(t *testing.T) {
	camera := NewCamera(core.NewVec3(1, 2, 3), core.NewVec3(-4, 0, 7), 60)
	f, r, u := camera.Forward(), camera.Right(), camera.Up()

	for name, v := range map[string]core.Vec3{"forward": f, "right": r, "up": u} {
		if math.Abs(v.Length()-1) > 1e-5 {
			t.Errorf("Expected unit %s, got length %f", name, v.Length())
		}
	}
	if math.Abs(f.Dot(r)) > 1e-5 || math.Abs(f.Dot(u)) > 1e-5 || math.Abs(r.Dot(u)) > 1e-5 {
		t.Errorf("Expected orthogonal basis, got f=%v r=%v u=%v", f, r, u)
	}
	if u.Y <= 0 {
		t.Errorf("Expected up to point upwards, got %v", u)
	}
	if math.Abs(r.Y) > 1e-6 {
		t.Errorf("Expected horizontal right vector, got %v", r)
	}
}

func TestCamera_RotateClampsPitch(t *testing.T) {
	camera := NewCamera(core.Vec3{}, core.NewVec3(1, 0, 0), 45)

	camera.Rotate(0, 200)
	if camera.Pitch != maxPitch {
		t.Errorf("Expected pitch clamped to %v, got %v", maxPitch, camera.Pitch)
	}
	camera.Rotate(0, -500)
	if camera.Pitch != -maxPitch {
		t.Errorf("Expected pitch clamped to %v, got %v", -maxPitch, camera.Pitch)
	}

	camera.Rotate(370, 0)
	if math.Abs(float64(camera.Yaw)-10) > 1e-4 {
		t.Errorf("Expected yaw wrapped to 10, got %v", camera.Yaw)
	}
}

func TestCamera_MoveStaysHorizontal(t *testing.T) {
	camera := NewCamera(core.Vec3{}, core.NewVec3(1, 1, 0), 45)

	camera.Move(2, 0, 0)
	if !vecNear(camera.Position, core.NewVec3(2, 0, 0), 1e-5) {
		t.Errorf("Expected forward move along +X, got %v", camera.Position)
	}

	camera.Move(0, 1, 3)
	// Right of +X looking forward is +Z in a right-handed frame with +Y up
	if !vecNear(camera.Position, core.NewVec3(2, 3, 1), 1e-5) {
		t.Errorf("Expected (2,3,1), got %v", camera.Position)
	}
}
