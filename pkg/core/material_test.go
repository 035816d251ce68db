package core

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRandomMaterial_Ranges(t *testing.T) {
	random := rand.New(rand.NewPCG(11, 3))
	seen := map[MaterialType]bool{}
	for i := 0; i < 500; i++ {
		m := RandomMaterial(random)
		seen[m.Type] = true
		if m.Type == MaterialVolume {
			t.Fatal("RandomMaterial must not produce volumes")
		}
		if m.Roughness < 0 || m.Roughness >= 1 {
			t.Errorf("Roughness out of range: %f", m.Roughness)
		}
		if m.IOR < math.Sqrt(0.5) || m.IOR >= math.Sqrt(3) {
			t.Errorf("IOR out of range: %f", m.IOR)
		}
		if m.IsEmissive() && (m.Emission.X < 1 || m.Emission.X >= 10) {
			t.Errorf("Emission out of range: %v", m.Emission)
		}
	}
	if len(seen) != 3 {
		t.Errorf("Expected all three surface types, saw %v", seen)
	}
}

func TestMaterialConstructors(t *testing.T) {
	m := Metal(NewVec3(1, 1, 1), 2)
	if m.Roughness != 1 || m.Type != MaterialMetal {
		t.Errorf("Metal roughness should clamp to 1: %+v", m)
	}
	d := Dielectric(NewVec3(1, 1, 1), 0, 1.5).Emissive(NewVec3(2, 0, 0))
	if d.IOR != 1.5 || !d.IsEmissive() {
		t.Errorf("Unexpected dielectric %+v", d)
	}
	if MaterialVolume.String() != "volume" {
		t.Errorf("Unexpected name %q", MaterialVolume.String())
	}
}
