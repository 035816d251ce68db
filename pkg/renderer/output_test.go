package renderer

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/mrjoshuak/go-openexr/exr"
)

func filledAccumulator(width, height int) *Accumulator {
	accum := NewAccumulator(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			accum.Resolve(x, y, core.NewVec3(float64(x), 0.5, 4), true)
		}
	}
	accum.Swap()
	for x := 0; x < width; x++ {
		accum.Resolve(x, 0, core.NewVec3(float64(x), 0.5, 4), false)
	}
	return accum
}

func TestWriteEXR_AgeInAlpha(t *testing.T) {
	accum := filledAccumulator(4, 2)
	// Second frame only touched row 0
	accum.Swap()

	path := filepath.Join(t.TempDir(), "frame.exr")
	if err := WriteEXR(path, accum); err != nil {
		t.Fatalf("Failed to write EXR: %v", err)
	}

	file, err := exr.OpenRGBAInputFile(path)
	if err != nil {
		t.Fatalf("Failed to open EXR: %v", err)
	}
	defer file.Close()
	img, err := file.ReadRGBA()
	if err != nil {
		t.Fatalf("Failed to read EXR: %v", err)
	}

	for x := 0; x < 4; x++ {
		r, g, b, a := img.RGBA(x, 0)
		if a != 2 {
			t.Errorf("Pixel (%d,0): expected age 2 in alpha, got %v", x, a)
		}
		if math.Abs(float64(r)-float64(x)) > 1e-3 || math.Abs(float64(g)-0.5) > 1e-3 || math.Abs(float64(b)-4) > 1e-3 {
			t.Errorf("Pixel (%d,0): expected linear (%d,0.5,4), got (%v,%v,%v)", x, x, r, g, b)
		}
	}
	// Row 1 was not resolved in the second frame so its slot holds no history
	if _, _, _, a := img.RGBA(0, 1); a != 0 {
		t.Errorf("Expected unresolved pixel age 0, got %v", a)
	}
}

func TestWritePNG(t *testing.T) {
	accum := filledAccumulator(3, 2)
	accum.Swap()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, accum); err != nil {
		t.Fatalf("Failed to write PNG: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Expected 3x2, got %v", b)
	}

	// Black stays black, values above 1 clamp to white, 0.5 is gamma encoded
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("Expected red 0 and clamped blue, got r=%d b=%d", r, b)
	}
	expectedG := uint32(255*math.Pow(0.5, 1/DisplayGamma)+0.5) * 0x101
	if g != expectedG {
		t.Errorf("Expected gamma-encoded green %d, got %d", expectedG, g)
	}
}
