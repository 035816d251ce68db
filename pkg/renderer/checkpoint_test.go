package renderer

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/klauspost/compress/zstd"
)

func TestCheckpoint_RoundTrip(t *testing.T) {
	cp := &Checkpoint{
		Width:  2,
		Height: 1,
		Camera: Camera{Position: core.NewVec3(1, 2, 3), Yaw: -90, Pitch: 12.5, VFov: 40, Near: 0.1, Far: 1000},
		Pixels: []AccumPixel{
			{Color: core.NewVec3(0.25, 1e6, -0), Age: 3},
			{Color: core.NewVec3(0.5, 0.125, 2), Age: 4000000000},
		},
	}

	var buf bytes.Buffer
	if err := SaveCheckpoint(&buf, cp); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	got, err := LoadCheckpoint(&buf)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if got.Width != cp.Width || got.Height != cp.Height || got.Camera != cp.Camera {
		t.Errorf("Expected %+v, got %+v", cp, got)
	}
	for i := range cp.Pixels {
		if got.Pixels[i] != cp.Pixels[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, cp.Pixels[i], got.Pixels[i])
		}
	}
}

func TestCheckpoint_Invalid(t *testing.T) {
	t.Run("not zstd", func(t *testing.T) {
		_, err := LoadCheckpoint(bytes.NewReader([]byte("definitely not a checkpoint")))
		if err == nil {
			t.Fatal("Expected error for garbage input")
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		enc.Write(bytes.Repeat([]byte{'X'}, 128))
		enc.Close()

		_, err = LoadCheckpoint(&buf)
		if !errors.Is(err, ErrInvalidCheckpoint) {
			t.Errorf("Expected ErrInvalidCheckpoint, got %v", err)
		}
	})

	for _, size := range [][2]uint32{{0xFFFFFFFF, 0xFFFFFFFF}, {0, 4}, {MaxCheckpointDimension + 1, 1}} {
		t.Run(fmt.Sprintf("header size %dx%d", size[0], size[1]), func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := zstd.NewWriter(&buf)
			if err != nil {
				t.Fatal(err)
			}
			header := checkpointHeader{Magic: checkpointMagic, Version: checkpointVersion, Width: size[0], Height: size[1]}
			if err := binary.Write(enc, binary.LittleEndian, &header); err != nil {
				t.Fatal(err)
			}
			enc.Close()

			_, err = LoadCheckpoint(&buf)
			if !errors.Is(err, ErrInvalidCheckpoint) {
				t.Errorf("Expected ErrInvalidCheckpoint, got %v", err)
			}
		})
	}

	t.Run("truncated pixels", func(t *testing.T) {
		var buf bytes.Buffer
		cp := &Checkpoint{Width: 4, Height: 4, Pixels: make([]AccumPixel, 16)}
		if err := SaveCheckpoint(&buf, cp); err != nil {
			t.Fatal(err)
		}
		var raw bytes.Buffer
		dec, err := zstd.NewReader(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := raw.ReadFrom(dec); err != nil {
			t.Fatal(err)
		}
		dec.Close()

		var truncated bytes.Buffer
		enc, err := zstd.NewWriter(&truncated)
		if err != nil {
			t.Fatal(err)
		}
		enc.Write(raw.Bytes()[:raw.Len()/2])
		enc.Close()

		_, err = LoadCheckpoint(&truncated)
		if !errors.Is(err, ErrInvalidCheckpoint) {
			t.Errorf("Expected ErrInvalidCheckpoint, got %v", err)
		}
	})

	t.Run("empty image", func(t *testing.T) {
		err := SaveCheckpoint(&bytes.Buffer{}, &Checkpoint{})
		if !errors.Is(err, ErrInvalidCheckpoint) {
			t.Errorf("Expected ErrInvalidCheckpoint, got %v", err)
		}
	})

	t.Run("pixel count", func(t *testing.T) {
		err := SaveCheckpoint(&bytes.Buffer{}, &Checkpoint{Width: 2, Height: 2, Pixels: make([]AccumPixel, 3)})
		if !errors.Is(err, ErrInvalidCheckpoint) {
			t.Errorf("Expected ErrInvalidCheckpoint, got %v", err)
		}
	})
}

func TestFrameRenderer_ResumeFromCheckpoint(t *testing.T) {
	ctx := context.Background()
	first := newTestFrameRenderer(t, 12, 8)
	first.UpdateCamera(func(c *Camera) { c.Rotate(5, 0) })
	for i := 0; i < 2; i++ {
		if _, err := first.RenderFrame(ctx); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "render.ckpt")
	if err := SaveCheckpointFile(path, first.Checkpoint()); err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}
	cp, err := LoadCheckpointFile(path)
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}

	second := newTestFrameRenderer(t, 12, 8)
	if err := second.Resume(cp); err != nil {
		t.Fatalf("Failed to resume: %v", err)
	}
	result, err := second.RenderFrame(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Reset || result.Stats.MinAge != 3 {
		t.Errorf("Expected resumed history to continue at age 3, got reset=%t min age %d", result.Reset, result.Stats.MinAge)
	}
	if second.Camera() != first.Camera() {
		t.Errorf("Expected resumed camera %+v, got %+v", first.Camera(), second.Camera())
	}
}

func TestFrameRenderer_CheckpointKeepsRenderedPose(t *testing.T) {
	ctx := context.Background()
	fr := newTestFrameRenderer(t, 12, 8)
	for i := 0; i < 2; i++ {
		if _, err := fr.RenderFrame(ctx); err != nil {
			t.Fatal(err)
		}
	}
	rendered := fr.Camera()

	// Queued but not yet rendered
	fr.UpdateCamera(func(c *Camera) { c.Move(1, 0, 0) })
	cp := fr.Checkpoint()
	if cp.Camera != rendered {
		t.Errorf("Expected checkpoint pose %+v, got %+v", rendered, cp.Camera)
	}

	if _, err := fr.RenderFrame(ctx); err != nil {
		t.Fatal(err)
	}
	if cp := fr.Checkpoint(); cp.Camera != fr.Camera() {
		t.Errorf("Expected checkpoint to follow the rendered move, got %+v", cp.Camera)
	}
}

func TestFrameRenderer_ResumeMismatch(t *testing.T) {
	fr := newTestFrameRenderer(t, 12, 8)
	err := fr.Resume(&Checkpoint{Width: 8, Height: 8, Pixels: make([]AccumPixel, 64)})
	if !errors.Is(err, ErrCheckpointMismatch) {
		t.Errorf("Expected ErrCheckpointMismatch, got %v", err)
	}
}
