package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.Scene != "random" || opts.Width != 640 || opts.Height != 360 {
		t.Errorf("Unexpected defaults %+v", opts)
	}
	if opts.Integrator.MovingBounces != 5 || opts.Integrator.StationaryBounces != 100 {
		t.Errorf("Unexpected bounce defaults %+v", opts.Integrator)
	}

	opts, err = parseFlags([]string{"-scene", "cornell", "-width", "32", "-height", "24", "-frames", "3",
		"-seed", "7", "-no-rr", "-env", "sky.exr", "-env-intensity", "2", "-mesh", "bunny.ply"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if opts.Scene != "cornell" || opts.Width != 32 || opts.Height != 24 || opts.FrameCfg.Frames != 3 {
		t.Errorf("Unexpected options %+v", opts)
	}
	if opts.SceneCfg.Seed != 7 || opts.FrameCfg.Seed != 7 || !opts.Integrator.DisableRussianRoulette {
		t.Errorf("Expected seed 7 and Russian roulette disabled, got %+v", opts)
	}
	if opts.SceneCfg.EnvironmentPath != "sky.exr" || opts.SceneCfg.EnvironmentIntensity != 2 || opts.SceneCfg.MeshPath != "bunny.ply" {
		t.Errorf("Unexpected scene config %+v", opts.SceneCfg)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := [][]string{
		{"-width", "0"},
		{"-height", "20000"},
		{"-frames", "-1"},
		{"-tile-size", "0"},
		{"-moving-bounces", "0"},
		{"-width", "wide"},
	}
	for _, args := range tests {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}
	for _, id := range scene.IDs() {
		tests = append(tests, struct {
			name        string
			sceneType   string
			expectError bool
		}{id + " scene", id, false})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _ := parseFlags(nil)
			opts.Scene = tt.sceneType
			s, err := createScene(opts, core.NopLogger{})

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for '%s', got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Errorf("Expected primitives in scene '%s'", tt.sceneType)
			}
		})
	}
}

func TestRun_WritesOutputsAndResumes(t *testing.T) {
	dir := t.TempDir()
	checkpoint := filepath.Join(dir, "sphere.ckpt")

	opts, err := parseFlags([]string{"-scene", "sphere", "-width", "16", "-height", "12", "-frames", "2",
		"-output", dir, "-checkpoint", checkpoint, "-moving-bounces", "2", "-stationary-bounces", "3"})
	if err != nil {
		t.Fatal(err)
	}

	written, err := run(context.Background(), opts, core.NopLogger{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("Expected PNG, EXR and checkpoint, got %v", written)
	}
	for _, name := range written {
		info, err := os.Stat(name)
		if err != nil || info.Size() == 0 {
			t.Errorf("Expected non-empty %s: %v", name, err)
		}
	}

	cp, err := renderer.LoadCheckpointFile(checkpoint)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range cp.Pixels {
		if p.Age != 2 {
			t.Fatalf("Pixel %d: expected age 2 after two frames, got %d", i, p.Age)
		}
	}

	// Resuming continues the saved history
	opts.Resume = checkpoint
	if _, err := run(context.Background(), opts, core.NopLogger{}); err != nil {
		t.Fatalf("Resumed render failed: %v", err)
	}
	cp, err = renderer.LoadCheckpointFile(checkpoint)
	if err != nil {
		t.Fatal(err)
	}
	if cp.Pixels[0].Age != 4 {
		t.Errorf("Expected age 4 after resuming for two frames, got %d", cp.Pixels[0].Age)
	}
}

func TestRun_ResumeSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	checkpoint := filepath.Join(dir, "small.ckpt")
	err := renderer.SaveCheckpointFile(checkpoint, &renderer.Checkpoint{
		Width:  2,
		Height: 2,
		Camera: renderer.Camera{VFov: 45, Near: 0.1, Far: 1000},
		Pixels: make([]renderer.AccumPixel, 4),
	})
	if err != nil {
		t.Fatal(err)
	}

	opts, _ := parseFlags([]string{"-scene", "sphere", "-width", "8", "-height", "8", "-frames", "1",
		"-output", dir, "-resume", checkpoint})
	if _, err := run(context.Background(), opts, core.NopLogger{}); !errors.Is(err, renderer.ErrCheckpointMismatch) {
		t.Errorf("Expected ErrCheckpointMismatch, got %v", err)
	}
}
