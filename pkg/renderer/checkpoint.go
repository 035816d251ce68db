package renderer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/klauspost/compress/zstd"
)

const checkpointVersion = 1

// MaxCheckpointDimension bounds the width and height a checkpoint may carry
const MaxCheckpointDimension = 16384

var checkpointMagic = [4]byte{'S', 'P', 'T', 'C'}

var (
	// ErrInvalidCheckpoint is returned for data that is not a checkpoint
	ErrInvalidCheckpoint = errors.New("invalid checkpoint")
	// ErrCheckpointMismatch is returned when a checkpoint does not fit the renderer
	ErrCheckpointMismatch = errors.New("checkpoint does not match renderer")
)

// Checkpoint is a saved accumulation state: the camera pose it was
// accumulated from and the per-pixel history.
type Checkpoint struct {
	Width  int
	Height int
	Camera Camera
	Pixels []AccumPixel
}

type checkpointHeader struct {
	Magic   [4]byte
	Version uint32
	Width   uint32
	Height  uint32
	PosX    float64
	PosY    float64
	PosZ    float64
	Yaw     float32
	Pitch   float32
	VFov    float32
	Near    float32
	Far     float32
}

type checkpointPixel struct {
	R, G, B float64
	Age     uint32
}

// SaveCheckpoint writes cp to w as a zstd-compressed little-endian stream
func SaveCheckpoint(w io.Writer, cp *Checkpoint) error {
	if !validCheckpointSize(cp.Width, cp.Height) {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidCheckpoint, cp.Width, cp.Height)
	}
	if len(cp.Pixels) != cp.Width*cp.Height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidCheckpoint, len(cp.Pixels), cp.Width, cp.Height)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint encoder: %w", err)
	}

	header := checkpointHeader{
		Magic:   checkpointMagic,
		Version: checkpointVersion,
		Width:   uint32(cp.Width),
		Height:  uint32(cp.Height),
		PosX:    cp.Camera.Position.X,
		PosY:    cp.Camera.Position.Y,
		PosZ:    cp.Camera.Position.Z,
		Yaw:     cp.Camera.Yaw,
		Pitch:   cp.Camera.Pitch,
		VFov:    cp.Camera.VFov,
		Near:    cp.Camera.Near,
		Far:     cp.Camera.Far,
	}
	if err := binary.Write(enc, binary.LittleEndian, &header); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write checkpoint header: %w", err)
	}

	pixels := make([]checkpointPixel, len(cp.Pixels))
	for i, p := range cp.Pixels {
		pixels[i] = checkpointPixel{R: p.Color.X, G: p.Color.Y, B: p.Color.Z, Age: p.Age}
	}
	if err := binary.Write(enc, binary.LittleEndian, pixels); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write checkpoint pixels: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint written by SaveCheckpoint
func LoadCheckpoint(r io.Reader) (*Checkpoint, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint decoder: %w", err)
	}
	defer dec.Close()

	var header checkpointHeader
	if err := binary.Read(dec, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrInvalidCheckpoint, err)
	}
	if header.Magic != checkpointMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidCheckpoint, header.Magic[:])
	}
	if header.Version != checkpointVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidCheckpoint, header.Version)
	}

	if !validCheckpointSize(int(header.Width), int(header.Height)) {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCheckpoint, header.Width, header.Height)
	}

	pixels := make([]checkpointPixel, int(header.Width)*int(header.Height))
	if err := binary.Read(dec, binary.LittleEndian, pixels); err != nil {
		return nil, fmt.Errorf("%w: reading pixels: %v", ErrInvalidCheckpoint, err)
	}

	cp := &Checkpoint{
		Width:  int(header.Width),
		Height: int(header.Height),
		Camera: Camera{
			Position: core.NewVec3(header.PosX, header.PosY, header.PosZ),
			Yaw:      header.Yaw,
			Pitch:    header.Pitch,
			VFov:     header.VFov,
			Near:     header.Near,
			Far:      header.Far,
		},
		Pixels: make([]AccumPixel, len(pixels)),
	}
	for i, p := range pixels {
		cp.Pixels[i] = AccumPixel{Color: core.NewVec3(p.R, p.G, p.B), Age: p.Age}
	}
	return cp, nil
}

func validCheckpointSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxCheckpointDimension && height <= MaxCheckpointDimension
}

// SaveCheckpointFile writes cp to filename
func SaveCheckpointFile(filename string, cp *Checkpoint) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint %s: %w", filename, err)
	}
	if err := SaveCheckpoint(file, cp); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadCheckpointFile reads a checkpoint from filename
func LoadCheckpointFile(filename string) (*Checkpoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint %s: %w", filename, err)
	}
	defer file.Close()
	return LoadCheckpoint(file)
}

// Checkpoint captures the latest published frame together with the camera
// pose it was rendered from. Camera updates not yet rendered are not included.
func (fr *FrameRenderer) Checkpoint() *Checkpoint {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	pixels, width, height := fr.accum.Snapshot()
	return &Checkpoint{
		Width:  width,
		Height: height,
		Camera: fr.publishedCamera,
		Pixels: pixels,
	}
}

// Resume restores cp at the start of the next frame, which then continues
// the saved history instead of resetting.
func (fr *FrameRenderer) Resume(cp *Checkpoint) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	if cp.Width != fr.pendingWidth || cp.Height != fr.pendingHeight || len(cp.Pixels) != cp.Width*cp.Height {
		return fmt.Errorf("%w: checkpoint is %dx%d, renderer is %dx%d",
			ErrCheckpointMismatch, cp.Width, cp.Height, fr.pendingWidth, fr.pendingHeight)
	}
	fr.pendingResume = cp
	return nil
}
