package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/mrjoshuak/go-openexr/exr"
)

// DisplayGamma is applied when converting linear radiance to 8-bit images
const DisplayGamma = 2.2

// vec3ToColor converts linear radiance to a gamma-corrected 8-bit color
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(DisplayGamma).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}

// Image returns the latest frame as a gamma-corrected 8-bit image
func (a *Accumulator) Image() *image.RGBA {
	pixels, width, height := a.Snapshot()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixels[y*width+x].Color))
		}
	}
	return img
}

// EXRImage returns the latest frame as linear radiance with the frame age in
// the alpha channel.
func (a *Accumulator) EXRImage() *exr.RGBAImage {
	pixels, width, height := a.Snapshot()
	img := exr.NewRGBAImage(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, float32(p.Color.X), float32(p.Color.Y), float32(p.Color.Z), float32(p.Age))
		}
	}
	return img
}

// EncodePNG writes the latest frame as PNG
func (a *Accumulator) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, a.Image()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePNG saves the latest frame to a PNG file
func WritePNG(filename string, a *Accumulator) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()
	return a.EncodePNG(file)
}

// WriteEXR saves the latest frame as half-float OpenEXR with the age in alpha
func WriteEXR(filename string, a *Accumulator) error {
	if err := exr.EncodeFile(filename, a.EXRImage()); err != nil {
		return fmt.Errorf("failed to write EXR %s: %w", filename, err)
	}
	return nil
}

// EncodeEXR writes the latest frame as OpenEXR to a seekable writer
func EncodeEXR(w io.WriteSeeker, a *Accumulator) error {
	if err := exr.Encode(w, a.EXRImage()); err != nil {
		return fmt.Errorf("failed to encode EXR: %w", err)
	}
	return nil
}
