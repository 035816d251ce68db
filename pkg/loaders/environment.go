package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-spectral-pathtracer/pkg/sky"
	"github.com/mrjoshuak/go-openexr/exr"
)

// LoadEnvironment loads an environment map for the sky. OpenEXR files keep
// their linear values and envmap layout (lat-long or cube). PNG and JPEG
// files are treated as sRGB lat-long panoramas.
func LoadEnvironment(filename string, intensity float64) (*sky.EnvMap, error) {
	var img *exr.EnvMapImage
	var err error

	if strings.EqualFold(filepath.Ext(filename), ".exr") {
		img, err = loadEXREnvironment(filename)
	} else {
		img, err = loadImageEnvironment(filename)
	}
	if err != nil {
		return nil, err
	}

	return sky.NewEnvMap(img, intensity), nil
}

func loadEXREnvironment(filename string) (*exr.EnvMapImage, error) {
	input, err := exr.OpenRGBAInputFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open EXR file: %w", err)
	}
	defer input.Close()

	pixels, err := input.ReadRGBA()
	if err != nil {
		return nil, fmt.Errorf("failed to read EXR pixels: %w", err)
	}

	bounds := pixels.Bounds()
	env := exr.NewEnvMapImage(input.Header().Envmap(), bounds.Dx(), bounds.Dy())
	for y := 0; y < env.Height; y++ {
		for x := 0; x < env.Width; x++ {
			r, g, b, a := pixels.RGBA(x+bounds.Min.X, y+bounds.Min.Y)
			env.Set(x, y, exr.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return env, nil
}

func loadImageEnvironment(filename string) (*exr.EnvMapImage, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return ImageToEnvMap(img), nil
}

// ImageToEnvMap converts an 8-bit sRGB panorama into a linear lat-long map
func ImageToEnvMap(img image.Image) *exr.EnvMapImage {
	bounds := img.Bounds()
	env := exr.NewEnvMapImage(exr.EnvMapLatLong, bounds.Dx(), bounds.Dy())
	for y := 0; y < env.Height; y++ {
		for x := 0; x < env.Width; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			env.Set(x, y, exr.RGBA{
				R: srgbToLinear(float64(r) / 65535.0),
				G: srgbToLinear(float64(g) / 65535.0),
				B: srgbToLinear(float64(b) / 65535.0),
				A: 1,
			})
		}
	}
	return env
}

// srgbToLinear undoes the display gamma of 2.2
func srgbToLinear(c float64) float32 {
	return float32(math.Pow(c, 2.2))
}
