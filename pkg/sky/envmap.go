package sky

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/mrjoshuak/go-openexr/exr"
)

// EnvMap looks radiance up in a lat-long or cube environment image.
// Lat-long maps put +Y at the top row and longitude 0 along +Z.
type EnvMap struct {
	image     *exr.EnvMapImage
	intensity float64
}

// NewEnvMap wraps an environment image, scaling its values by intensity
func NewEnvMap(image *exr.EnvMapImage, intensity float64) *EnvMap {
	return &EnvMap{image: image, intensity: intensity}
}

// Emit returns the bilinearly filtered radiance in the given direction
func (e *EnvMap) Emit(direction core.Vec3) core.Vec3 {
	c := e.image.Lookup(exr.V3f{X: float32(direction.X), Y: float32(direction.Y), Z: float32(direction.Z)})
	return core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Multiply(e.intensity)
}

// Type reports whether the map is lat-long or cube
func (e *EnvMap) Type() exr.EnvMap {
	return e.image.Type
}

// Size returns the image dimensions
func (e *EnvMap) Size() (int, int) {
	return e.image.Width, e.image.Height
}
