// Package sky provides the radiance seen by rays that leave the scene.
package sky

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/spectral"
)

// Environment returns the RGB radiance arriving from a direction at infinity
type Environment interface {
	Emit(direction core.Vec3) core.Vec3
}

// Radiance upsamples the environment's RGB radiance to wavelength lambda.
// A nil environment is black.
func Radiance(env Environment, direction core.Vec3, lambda float64) float64 {
	if env == nil {
		return 0
	}
	return spectral.RGBToSpectralIntensity(env.Emit(direction), lambda)
}

// Gradient blends between two colors by the direction's height
type Gradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradient creates a vertical gradient sky
func NewGradient(top, bottom core.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Emit maps Y from [-1,1] to [0,1] and interpolates bottom to top
func (g *Gradient) Emit(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

// Uniform emits the same color in every direction
type Uniform struct {
	Color core.Vec3
}

// NewUniform creates a constant sky
func NewUniform(color core.Vec3) *Uniform {
	return &Uniform{Color: color}
}

// Emit returns the constant color
func (u *Uniform) Emit(direction core.Vec3) core.Vec3 {
	return u.Color
}
