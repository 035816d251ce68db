// Package spectral converts between RGB anchors, single-wavelength spectral
// intensities and CIE XYZ tristimulus values.
package spectral

import "github.com/df07/go-spectral-pathtracer/pkg/core"

const (
	// CIE table domain
	CIEMinWavelength = 360.0
	CIEMaxWavelength = 831.0
	cieSamples       = 472

	// RGB basis table domain, also the sampled wavelength range
	MinWavelength = 380.0
	MaxWavelength = 780.0
	basisStep     = 5.0
	basisSamples  = 81
)

// Normalization scales the per-wavelength RGB response so that a flat unit
// spectrum sampled with the uniform wavelength pdf averages to RGB (1,1,1).
var Normalization core.Vec3

func init() {
	var sum core.Vec3
	n := 0
	for lambda := MinWavelength; lambda <= MaxWavelength; lambda++ {
		sum = sum.Add(XYZToRGB(WavelengthToXYZ(lambda)))
		n++
	}
	mean := sum.Multiply(1 / float64(n))
	Normalization = core.NewVec3(1/mean.X, 1/mean.Y, 1/mean.Z)
}

// WavelengthToXYZ returns the CIE 1931 colour matching functions at lambda
// (nm), linearly interpolated and clamped to [360, 831].
func WavelengthToXYZ(lambda float64) core.Vec3 {
	return lookup(cieXYZ[:], CIEMinWavelength, 1, lambda)
}

// RGBBasis returns the red, green and blue basis spectra at lambda (nm),
// linearly interpolated and clamped to [380, 780].
func RGBBasis(lambda float64) core.Vec3 {
	return lookup(rgbBasis[:], MinWavelength, basisStep, lambda)
}

// RGBToSpectralIntensity upsamples an RGB triple to its spectral intensity at lambda
func RGBToSpectralIntensity(rgb core.Vec3, lambda float64) float64 {
	return rgb.Dot(RGBBasis(lambda))
}

// GenerateWavelength maps a uniform sample u in [0,1) to a wavelength in
// [380, 780] nm. The pdf is uniform, 1/400 per nm.
func GenerateWavelength(u float64) float64 {
	return MinWavelength + u*(MaxWavelength-MinWavelength)
}

// XYZToRGB converts CIE XYZ to linear sRGB (D65). No gamma is applied.
func XYZToRGB(xyz core.Vec3) core.Vec3 {
	return core.Vec3{
		X: 3.2404542*xyz.X - 1.5371385*xyz.Y - 0.4985314*xyz.Z,
		Y: -0.9692660*xyz.X + 1.8760108*xyz.Y + 0.0415560*xyz.Z,
		Z: 0.0556434*xyz.X - 0.2040259*xyz.Y + 1.0572252*xyz.Z,
	}
}

// ToRGB turns a single-wavelength radiance estimate into its linear RGB
// contribution. Averaging ToRGB over uniformly drawn wavelengths reconstructs
// the RGB colour of the full spectrum.
func ToRGB(lambda, radiance float64) core.Vec3 {
	return XYZToRGB(WavelengthToXYZ(lambda)).MultiplyVec(Normalization).Multiply(radiance)
}

func lookup(table [][3]float64, start, step, lambda float64) core.Vec3 {
	pos := (lambda - start) / step
	last := len(table) - 1
	if pos <= 0 {
		return fromRow(table[0])
	}
	if pos >= float64(last) {
		return fromRow(table[last])
	}
	i := int(pos)
	f := pos - float64(i)
	a, b := table[i], table[i+1]
	return core.Vec3{
		X: a[0] + (b[0]-a[0])*f,
		Y: a[1] + (b[1]-a[1])*f,
		Z: a[2] + (b[2]-a[2])*f,
	}
}

func fromRow(row [3]float64) core.Vec3 {
	return core.Vec3{X: row[0], Y: row[1], Z: row[2]}
}
