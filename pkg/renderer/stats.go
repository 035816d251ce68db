package renderer

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// FrameStats describes the accumulated image after a frame
type FrameStats struct {
	Pixels          int     `json:"pixels"`
	MeanLuminance   float64 `json:"meanLuminance"`
	StdDevLuminance float64 `json:"stdDevLuminance"`
	MeanAge         float64 `json:"meanAge"`
	MinAge          uint32  `json:"minAge"`
	MaxAge          uint32  `json:"maxAge"`
	NonFinite       int     `json:"nonFinite"` // Estimates dropped this frame
}

// ComputeFrameStats summarises luminance and age over the given pixels
func ComputeFrameStats(pixels []AccumPixel) FrameStats {
	stats := FrameStats{Pixels: len(pixels)}
	if len(pixels) == 0 {
		return stats
	}

	luminance := make([]float64, len(pixels))
	ages := make([]float64, len(pixels))
	stats.MinAge = math.MaxUint32
	for i, p := range pixels {
		luminance[i] = p.Color.Luminance()
		ages[i] = float64(p.Age)
		stats.MinAge = min(stats.MinAge, p.Age)
		stats.MaxAge = max(stats.MaxAge, p.Age)
	}

	stats.MeanAge = stat.Mean(ages, nil)
	if len(pixels) > 1 {
		stats.MeanLuminance, stats.StdDevLuminance = stat.MeanStdDev(luminance, nil)
	} else {
		stats.MeanLuminance = luminance[0]
	}

	return stats
}
