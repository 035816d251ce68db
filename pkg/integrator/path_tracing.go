// Package integrator estimates per-pixel radiance with a single-wavelength
// path tracer.
package integrator

import (
	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/material"
	"github.com/df07/go-spectral-pathtracer/pkg/sky"
	"github.com/df07/go-spectral-pathtracer/pkg/spectral"
)

// Scene is the read-only world a path is traced through
type Scene interface {
	Intersect(ray core.Ray) core.Hit
	Sky() sky.Environment
}

// Config controls the path length
type Config struct {
	MovingBounces          int  // Bounce limit while the camera moves
	StationaryBounces      int  // Bounce limit once the camera has settled
	DisableRussianRoulette bool // Trace every path to the bounce limit
}

// DefaultConfig returns the interactive defaults
func DefaultConfig() Config {
	return Config{
		MovingBounces:     5,
		StationaryBounces: 100,
	}
}

// PathTracer implements unidirectional spectral path tracing
type PathTracer struct {
	config Config
}

// NewPathTracer creates a path tracer
func NewPathTracer(config Config) *PathTracer {
	return &PathTracer{config: config}
}

// Config returns the tracer configuration
func (pt *PathTracer) Config() Config {
	return pt.config
}

// Bounces returns the bounce limit for the camera state
func (pt *PathTracer) Bounces(stationary bool) int {
	if stationary {
		return pt.config.StationaryBounces
	}
	return pt.config.MovingBounces
}

// Estimate traces one path at a uniformly drawn wavelength and returns its
// linear RGB contribution.
func (pt *PathTracer) Estimate(ray core.Ray, scene Scene, sampler core.Sampler, stationary bool) core.Vec3 {
	lambda := spectral.GenerateWavelength(sampler.Get1D())
	radiance := pt.Trace(ray, scene, lambda, pt.Bounces(stationary), sampler)
	return spectral.ToRGB(lambda, radiance)
}

// Trace returns the scalar radiance arriving along ray at wavelength lambda
func (pt *PathTracer) Trace(ray core.Ray, scene Scene, lambda float64, maxBounces int, sampler core.Sampler) float64 {
	var stack material.RefractionStack
	throughput := 1.0
	radiance := 0.0

	for bounce := 0; bounce < maxBounces; bounce++ {
		hit := scene.Intersect(ray)
		if !hit.Success {
			radiance += throughput * sky.Radiance(scene.Sky(), ray.Direction, lambda)
			break
		}

		radiance += throughput * material.SpectralEmission(hit.Material, lambda)

		weight, next := material.Scatter(ray, hit, lambda, &stack, sampler)
		throughput *= weight

		if !pt.config.DisableRussianRoulette {
			survive, compensation := russianRoulette(throughput, sampler)
			if !survive {
				break
			}
			throughput *= compensation
		} else if throughput == 0 {
			break
		}

		ray = next
	}

	return radiance
}

// russianRoulette survives with probability clamp(throughput, 0, 1) and
// returns the compensation that keeps the estimator unbiased.
func russianRoulette(throughput float64, sampler core.Sampler) (bool, float64) {
	p := max(0, min(1, throughput))
	if p <= 0 || sampler.Get1D() > p {
		return false, 0
	}
	return true, 1 / p
}
