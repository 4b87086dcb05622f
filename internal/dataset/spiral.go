// Package dataset provides the synthetic datasets used by the training
// examples.
package dataset

import (
	"math"
	"math/rand"
)

// Default generation parameters.
const (
	DefaultPointsPerClass = 100
	DefaultNoise          = 0.1
)

// Sample is one labeled training example.
type Sample struct {
	Features []float64 // Input coordinates, one per network input
	Label    float64   // Class label, 0 or 1
}

// SpiralConfig configures TwoSpirals. Zero-valued fields fall back to
// the defaults.
type SpiralConfig struct {
	PointsPerClass int     // Points per spiral arm (default: 100)
	Noise          float64 // Half-width of the uniform coordinate jitter (default: 0.1)
	Seed           int64   // Generator seed; a fixed seed reproduces the dataset exactly
}

// TwoSpirals generates two interleaved spiral arms.
//
// Point i of an arm sits at radius i/n and angle 4i radians; the second
// arm is rotated by π and labeled 1. Every coordinate gets independent
// uniform jitter from (-Noise, Noise), so all points stay inside
// [-1-Noise, 1+Noise]². Samples alternate class 0 / class 1, keeping
// any prefix of the slice balanced.
func TwoSpirals(cfg SpiralConfig) []Sample {
	if cfg.PointsPerClass <= 0 {
		cfg.PointsPerClass = DefaultPointsPerClass
	}
	if cfg.Noise == 0 {
		cfg.Noise = DefaultNoise
	}

	//nolint:gosec // math/rand for synthetic data generation (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))

	n := cfg.PointsPerClass
	samples := make([]Sample, 0, 2*n)
	for i := 0; i < n; i++ {
		r := float64(i) / float64(n)
		t := float64(i) * 4.0

		samples = append(samples, Sample{
			Features: []float64{
				r*math.Cos(t) + jitter(rng, cfg.Noise),
				r*math.Sin(t) + jitter(rng, cfg.Noise),
			},
			Label: 0.0,
		})
		samples = append(samples, Sample{
			Features: []float64{
				r*math.Cos(t+math.Pi) + jitter(rng, cfg.Noise),
				r*math.Sin(t+math.Pi) + jitter(rng, cfg.Noise),
			},
			Label: 1.0,
		})
	}
	return samples
}

// jitter returns a uniform draw from (-noise, noise).
func jitter(rng *rand.Rand, noise float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * noise
}
