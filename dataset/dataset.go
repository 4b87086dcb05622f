// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides synthetic datasets for training and testing
// scalar networks.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/dataset"
//
//	func main() {
//	    samples := dataset.TwoSpirals(dataset.SpiralConfig{
//	        PointsPerClass: 100,
//	        Noise:          0.1,
//	        Seed:           42,
//	    })
//	    fmt.Println(len(samples)) // 200
//	}
package dataset

import (
	"github.com/born-ml/scalargrad/internal/dataset"
)

// Default generation parameters.
const (
	DefaultPointsPerClass = dataset.DefaultPointsPerClass
	DefaultNoise          = dataset.DefaultNoise
)

// Sample is one labeled data point.
type Sample = dataset.Sample

// SpiralConfig configures TwoSpirals.
type SpiralConfig = dataset.SpiralConfig

// TwoSpirals generates the interleaved two-spirals classification
// dataset: two arms wound around the origin, offset by half a turn,
// labeled 0 and 1. Zero-valued config fields fall back to the package
// defaults.
func TwoSpirals(cfg SpiralConfig) []Sample {
	return dataset.TwoSpirals(cfg)
}
