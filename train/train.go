// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides a per-example stochastic training loop and
// evaluation helpers for scalar networks.
//
// Example:
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/dataset"
//	    "github.com/born-ml/scalargrad/nn"
//	    "github.com/born-ml/scalargrad/train"
//	)
//
//	func main() {
//	    samples := dataset.TwoSpirals(dataset.SpiralConfig{Seed: 42})
//	    model, _ := nn.NewMLP(2, []int{16, 8, 1}, rand.New(rand.NewSource(42)))
//
//	    result, err := train.Train(model, samples, train.Config{
//	        Epochs:       200,
//	        LearningRate: 0.03,
//	        Decay:        0.001,
//	        TargetLoss:   0.01,
//	        Seed:         42,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    eval, _ := train.Evaluate(model, samples)
//	    fmt.Printf("loss %.4f, accuracy %.1f%%\n", result.FinalLoss, eval.Accuracy*100)
//	}
package train

import (
	"github.com/born-ml/scalargrad/internal/dataset"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/train"
)

// Config configures Train.
type Config = train.Config

// Result reports a finished training run.
type Result = train.Result

// Train runs per-example stochastic gradient descent over samples.
func Train(model *nn.MLP, samples []dataset.Sample, cfg Config) (*Result, error) {
	return train.Train(model, samples, cfg)
}

// Evaluation reports classification accuracy over a sample set.
type Evaluation = train.Evaluation

// Evaluate scores binary classification accuracy, overall and per
// label.
func Evaluate(model *nn.MLP, samples []dataset.Sample) (*Evaluation, error) {
	return train.Evaluate(model, samples)
}

// Boundary holds network outputs sampled over a 2D grid.
type Boundary = train.Boundary

// DecisionBoundary evaluates a two-input model over a steps×steps grid
// spanning [lo, hi] on both axes.
func DecisionBoundary(model *nn.MLP, lo, hi float64, steps int) (*Boundary, error) {
	return train.DecisionBoundary(model, lo, hi, steps)
}
