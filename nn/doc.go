// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network building blocks.
//
// # Overview
//
// This package contains:
//   - Neuron: a single tanh unit with per-scalar weights and bias
//   - Layer: a fully connected layer of neurons sharing one input
//   - MLP: a multi-layer perceptron chaining layers
//   - Module: the common interface for anything with parameters
//
// Every parameter is an autodiff leaf node, so a forward pass builds a
// computation graph and Backward on the loss fills parameter gradients.
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalargrad/autodiff"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model, err := nn.NewMLP(2, []int{16, 8, 1}, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := []*autodiff.Node{autodiff.Constant(0.5), autodiff.Constant(-0.5)}
//	    outputs, err := model.Forward(inputs)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    loss := outputs[0].Sub(autodiff.Constant(1.0)).Square()
//	    loss.SetGrad(1.0)
//	    loss.Backward()
//
//	    model.UpdateParams(0.03)
//	    model.ZeroGrad()
//	}
//
// # Training Loop Pattern
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    for _, sample := range samples {
//	        // 1. Forward pass builds a fresh graph
//	        outputs, _ := model.Forward(toNodes(sample.Features))
//	        loss := outputs[0].Sub(autodiff.Constant(sample.Label)).Square()
//
//	        // 2. Backward pass fills gradients
//	        loss.SetGrad(1.0)
//	        loss.Backward()
//
//	        // 3. Clipped gradient descent step
//	        model.UpdateParams(rate)
//
//	        // 4. Reset gradients for the next sample
//	        model.ZeroGrad()
//	    }
//	}
package nn
