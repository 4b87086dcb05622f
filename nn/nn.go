// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/nn"
)

// ErrShapeMismatch reports a forward pass whose input length does not
// match the receiving unit's fan-in.
var ErrShapeMismatch = nn.ErrShapeMismatch

// Module is the common interface for anything holding trainable
// parameters.
type Module = nn.Module

// Neuron is a single tanh unit.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with fanIn weights, all parameters drawn
// uniformly from (-0.1, 0.1).
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	neuron := nn.NewNeuron(2, rng)
func NewNeuron(fanIn int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(fanIn, rng)
}

// Layer is a fully connected layer of neurons.
type Layer = nn.Layer

// NewLayer creates a layer of fanOut neurons, each with fanIn inputs.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLayer(2, 16, rng)
func NewLayer(fanIn, fanOut int, rng *rand.Rand) *Layer {
	return nn.NewLayer(fanIn, fanOut, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a perceptron taking inputSize inputs, with one layer
// per entry of layerSizes.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model, err := nn.NewMLP(2, []int{16, 8, 1}, rng) // 2 -> 16 -> 8 -> 1
func NewMLP(inputSize int, layerSizes []int, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(inputSize, layerSizes, rng)
}
