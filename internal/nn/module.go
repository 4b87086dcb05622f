// Package nn implements scalar neural network modules on top of the
// autodiff computation graph.
//
// This package provides the building blocks for small feed-forward
// networks:
//   - Module interface: parameter access plus training maintenance
//   - Neuron: a single tanh unit over a slice of input nodes
//   - Layer: an ordered collection of neurons with identical fan-in
//   - MLP: layers chained into a multi-layer perceptron
//
// Design inspired by PyTorch's nn.Module but collapsed to scalars:
// every weight, bias, input, and activation is one graph node.
package nn

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// gradClip bounds the magnitude of the effective gradient during a
// parameter update. A single steep example can therefore move a
// parameter by at most rate*gradClip.
const gradClip = 1.0

// Module is the base interface for all network components.
//
// Every module must expose:
//   - Parameters: its persistent leaf nodes (weights and biases)
//   - UpdateParams: one clipped gradient-descent step over them
//   - ZeroGrad: gradient reset between training examples
//
// Forward is not part of the interface: a Neuron produces a single
// node while Layer and MLP produce slices.
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// in a stable order, including nested module parameters.
	Parameters() []*autodiff.Node

	// UpdateParams applies one gradient-descent step with rate to
	// every parameter, clipping each gradient to [-1, 1] first.
	UpdateParams(rate float64)

	// ZeroGrad resets every parameter gradient to zero.
	//
	// Call it after each example's update; gradients otherwise
	// accumulate across backward passes.
	ZeroGrad()
}
