package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Neuron is a single tanh unit: out = tanh(bias + Σ wᵢ·xᵢ).
//
// Weights and bias are leaf nodes that persist across training
// examples. Everything Forward builds on top of them belongs to one
// example's graph and is garbage once that example's backward pass and
// update complete.
type Neuron struct {
	weights []*autodiff.Node // One per input, fixed count after construction
	bias    *autodiff.Node
}

// NewNeuron creates a neuron with fanIn weights and a bias, all drawn
// from U(-0.1, 0.1) using the caller's generator. Two neurons built
// from generators in the same state are identical.
func NewNeuron(fanIn int, rng *rand.Rand) *Neuron {
	weights := make([]*autodiff.Node, fanIn)
	for i := range weights {
		weights[i] = uniformLeaf(rng)
	}
	return &Neuron{
		weights: weights,
		bias:    uniformLeaf(rng),
	}
}

// Forward computes tanh(bias + Σ wᵢ·xᵢ) over the input nodes.
//
// The input count must match the neuron's fan-in; a wrong-sized slice
// returns ErrShapeMismatch instead of indexing out of range. Forward
// reads the persistent parameters and never mutates them.
func (n *Neuron) Forward(inputs []*autodiff.Node) (*autodiff.Node, error) {
	if len(inputs) != len(n.weights) {
		return nil, fmt.Errorf("%w: got %d inputs, want %d",
			ErrShapeMismatch, len(inputs), len(n.weights))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}
	return act.Tanh(), nil
}

// UpdateParams applies one gradient-descent step with rate to every
// weight and the bias, clipping each gradient to [-1, 1] first.
func (n *Neuron) UpdateParams(rate float64) {
	for _, w := range n.weights {
		w.ApplyGrad(rate, gradClip)
	}
	n.bias.ApplyGrad(rate, gradClip)
}

// ZeroGrad resets the gradients of the neuron's persistent parameters.
// Ephemeral forward-pass nodes are never revisited, so they need no
// reset.
func (n *Neuron) ZeroGrad() {
	for _, w := range n.weights {
		w.SetGrad(0)
	}
	n.bias.SetGrad(0)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Node {
	params := make([]*autodiff.Node, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// FanIn returns the number of inputs the neuron accepts.
func (n *Neuron) FanIn() int {
	return len(n.weights)
}

// Weights returns the weight nodes, one per input.
func (n *Neuron) Weights() []*autodiff.Node {
	return n.weights
}

// Bias returns the bias node.
func (n *Neuron) Bias() *autodiff.Node {
	return n.bias
}
