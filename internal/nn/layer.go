package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Layer is an ordered collection of neurons with identical fan-in.
//
// Forward feeds the same input slice to every neuron, so each input
// node is shared across all neuron subgraphs and accumulates gradient
// contributions from every one of them.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of fanOut neurons, each accepting fanIn
// inputs, initialized in neuron order from the caller's generator.
func NewLayer(fanIn, fanOut int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, fanOut)
	for i := range neurons {
		neurons[i] = NewNeuron(fanIn, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward computes every neuron's activation over the shared inputs.
// Outputs are in neuron order; the first neuron error aborts the pass.
func (l *Layer) Forward(inputs []*autodiff.Node) ([]*autodiff.Node, error) {
	outputs := make([]*autodiff.Node, len(l.neurons))
	for i, neuron := range l.neurons {
		out, err := neuron.Forward(inputs)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		outputs[i] = out
	}
	return outputs, nil
}

// UpdateParams applies one clipped gradient-descent step to every
// neuron, in order.
func (l *Layer) UpdateParams(rate float64) {
	for _, neuron := range l.neurons {
		neuron.UpdateParams(rate)
	}
}

// ZeroGrad resets every neuron's parameter gradients.
func (l *Layer) ZeroGrad() {
	for _, neuron := range l.neurons {
		neuron.ZeroGrad()
	}
}

// Parameters returns every neuron's parameters, in neuron order.
func (l *Layer) Parameters() []*autodiff.Node {
	params := make([]*autodiff.Node, 0, len(l.neurons)*(l.FanIn()+1))
	for _, neuron := range l.neurons {
		params = append(params, neuron.Parameters()...)
	}
	return params
}

// FanIn returns the number of inputs each neuron accepts.
func (l *Layer) FanIn() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].FanIn()
}

// FanOut returns the number of neurons in the layer.
func (l *Layer) FanOut() int {
	return len(l.neurons)
}

// Neurons returns the layer's neurons in order.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}
