package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// MLP chains layers into a feed-forward multi-layer perceptron.
//
// Layer widths are fixed at construction and each layer's fan-in is
// wired to the previous layer's fan-out, so interior shape mismatches
// cannot occur; only the caller's input slice is validated at runtime.
type MLP struct {
	sizes  []int // [inputSize, layerSizes...]
	layers []*Layer
}

// NewMLP creates a network with the given input width and one layer
// per entry of layerSizes; the final entry is the output width.
//
// Layers are initialized in order from the caller's generator, so a
// fixed seed reproduces the network exactly. Construction fails on an
// empty layerSizes or any non-positive width.
func NewMLP(inputSize int, layerSizes []int, rng *rand.Rand) (*MLP, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("mlp: input size must be positive, got %d", inputSize)
	}
	if len(layerSizes) == 0 {
		return nil, fmt.Errorf("mlp: at least one layer size required")
	}
	for i, size := range layerSizes {
		if size <= 0 {
			return nil, fmt.Errorf("mlp: layer %d size must be positive, got %d", i, size)
		}
	}

	sizes := make([]int, 0, len(layerSizes)+1)
	sizes = append(sizes, inputSize)
	sizes = append(sizes, layerSizes...)

	layers := make([]*Layer, len(layerSizes))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}

	return &MLP{sizes: sizes, layers: layers}, nil
}

// Forward threads the inputs through every layer in order and returns
// the final layer's outputs.
func (m *MLP) Forward(inputs []*autodiff.Node) ([]*autodiff.Node, error) {
	outputs := inputs
	var err error
	for i, layer := range m.layers {
		outputs, err = layer.Forward(outputs)
		if err != nil {
			return nil, fmt.Errorf("mlp: layer %d: %w", i, err)
		}
	}
	return outputs, nil
}

// UpdateParams applies one clipped gradient-descent step to every
// layer, in order.
func (m *MLP) UpdateParams(rate float64) {
	for _, layer := range m.layers {
		layer.UpdateParams(rate)
	}
}

// ZeroGrad resets every parameter gradient in the network.
func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}

// Parameters returns every layer's parameters, in layer order.
func (m *MLP) Parameters() []*autodiff.Node {
	var params []*autodiff.Node
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// InputSize returns the width of the input slice Forward expects.
func (m *MLP) InputSize() int {
	return m.sizes[0]
}

// OutputSize returns the width of the final layer.
func (m *MLP) OutputSize() int {
	return m.sizes[len(m.sizes)-1]
}

// Layers returns the network's layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}
