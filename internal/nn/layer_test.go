package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// TestLayer_Forward tests fan-out and output ordering.
func TestLayer_Forward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewLayer(2, 3, rng)

	inputs := []*autodiff.Node{
		autodiff.Constant(0.5),
		autodiff.Constant(-0.25),
	}

	outputs, err := layer.Forward(inputs)
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	// Each output is that neuron's own activation over the shared inputs.
	for i, neuron := range layer.Neurons() {
		want, err := neuron.Forward(inputs)
		require.NoError(t, err)
		assert.Equal(t, want.Value(), outputs[i].Value(), "neuron %d", i)
	}
}

// TestLayer_SharedInputGradients tests that an input node consumed by
// every neuron accumulates one contribution per neuron.
func TestLayer_SharedInputGradients(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	layer := NewLayer(1, 2, rng)

	x := autodiff.Constant(0.3)
	outputs, err := layer.Forward([]*autodiff.Node{x})
	require.NoError(t, err)

	sum := outputs[0].Add(outputs[1])
	sum.SetGrad(1.0)
	sum.Backward()

	// dsum/dx = Σᵢ (1 - outᵢ²)·wᵢ over both neurons.
	want := 0.0
	for i, neuron := range layer.Neurons() {
		d := 1 - outputs[i].Value()*outputs[i].Value()
		want += d * neuron.Weights()[0].Value()
	}
	assert.InDelta(t, want, x.Grad(), 1e-12)
}

// TestLayer_ForwardShapeMismatch tests error propagation from a neuron.
func TestLayer_ForwardShapeMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewLayer(2, 2, rng)

	outputs, err := layer.Forward([]*autodiff.Node{autodiff.Constant(1.0)})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorContains(t, err, "neuron 0")
	assert.Nil(t, outputs)
}

// TestLayer_UpdateAndZeroGrad tests delegation across all neurons.
func TestLayer_UpdateAndZeroGrad(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	layer := NewLayer(2, 3, rng)

	params := layer.Parameters()
	require.Len(t, params, 3*(2+1))

	before := make([]float64, len(params))
	for i, p := range params {
		before[i] = p.Value()
		p.SetGrad(0.5)
	}

	layer.UpdateParams(0.2)
	for i, p := range params {
		assert.Equal(t, before[i]-0.2*0.5, p.Value(), "parameter %d", i)
	}

	layer.ZeroGrad()
	for i, p := range params {
		assert.Zero(t, p.Grad(), "parameter %d gradient", i)
	}
}

// TestLayer_Shape tests the fan accessors.
func TestLayer_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := NewLayer(4, 2, rng)

	assert.Equal(t, 4, layer.FanIn())
	assert.Equal(t, 2, layer.FanOut())
}
