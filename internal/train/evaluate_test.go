package train_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/dataset"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/train"
)

// TestEvaluate_UntrainedPredictsZero exploits the initialization bound:
// with weights in (-0.1, 0.1) a 2-[4,1] network cannot push its output
// past 0.5, so every prediction is class 0. On a balanced set that
// means 50% overall accuracy, perfect on class 0 and zero on class 1.
func TestEvaluate_UntrainedPredictsZero(t *testing.T) {
	samples := dataset.TwoSpirals(dataset.SpiralConfig{PointsPerClass: 10, Seed: 1})
	model := newModel(t, []int{4, 1}, 1)

	eval, err := train.Evaluate(model, samples)
	require.NoError(t, err)

	assert.Equal(t, 20, eval.Count)
	assert.Equal(t, 0.5, eval.Accuracy)
	assert.Equal(t, 1.0, eval.PerClass[0.0])
	assert.Equal(t, 0.0, eval.PerClass[1.0])
}

// TestEvaluate_Validation verifies the empty-set and shape errors.
func TestEvaluate_Validation(t *testing.T) {
	model := newModel(t, []int{4, 1}, 1)

	_, err := train.Evaluate(model, nil)
	assert.ErrorContains(t, err, "no samples")

	bad := []dataset.Sample{{Features: []float64{1, 2, 3}, Label: 0}}
	_, err = train.Evaluate(model, bad)
	assert.ErrorContains(t, err, "sample 0")
}

// TestDecisionBoundary_Grid verifies the grid axes and that each cell
// holds the forward-pass output at its (x, y) coordinate.
func TestDecisionBoundary_Grid(t *testing.T) {
	model := newModel(t, []int{4, 1}, 2)

	b, err := train.DecisionBoundary(model, -1, 1, 5)
	require.NoError(t, err)

	want := []float64{-1, -0.5, 0, 0.5, 1}
	assert.Equal(t, want, b.Xs)
	assert.Equal(t, want, b.Ys)
	require.Len(t, b.Outputs, 5)

	for i, y := range b.Ys {
		require.Len(t, b.Outputs[i], 5)
		for j, x := range b.Xs {
			outputs, err := model.Forward([]*autodiff.Node{
				autodiff.Constant(x),
				autodiff.Constant(y),
			})
			require.NoError(t, err)
			assert.Equal(t, outputs[0].Value(), b.Outputs[i][j], "cell (%d,%d)", i, j)
		}
	}
}

// TestDecisionBoundary_Validation verifies the input-size and grid-size
// checks.
func TestDecisionBoundary_Validation(t *testing.T) {
	t.Run("non-planar model", func(t *testing.T) {
		model, err := nn.NewMLP(3, []int{4, 1}, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		_, err = train.DecisionBoundary(model, -1, 1, 5)
		assert.ErrorContains(t, err, "two-input model")
	})

	t.Run("degenerate grid", func(t *testing.T) {
		model := newModel(t, []int{4, 1}, 1)
		_, err := train.DecisionBoundary(model, -1, 1, 1)
		assert.ErrorContains(t, err, "at least 2 steps")
	})
}
