package train

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/dataset"
	"github.com/born-ml/scalargrad/internal/nn"
)

// classificationThreshold maps a network output to a binary label:
// outputs above it predict class 1, the rest class 0.
const classificationThreshold = 0.5

// Evaluation reports classification accuracy over a sample set.
type Evaluation struct {
	Accuracy float64             // Fraction of samples classified correctly
	PerClass map[float64]float64 // Accuracy per label value
	Count    int                 // Number of samples evaluated
}

// Evaluate runs the model over samples and scores binary classification
// accuracy, overall and per label. No gradients are involved; the
// forward graphs are discarded after each prediction.
func Evaluate(model *nn.MLP, samples []dataset.Sample) (*Evaluation, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("train: no samples")
	}

	correct := 0
	classTotal := make(map[float64]int)
	classCorrect := make(map[float64]int)

	for i, sample := range samples {
		out, err := predict(model, sample.Features)
		if err != nil {
			return nil, fmt.Errorf("train: sample %d: %w", i, err)
		}

		predicted := 0.0
		if out > classificationThreshold {
			predicted = 1.0
		}

		classTotal[sample.Label]++
		if predicted == sample.Label {
			correct++
			classCorrect[sample.Label]++
		}
	}

	eval := &Evaluation{
		Accuracy: float64(correct) / float64(len(samples)),
		PerClass: make(map[float64]float64, len(classTotal)),
		Count:    len(samples),
	}
	for label, total := range classTotal {
		eval.PerClass[label] = float64(classCorrect[label]) / float64(total)
	}
	return eval, nil
}

// predict runs a forward pass and returns the single output value.
func predict(model *nn.MLP, features []float64) (float64, error) {
	inputs := make([]*autodiff.Node, len(features))
	for i, f := range features {
		inputs[i] = autodiff.Constant(f)
	}
	outputs, err := model.Forward(inputs)
	if err != nil {
		return 0, err
	}
	return outputs[0].Value(), nil
}

// Boundary holds network outputs sampled over a 2D grid, for
// visualizing the decision surface of a two-input classifier.
//
// Outputs[i][j] is the output at (Xs[j], Ys[i]): rows follow the y
// axis, columns the x axis.
type Boundary struct {
	Xs      []float64
	Ys      []float64
	Outputs [][]float64
}

// DecisionBoundary evaluates a two-input model over a steps×steps grid
// spanning [lo, hi] on both axes.
func DecisionBoundary(model *nn.MLP, lo, hi float64, steps int) (*Boundary, error) {
	if model.InputSize() != 2 {
		return nil, fmt.Errorf("train: decision boundary needs a two-input model, got %d inputs", model.InputSize())
	}
	if steps < 2 {
		return nil, fmt.Errorf("train: grid needs at least 2 steps per axis, got %d", steps)
	}

	b := &Boundary{
		Xs:      floats.Span(make([]float64, steps), lo, hi),
		Ys:      floats.Span(make([]float64, steps), lo, hi),
		Outputs: make([][]float64, steps),
	}

	for i, y := range b.Ys {
		row := make([]float64, steps)
		for j, x := range b.Xs {
			out, err := predict(model, []float64{x, y})
			if err != nil {
				return nil, fmt.Errorf("train: grid point (%d,%d): %w", i, j, err)
			}
			row[j] = out
		}
		b.Outputs[i] = row
	}

	return b, nil
}
