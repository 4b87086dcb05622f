// Package train implements the per-example stochastic training loop and
// the evaluation helpers for scalar networks.
package train

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/dataset"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Config configures Train.
type Config struct {
	// Epochs is the maximum number of passes over the dataset.
	Epochs int

	// LearningRate is the epoch-0 learning rate (default: optim.DefaultLR).
	LearningRate float64

	// Decay is the per-epoch InverseTimeDecay factor; 0 keeps the
	// learning rate constant.
	Decay float64

	// TargetLoss stops training once an epoch's average loss falls
	// below it; 0 disables early stopping.
	TargetLoss float64

	// Seed seeds the per-epoch shuffle order.
	Seed int64

	// OnEpoch, when non-nil, runs after every epoch with the zero-based
	// epoch index, the epoch's average loss, and the learning rate it
	// used. Progress printing belongs to the caller.
	OnEpoch func(epoch int, avgLoss, lr float64)
}

// Result reports a finished training run.
type Result struct {
	Epochs       int       // Epochs actually run
	FinalLoss    float64   // Average loss of the last epoch
	History      []float64 // Average loss per epoch, in order
	StoppedEarly bool      // Whether TargetLoss ended the run
}

// Train runs per-example stochastic gradient descent over samples.
//
// Every example gets a fresh graph: input and target leaves, one
// forward pass, the squared-error loss (out - target)², a backward
// pass seeded with 1, one clipped SGD step, and a gradient reset. The
// example's graph is unreachable afterwards and left to the garbage
// collector; only the network parameters persist.
//
// The sample order is reshuffled every epoch and the learning rate
// follows InverseTimeDecay(LearningRate, Decay). The model must have
// exactly one output; its value is trained toward the sample label.
func Train(model *nn.MLP, samples []dataset.Sample, cfg Config) (*Result, error) {
	if model.OutputSize() != 1 {
		return nil, fmt.Errorf("train: model must have exactly one output, got %d", model.OutputSize())
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("train: no samples")
	}
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("train: epochs must be positive, got %d", cfg.Epochs)
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = optim.DefaultLR
	}

	//nolint:gosec // math/rand for shuffle order (not security-critical)
	rng := rand.New(rand.NewSource(cfg.Seed))
	schedule := optim.InverseTimeDecay{Initial: cfg.LearningRate, Decay: cfg.Decay}
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LearningRate})

	indices := make([]int, len(samples))
	for i := range indices {
		indices[i] = i
	}

	result := &Result{History: make([]float64, 0, cfg.Epochs)}
	losses := make([]float64, len(samples))

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		lr := schedule.LR(epoch)
		sgd.SetLR(lr)

		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		for k, idx := range indices {
			loss, err := step(model, samples[idx], sgd)
			if err != nil {
				return nil, fmt.Errorf("train: epoch %d: %w", epoch, err)
			}
			losses[k] = loss
		}

		avg := stat.Mean(losses, nil)
		result.History = append(result.History, avg)
		result.Epochs = epoch + 1
		result.FinalLoss = avg

		if cfg.OnEpoch != nil {
			cfg.OnEpoch(epoch, avg, lr)
		}

		if cfg.TargetLoss > 0 && avg < cfg.TargetLoss {
			result.StoppedEarly = true
			break
		}
	}

	return result, nil
}

// step trains on one example and returns its loss value.
func step(model *nn.MLP, sample dataset.Sample, sgd *optim.SGD) (float64, error) {
	inputs := make([]*autodiff.Node, len(sample.Features))
	for i, f := range sample.Features {
		inputs[i] = autodiff.Constant(f)
	}

	outputs, err := model.Forward(inputs)
	if err != nil {
		return 0, err
	}

	target := autodiff.Constant(sample.Label)
	loss := outputs[0].Sub(target).Square()

	loss.SetGrad(1.0)
	loss.Backward()
	sgd.Step()
	sgd.ZeroGrad()

	return loss.Value(), nil
}
