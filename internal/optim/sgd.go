package optim

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Default SGD configuration values.
const (
	DefaultLR   = 0.01
	DefaultClip = 1.0
)

// SGD implements stochastic gradient descent with gradient clipping.
//
// Update rule:
//
//	param = param - lr * clamp(grad, -clip, clip)
//
// The clamp bounds the step a single steep example can take. It is a
// mitigation of large updates, not error handling: tiny gradients from
// saturated units pass through unchanged.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.03,
//	})
//
//	for _, example := range examples {
//	    loss := trainStep(model, example)
//	    loss.SetGrad(1.0)
//	    loss.Backward()
//	    sgd.Step()
//	    sgd.ZeroGrad()
//	}
type SGD struct {
	params []*autodiff.Node
	lr     float64
	clip   float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR   float64 // Learning rate (default: 0.01)
	Clip float64 // Gradient clamp bound (default: 1.0)
}

// NewSGD creates a new SGD optimizer over the given parameter nodes.
//
// Zero-valued config fields fall back to the defaults.
func NewSGD(params []*autodiff.Node, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	if config.Clip == 0 {
		config.Clip = DefaultClip
	}

	return &SGD{
		params: params,
		lr:     config.LR,
		clip:   config.Clip,
	}
}

// Step performs a single optimization step over all parameters.
func (s *SGD) Step() {
	for _, param := range s.params {
		param.ApplyGrad(s.lr, s.clip)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.SetGrad(0)
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
