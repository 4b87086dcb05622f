// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Default hyperparameters.
const (
	DefaultLR   = optim.DefaultLR
	DefaultClip = optim.DefaultClip
)

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with gradient clipping.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over params. Zero-valued config
// fields fall back to DefaultLR and DefaultClip.
//
// Example:
//
//	model, _ := nn.NewMLP(2, []int{16, 8, 1}, rng)
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:   0.03,
//	        Clip: 1.0,
//	    },
//	)
func NewSGD(params []*autodiff.Node, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Learning rate schedules

// InverseTimeDecay decays a learning rate as 1/(1+decay*epoch).
type InverseTimeDecay = optim.InverseTimeDecay
