// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar
// networks.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with gradient clipping
//   - InverseTimeDecay: a 1/(1+decay*epoch) learning rate schedule
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/nn"
//	    "github.com/born-ml/scalargrad/optim"
//	)
//
//	func main() {
//	    model, _ := nn.NewMLP(2, []int{16, 8, 1}, rng)
//
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	        LR:   0.03,
//	        Clip: 1.0,
//	    })
//
//	    // Training loop
//	    for _, sample := range samples {
//	        loss := forward(model, sample)
//
//	        loss.SetGrad(1.0)
//	        loss.Backward()
//	        optimizer.Step()
//	        optimizer.ZeroGrad()
//	    }
//	}
//
// # Learning Rate Scheduling
//
// Decay the learning rate between epochs:
//
//	schedule := optim.InverseTimeDecay{Initial: 0.03, Decay: 0.001}
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.SetLR(schedule.LR(epoch))
//	    // ... train one epoch ...
//	}
package optim
