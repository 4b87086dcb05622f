// Package optim implements optimization algorithms for training scalar
// networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with gradient clipping
//   - InverseTimeDecay: the 1/(1 + decay·epoch) learning rate schedule
//
// Design inspired by PyTorch's torch.optim, collapsed to scalars:
// gradients already live on the parameter nodes after Backward, so
// Step takes no gradient map.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.03,
//	})
//
//	for _, example := range examples {
//	    loss := buildLoss(model, example)
//	    loss.SetGrad(1.0)
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before the next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one gradient update to every parameter in-place,
	// reading the gradient accumulated on the parameter node.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call it after Step so the next backward pass starts from zero
	// instead of accumulating into stale gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float64
}
