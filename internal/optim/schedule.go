package optim

// InverseTimeDecay is the 1/(1 + decay·epoch) learning rate schedule.
//
// LR(0) equals Initial and successive epochs decay hyperbolically,
// keeping early epochs fast while late epochs take smaller, stabler
// steps. Pair it with SGD.SetLR at the top of each epoch.
type InverseTimeDecay struct {
	Initial float64 // Learning rate at epoch 0
	Decay   float64 // Per-epoch decay factor; 0 keeps the rate constant
}

// LR returns the learning rate for the given zero-based epoch.
func (d InverseTimeDecay) LR(epoch int) float64 {
	return d.Initial / (1 + d.Decay*float64(epoch))
}
