package autodiff

// mulOp represents a scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// The rule reads the inputs' forward values. When both inputs are the
// same node (Square), the two contributions accumulate on it and sum to
// 2a * outputGrad.
type mulOp struct {
	inputs []*Node // [a, b]
}

// newMulOp creates a new mulOp.
func newMulOp(a, b *Node) *mulOp {
	return &mulOp{inputs: []*Node{a, b}}
}

// Op identifies the operation kind.
func (op *mulOp) Op() Op {
	return OpMul
}

// Inputs returns the input nodes [a, b].
func (op *mulOp) Inputs() []*Node {
	return op.inputs
}

// Backward computes input gradients for multiplication (product rule).
func (op *mulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{outputGrad * b.value, outputGrad * a.value}
}
