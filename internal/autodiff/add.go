package autodiff

// addOp represents a scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type addOp struct {
	inputs []*Node // [a, b]
}

// newAddOp creates a new addOp.
func newAddOp(a, b *Node) *addOp {
	return &addOp{inputs: []*Node{a, b}}
}

// Op identifies the operation kind.
func (op *addOp) Op() Op {
	return OpAdd
}

// Inputs returns the input nodes [a, b].
func (op *addOp) Inputs() []*Node {
	return op.inputs
}

// Backward computes input gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the output gradient flows unchanged
// to both inputs.
func (op *addOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
