package autodiff

// tanhOp represents the hyperbolic tangent activation: output = tanh(x).
type tanhOp struct {
	input  *Node
	output *Node
}

// newTanhOp creates a new tanh operation.
func newTanhOp(input, output *Node) *tanhOp {
	return &tanhOp{input: input, output: output}
}

// Op identifies the operation kind.
func (op *tanhOp) Op() Op {
	return OpTanh
}

// Inputs returns the input nodes.
func (op *tanhOp) Inputs() []*Node {
	return []*Node{op.input}
}

// Backward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x), and tanh(x) is the already-computed
// output value, so:
//
//	grad_input = outputGrad * (1 - output²)
func (op *tanhOp) Backward(outputGrad float64) []float64 {
	out := op.output.value
	return []float64{outputGrad * (1 - out*out)}
}
