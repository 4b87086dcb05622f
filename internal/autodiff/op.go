package autodiff

import "fmt"

// Op identifies the kind of operation that produced a node.
type Op uint8

// Operation kinds.
const (
	OpLeaf Op = iota // No producing operation (constant or parameter)
	OpAdd            // output = a + b
	OpMul            // output = a * b
	OpTanh           // output = tanh(x)
)

// String returns the operation kind's name.
func (o Op) String() string {
	switch o {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpTanh:
		return "tanh"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Operation is a differentiable operation in a computation graph.
//
// Each operation carries its input nodes and knows how to compute
// gradient contributions for them given the gradient of its output
// (chain rule). The backward traversal applies each node's operation
// exactly once and accumulates the returned contributions into the
// inputs' gradients.
type Operation interface {
	// Op identifies the operation kind.
	Op() Op

	// Inputs returns the operation's input nodes, in operand order.
	Inputs() []*Node

	// Backward computes the gradient contribution for each input, in
	// the same order as Inputs(), given the accumulated gradient of the
	// operation's output.
	Backward(outputGrad float64) []float64
}
