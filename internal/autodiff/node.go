// Package autodiff implements reverse-mode automatic differentiation
// over scalar computation graphs.
//
// Graphs are built eagerly: every arithmetic method computes its forward
// value immediately and attaches the Operation that produced it. Seeding
// an output node's gradient and calling Backward then replays the graph
// in reverse topological order, accumulating d(output)/d(node) into every
// reachable node.
package autodiff

import (
	"fmt"
	"math"
)

// Node is one scalar value in a computation graph.
//
// A node is either a leaf (a constant or a trainable parameter) or the
// output of an Operation over other nodes. Nodes are shared by pointer:
// passing the same *Node to several operations is how value reuse is
// expressed, and a shared node's gradient accumulates one contribution
// per consumer.
type Node struct {
	value float64   // Forward value, fixed at construction (leaves: until ApplyGrad)
	grad  float64   // Accumulated d(output)/d(this), zero until Backward
	op    Operation // Producing operation, nil for leaves
}

// Constant creates a leaf node holding value, with zero gradient.
//
// Leaves are the graph's parameters and inputs. They are the only nodes
// a training update may mutate (see ApplyGrad).
func Constant(value float64) *Node {
	return &Node{value: value}
}

// Value returns the node's forward value.
func (n *Node) Value() float64 {
	return n.value
}

// Grad returns the node's accumulated gradient.
func (n *Node) Grad() float64 {
	return n.grad
}

// SetGrad overwrites the node's accumulated gradient.
//
// It has exactly two jobs: seeding the output node (typically with 1)
// before Backward, and resetting persistent parameters between training
// examples. Backward itself never overwrites, it only accumulates.
func (n *Node) SetGrad(g float64) {
	n.grad = g
}

// Op returns the kind of operation that produced the node.
// Leaves return OpLeaf.
func (n *Node) Op() Op {
	if n.op == nil {
		return OpLeaf
	}
	return n.op.Op()
}

// Children returns the nodes consumed by the producing operation, in
// operand order. Leaves return nil. The same node may appear more than
// once (e.g. both operands of Square).
func (n *Node) Children() []*Node {
	if n.op == nil {
		return nil
	}
	return n.op.Inputs()
}

// Add returns a new node holding a + b.
func (a *Node) Add(b *Node) *Node {
	out := &Node{value: a.value + b.value}
	out.op = newAddOp(a, b)
	return out
}

// Mul returns a new node holding a * b.
func (a *Node) Mul(b *Node) *Node {
	out := &Node{value: a.value * b.value}
	out.op = newMulOp(a, b)
	return out
}

// Sub returns a new node holding a - b.
//
// Subtraction is derived, not a primitive: the graph records
// a + (b * -1), which keeps the operation set at Add/Mul/Tanh and still
// yields d/da = 1 and d/db = -1 through the product rule.
func (a *Node) Sub(b *Node) *Node {
	return a.Add(b.Mul(Constant(-1)))
}

// Square returns a new node holding a².
//
// Built as a * a with both operands the same node, so a receives both
// product-rule contributions during Backward: d(a²)/da = 2a.
func (a *Node) Square() *Node {
	return a.Mul(a)
}

// Tanh returns a new node holding tanh(a).
//
// Tanh is the saturating activation of the network layers; for |a| >> 1
// the output approaches ±1 and the local derivative 1 - tanh²(a)
// approaches zero. Saturation is legitimate behavior, not an error.
func (a *Node) Tanh() *Node {
	out := &Node{value: math.Tanh(a.value)}
	out.op = newTanhOp(a, out)
	return out
}

// ApplyGrad performs one gradient-descent update on a leaf node: the
// accumulated gradient is clamped to [-clip, clip], then the value is
// decremented by rate times the clamped gradient.
//
// Clipping bounds the step a single example can take when the loss
// surface is steep; it does not alter the stored gradient.
//
// Only leaf nodes may be updated. Interior nodes are recomputed by every
// forward pass, so mutating one would desynchronize the graph; calling
// ApplyGrad on an interior node panics, as does a non-positive clip.
func (n *Node) ApplyGrad(rate, clip float64) {
	if n.op != nil {
		panic(fmt.Sprintf("autodiff: ApplyGrad on non-leaf node (op=%s)", n.op.Op()))
	}
	if clip <= 0 {
		panic(fmt.Sprintf("autodiff: ApplyGrad clip must be positive, got %v", clip))
	}
	g := n.grad
	if g > clip {
		g = clip
	} else if g < -clip {
		g = -clip
	}
	n.value -= rate * g
}
