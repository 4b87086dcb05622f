package autodiff

// Backward propagates gradients from n to every node reachable through
// operation inputs, applying the chain rule.
//
// The caller seeds n's gradient first (SetGrad(1) on a loss node);
// Backward on an unseeded graph propagates zeros.
//
// Algorithm:
//  1. Collect the reachable graph in topological order (inputs before
//     consumers) with a depth-first walk and a visited set.
//  2. Walk that order in reverse, so each node's local rule runs exactly
//     once, after every consumer has already deposited its contribution.
//  3. Accumulate the rule's per-input contributions into the inputs.
//
// A node reused by several consumers therefore receives exactly the sum
// of their contributions. Re-running the rule once per consumer instead
// would double-count whenever the reused node has interior structure of
// its own.
//
// Gradients accumulate additively across calls; reset persistent
// parameters with SetGrad(0) before the next example's pass.
func (n *Node) Backward() {
	order := topoSort(n)

	// Reverse topological order: consumers before producers.
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if node.op == nil {
			continue // Leaves have no inputs
		}
		inputGrads := node.op.Backward(node.grad)
		for j, input := range node.op.Inputs() {
			input.grad += inputGrads[j]
		}
	}
}

// topoSort returns every node reachable from root, inputs before
// consumers. The visited set keys on pointer identity, which is what
// makes shared subexpressions single-visit.
func topoSort(root *Node) []*Node {
	visited := make(map[*Node]bool)
	order := make([]*Node, 0, 64) // Pre-allocate for common case

	var visit func(*Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		if n.op != nil {
			for _, input := range n.op.Inputs() {
				visit(input)
			}
		}
		order = append(order, n)
	}
	visit(root)

	return order
}
