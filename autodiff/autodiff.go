// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar computation graphs.
//
// Every arithmetic method on a Node computes its value eagerly and
// records the operation, so a chain of calls builds the graph as a
// side effect. Backward then walks that graph once in reverse
// topological order and accumulates d(root)/d(node) into every node.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    x := autodiff.Constant(0.5)
//	    w := autodiff.Constant(-1.2)
//	    y := x.Mul(w).Tanh()
//
//	    y.SetGrad(1.0)
//	    y.Backward()
//
//	    fmt.Println(x.Grad()) // dy/dx
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
)

// Node is one scalar in a computation graph.
type Node = autodiff.Node

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operation records how a node was computed and how gradients flow
// back through it.
type Operation = autodiff.Operation

// Operation kinds.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpTanh = autodiff.OpTanh
)

// Constant creates a leaf node holding value.
//
// Example:
//
//	x := autodiff.Constant(2.0)
//	y := x.Square() // y.Value() == 4.0
func Constant(value float64) *Node {
	return autodiff.Constant(value)
}
