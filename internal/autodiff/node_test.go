package autodiff_test

import (
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// TestConstant_Leaf tests leaf construction.
func TestConstant_Leaf(t *testing.T) {
	n := autodiff.Constant(5.0)

	if n.Value() != 5.0 {
		t.Errorf("Value() = %v, want 5.0", n.Value())
	}
	if n.Grad() != 0.0 {
		t.Errorf("Grad() = %v, want 0.0", n.Grad())
	}
	if n.Op() != autodiff.OpLeaf {
		t.Errorf("Op() = %v, want %v", n.Op(), autodiff.OpLeaf)
	}
	if n.Children() != nil {
		t.Errorf("Children() = %v, want nil", n.Children())
	}
}

// TestAdd_Forward tests a + b construction.
func TestAdd_Forward(t *testing.T) {
	a := autodiff.Constant(2.0)
	b := autodiff.Constant(3.0)
	sum := a.Add(b)

	if sum.Value() != 5.0 {
		t.Errorf("Value() = %v, want 5.0", sum.Value())
	}
	if sum.Op() != autodiff.OpAdd {
		t.Errorf("Op() = %v, want %v", sum.Op(), autodiff.OpAdd)
	}
	children := sum.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("Children() = %v, want [a, b] in operand order", children)
	}
}

// TestMul_Forward tests a * b construction.
func TestMul_Forward(t *testing.T) {
	a := autodiff.Constant(2.0)
	b := autodiff.Constant(3.0)
	prod := a.Mul(b)

	if prod.Value() != 6.0 {
		t.Errorf("Value() = %v, want 6.0", prod.Value())
	}
	if prod.Op() != autodiff.OpMul {
		t.Errorf("Op() = %v, want %v", prod.Op(), autodiff.OpMul)
	}
}

// TestSub_Forward tests that a - b is derived as a + (b * -1).
func TestSub_Forward(t *testing.T) {
	a := autodiff.Constant(2.0)
	b := autodiff.Constant(3.0)
	diff := a.Sub(b)

	if diff.Value() != -1.0 {
		t.Errorf("Value() = %v, want -1.0", diff.Value())
	}
	if diff.Op() != autodiff.OpAdd {
		t.Errorf("Op() = %v, want %v (derived form)", diff.Op(), autodiff.OpAdd)
	}
	children := diff.Children()
	if children[0] != a {
		t.Error("Children()[0] should be the left operand")
	}
	neg := children[1]
	if neg.Op() != autodiff.OpMul {
		t.Errorf("negation Op() = %v, want %v", neg.Op(), autodiff.OpMul)
	}
	if negChildren := neg.Children(); negChildren[0] != b || negChildren[1].Value() != -1.0 {
		t.Error("negation should be b * constant(-1)")
	}
}

// TestSquare_SharesChild tests that a² uses the same node for both operands.
func TestSquare_SharesChild(t *testing.T) {
	a := autodiff.Constant(4.0)
	sq := a.Square()

	if sq.Value() != 16.0 {
		t.Errorf("Value() = %v, want 16.0", sq.Value())
	}
	children := sq.Children()
	if children[0] != a || children[1] != a {
		t.Error("Square() should share the input node as both operands")
	}
}

// TestTanh_Forward tests tanh construction and saturation.
func TestTanh_Forward(t *testing.T) {
	zero := autodiff.Constant(0.0).Tanh()
	if zero.Value() != 0.0 {
		t.Errorf("Tanh(0).Value() = %v, want 0.0", zero.Value())
	}
	if zero.Op() != autodiff.OpTanh {
		t.Errorf("Op() = %v, want %v", zero.Op(), autodiff.OpTanh)
	}

	// Saturation is legitimate: output near ±1, derivative near zero.
	sat := autodiff.Constant(5.0).Tanh()
	if sat.Value() < 0.999 || sat.Value() > 1.0 {
		t.Errorf("Tanh(5).Value() = %v, want within (0.999, 1.0]", sat.Value())
	}
	sat.SetGrad(1.0)
	sat.Backward()
	if g := sat.Children()[0].Grad(); g < 0 || g > 1e-3 {
		t.Errorf("saturated gradient = %v, want within [0, 1e-3]", g)
	}
}

// TestSetGrad_Overwrites tests that SetGrad replaces rather than accumulates.
func TestSetGrad_Overwrites(t *testing.T) {
	n := autodiff.Constant(1.0)
	n.SetGrad(3.0)
	n.SetGrad(0.5)
	if n.Grad() != 0.5 {
		t.Errorf("Grad() = %v, want 0.5", n.Grad())
	}
}

// TestApplyGrad_Clipping tests the update step's gradient clamp.
func TestApplyGrad_Clipping(t *testing.T) {
	tests := []struct {
		name string
		grad float64
		want float64 // value after update with rate 0.1, clip 1.0
	}{
		{"grad above clip", 5.0, 1.0 - 0.1*1.0},
		{"grad below negative clip", -7.0, 1.0 + 0.1*1.0},
		{"grad within clip", 0.5, 1.0 - 0.1*0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := autodiff.Constant(1.0)
			n.SetGrad(tt.grad)
			n.ApplyGrad(0.1, 1.0)

			if n.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", n.Value(), tt.want)
			}
			// The clamp bounds the step only; the stored gradient is untouched.
			if n.Grad() != tt.grad {
				t.Errorf("Grad() = %v, want %v", n.Grad(), tt.grad)
			}
		})
	}
}

// TestApplyGrad_InteriorNodePanics tests that only leaves can be updated.
func TestApplyGrad_InteriorNodePanics(t *testing.T) {
	sum := autodiff.Constant(1.0).Add(autodiff.Constant(2.0))

	defer func() {
		if recover() == nil {
			t.Error("ApplyGrad on an interior node should panic")
		}
	}()
	sum.ApplyGrad(0.1, 1.0)
}

// TestApplyGrad_NonPositiveClipPanics tests the clip precondition.
func TestApplyGrad_NonPositiveClipPanics(t *testing.T) {
	n := autodiff.Constant(1.0)

	defer func() {
		if recover() == nil {
			t.Error("ApplyGrad with clip <= 0 should panic")
		}
	}()
	n.ApplyGrad(0.1, 0)
}

// TestOp_String tests the operation kind names.
func TestOp_String(t *testing.T) {
	tests := []struct {
		op   autodiff.Op
		want string
	}{
		{autodiff.OpLeaf, "leaf"},
		{autodiff.OpAdd, "add"},
		{autodiff.OpMul, "mul"},
		{autodiff.OpTanh, "tanh"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
