package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

// initBound is the half-width of the uniform initialization range.
//
// Parameters start in U(-0.1, 0.1): small enough that every tanh unit
// begins well inside its linear region, large enough to break symmetry
// between neurons.
const initBound = 0.1

// uniformLeaf creates a leaf parameter drawn from U(-initBound, initBound).
//
// The generator is injected by the caller, so construction is exactly
// reproducible from a seed; the package never touches global rand state.
func uniformLeaf(rng *rand.Rand) *autodiff.Node {
	return autodiff.Constant((rng.Float64()*2.0 - 1.0) * initBound)
}
