package tt

import (
	"fmt"
	"math"

	"github.com/born-ml/tensornet/internal/tensor"
)

// Decomposer rounds a Tensor-Train chain to a relative tolerance.
//
// Round receives valid rank-3 cores and must return the same number of
// cores whose contraction is within eps (relative Frobenius norm) of the
// input's. It must not modify its input.
type Decomposer interface {
	Round(cores []*tensor.Dense[complex128], eps float64) ([]*tensor.Dense[complex128], error)
}

// Compress rounds state with the default SVD rounder.
func Compress[T tensor.DType](state []Node[T], eps float64) ([]Node[complex128], error) {
	return CompressWith(state, eps, NewSVDRounder(DefaultRounderConfig()))
}

// CompressWith rounds state with d.
//
// Every core is widened to complex128 before rounding. The i-th result
// inherits the i-th input's Name and AxisNames. Errors from d are returned
// wrapped in ErrDecompositionFailure.
func CompressWith[T tensor.DType](state []Node[T], eps float64, d Decomposer) ([]Node[complex128], error) {
	if eps < 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeEps, eps)
	}
	if err := Validate(state); err != nil {
		return nil, err
	}
	if len(state) == 0 {
		return []Node[complex128]{}, nil
	}

	cores := make([]*tensor.Dense[complex128], len(state))
	for i, n := range state {
		cores[i] = tensor.ToComplex128(n.Tensor)
	}

	rounded, err := d.Round(cores, eps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompositionFailure, err)
	}
	if len(rounded) != len(state) {
		return nil, fmt.Errorf("%w: got %d cores for a chain of %d",
			ErrDecompositionFailure, len(rounded), len(state))
	}

	out := make([]Node[complex128], len(state))
	for i, n := range state {
		if rounded[i] == nil {
			return nil, fmt.Errorf("%w: core %d is nil", ErrDecompositionFailure, i)
		}
		out[i] = Node[complex128]{
			Name:      n.Name,
			AxisNames: append([]string(nil), n.AxisNames...),
			Tensor:    rounded[i],
		}
	}
	return out, nil
}
