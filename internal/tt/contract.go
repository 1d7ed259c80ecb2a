package tt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"

	"github.com/born-ml/tensornet/internal/tensor"
)

// Contract multiplies out a chain of cores into the full tensor of shape
// (r_0, n_1, ..., n_d, r_d). The outer bonds are kept as axes.
func Contract(cores []*tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	if len(cores) == 0 {
		return nil, ErrEmptyChain
	}
	shapes, err := coreShapes(cores)
	if err != nil {
		return nil, err
	}

	s0 := shapes[0]
	acc := cmatOf(s0[0]*s0[1], s0[2], cores[0].Data())
	shape := tensor.Shape{s0[0], s0[1]}
	for i := 1; i < len(cores); i++ {
		s := shapes[i]
		next := cmatOf(s[0], s[1]*s[2], cores[i].Data())
		prod := mul(blas.NoTrans, blas.NoTrans, acc, next)
		// (rows x n*r) reinterpreted as (rows*n x r).
		acc = cmatOf(prod.Rows*s[1], s[2], prod.Data)
		shape = append(shape, s[1])
	}
	shape = append(shape, shapes[len(shapes)-1][2])

	return tensor.FromSlice(acc.Data, shape)
}

// ContractNodes widens a chain of nodes to complex128 and contracts it.
func ContractNodes[T tensor.DType](state []Node[T]) (*tensor.Dense[complex128], error) {
	if err := Validate(state); err != nil {
		return nil, err
	}
	cores := make([]*tensor.Dense[complex128], len(state))
	for i, n := range state {
		cores[i] = tensor.ToComplex128(n.Tensor)
	}
	return Contract(cores)
}

// RelativeError returns ‖ref - approx‖_F / ‖ref‖_F. It is 0 when both are
// zero and +Inf when only ref is.
func RelativeError(ref, approx *tensor.Dense[complex128]) (float64, error) {
	if !ref.Shape().Equal(approx.Shape()) {
		return 0, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, ref.Shape(), approx.Shape())
	}

	a, b := ref.Data(), approx.Data()
	diff := make([]complex128, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	num, den := frobenius(diff), frobenius(a)
	switch {
	case den > 0:
		return num / den, nil
	case num == 0:
		return 0, nil
	default:
		return math.Inf(1), nil
	}
}

// ReconstructionError contracts both chains and returns their relative error.
func ReconstructionError[T tensor.DType](original []Node[T], compressed []Node[complex128]) (float64, error) {
	ref, err := ContractNodes(original)
	if err != nil {
		return 0, err
	}
	approx, err := ContractNodes(compressed)
	if err != nil {
		return 0, err
	}
	return RelativeError(ref, approx)
}
