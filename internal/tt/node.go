// Package tt compresses tensor-network chains into Tensor-Train form.
//
// A chain (TN state) is a sequence of rank-3 cores shaped
// (left bond, physical, right bond), where each core's right bond equals the
// next core's left bond. Compress rounds the chain to lower bond dimensions
// while keeping the relative error of the full contraction within eps.
package tt

import (
	"fmt"

	"github.com/born-ml/tensornet/internal/tensor"
)

// Node is one named, axis-labelled tensor of a chain.
type Node[T tensor.DType] struct {
	Name      string
	AxisNames []string
	Tensor    *tensor.Dense[T]
}

// Ranks returns the bond dimensions of a chain: the left bond of the first
// core followed by the right bond of every core. The chain must be valid.
func Ranks[T tensor.DType](state []Node[T]) []int {
	if len(state) == 0 {
		return nil
	}
	ranks := []int{state[0].Tensor.Shape()[0]}
	for _, n := range state {
		ranks = append(ranks, n.Tensor.Shape()[2])
	}
	return ranks
}

// Validate checks that every node has a rank-3 tensor and that adjacent
// bonds agree.
func Validate[T tensor.DType](state []Node[T]) error {
	shapes := make([]tensor.Shape, len(state))
	for i, n := range state {
		if n.Tensor == nil {
			return fmt.Errorf("%w: node %d (%q)", ErrNilTensor, i, n.Name)
		}
		shapes[i] = n.Tensor.Shape()
	}
	return checkChain(shapes)
}

func checkChain(shapes []tensor.Shape) error {
	for i, s := range shapes {
		if len(s) != 3 {
			return fmt.Errorf("%w: core %d has shape %v", ErrCoreRank, i, s)
		}
		if i > 0 && shapes[i-1][2] != s[0] {
			return fmt.Errorf("%w: core %d right bond %d, core %d left bond %d",
				ErrBondMismatch, i-1, shapes[i-1][2], i, s[0])
		}
	}
	return nil
}

func coreShapes(cores []*tensor.Dense[complex128]) ([]tensor.Shape, error) {
	shapes := make([]tensor.Shape, len(cores))
	for i, c := range cores {
		if c == nil {
			return nil, fmt.Errorf("%w: core %d", ErrNilTensor, i)
		}
		shapes[i] = c.Shape()
	}
	return shapes, checkChain(shapes)
}
