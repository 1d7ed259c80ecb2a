// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tt compresses tensor-network chains into Tensor-Train form.
//
// A chain is a slice of Node values whose tensors are rank-3 cores shaped
// (left bond, physical, right bond), adjacent cores sharing a bond. Compress
// widens every core to complex128, rounds the chain so that the relative
// Frobenius error of its full contraction stays within eps, and hands each
// rounded core back with the name and axis names of the input at the same
// position.
//
// The rounding itself sits behind the Decomposer interface. The default,
// SVDRounder, does an orthogonalisation sweep followed by truncated SVDs.
//
// Example:
//
//	out, err := tt.Compress(state, 1e-6)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tt.Ranks(out))
package tt

import (
	"github.com/born-ml/tensornet/internal/tt"
	"github.com/born-ml/tensornet/tensor"
)

// Node is one named, axis-labelled tensor of a chain.
type Node[T tensor.DType] = tt.Node[T]

// Decomposer rounds a Tensor-Train chain to a relative tolerance.
type Decomposer = tt.Decomposer

// SVDRounder is the default Decomposer.
type SVDRounder = tt.SVDRounder

// RounderConfig configures SVDRounder.
type RounderConfig = tt.RounderConfig

// Errors returned by this package. Match them with errors.Is.
var (
	ErrDecompositionFailure = tt.ErrDecompositionFailure
	ErrNegativeEps          = tt.ErrNegativeEps
	ErrNilTensor            = tt.ErrNilTensor
	ErrCoreRank             = tt.ErrCoreRank
	ErrBondMismatch         = tt.ErrBondMismatch
	ErrSVDFailed            = tt.ErrSVDFailed
	ErrEmptyChain           = tt.ErrEmptyChain
	ErrShapeMismatch        = tt.ErrShapeMismatch
)

// Compress rounds state to relative tolerance eps with the default SVDRounder.
func Compress[T tensor.DType](state []Node[T], eps float64) ([]Node[complex128], error) {
	return tt.Compress(state, eps)
}

// CompressWith rounds state to relative tolerance eps with d.
func CompressWith[T tensor.DType](state []Node[T], eps float64, d Decomposer) ([]Node[complex128], error) {
	return tt.CompressWith(state, eps, d)
}

// NewSVDRounder creates an SVDRounder.
func NewSVDRounder(cfg RounderConfig) *SVDRounder {
	return tt.NewSVDRounder(cfg)
}

// DefaultRounderConfig returns a config with no rank cap and no logging.
func DefaultRounderConfig() RounderConfig {
	return tt.DefaultRounderConfig()
}

// Validate checks that state is a well-formed chain.
func Validate[T tensor.DType](state []Node[T]) error {
	return tt.Validate(state)
}

// Ranks returns the bond dimensions of a valid chain.
func Ranks[T tensor.DType](state []Node[T]) []int {
	return tt.Ranks(state)
}

// Contract multiplies out a chain of cores into its full tensor.
func Contract(cores []*tensor.Dense[complex128]) (*tensor.Dense[complex128], error) {
	return tt.Contract(cores)
}

// ContractNodes widens a chain of nodes to complex128 and contracts it.
func ContractNodes[T tensor.DType](state []Node[T]) (*tensor.Dense[complex128], error) {
	return tt.ContractNodes(state)
}

// RelativeError returns the relative Frobenius distance of approx from ref.
func RelativeError(ref, approx *tensor.Dense[complex128]) (float64, error) {
	return tt.RelativeError(ref, approx)
}

// ReconstructionError contracts both chains and returns their relative error.
func ReconstructionError[T tensor.DType](original []Node[T], compressed []Node[complex128]) (float64, error) {
	return tt.ReconstructionError(original, compressed)
}
