package tt

import "errors"

// Sentinel errors returned by the compressor and the default rounder.
var (
	// ErrDecompositionFailure wraps any error raised by a Decomposer, and is
	// also returned when a Decomposer breaks its contract.
	ErrDecompositionFailure = errors.New("tt: decomposition failed")

	// ErrNegativeEps is returned for a tolerance that is negative or NaN.
	ErrNegativeEps = errors.New("tt: eps must be a non-negative number")

	// ErrNilTensor is returned when a node carries no tensor.
	ErrNilTensor = errors.New("tt: node has nil tensor")

	// ErrCoreRank is returned when a core is not a rank-3 (left, physical, right) tensor.
	ErrCoreRank = errors.New("tt: core must have rank 3")

	// ErrBondMismatch is returned when adjacent cores disagree on their shared bond.
	ErrBondMismatch = errors.New("tt: adjacent bond dimensions differ")

	// ErrSVDFailed is returned when the underlying SVD does not converge.
	ErrSVDFailed = errors.New("tt: svd did not converge")

	// ErrEmptyChain is returned when an operation needs at least one core.
	ErrEmptyChain = errors.New("tt: empty chain")

	// ErrShapeMismatch is returned when comparing tensors of different shapes.
	ErrShapeMismatch = errors.New("tt: shapes differ")
)
