package tensor

import "errors"

// Sentinel errors returned by tensor construction and layout operations.
var (
	ErrBadShape       = errors.New("tensor: invalid shape")
	ErrSizeMismatch   = errors.New("tensor: data length does not match shape")
	ErrBadPermutation = errors.New("tensor: invalid axis permutation")
	ErrReshape        = errors.New("tensor: incompatible reshape")
)
