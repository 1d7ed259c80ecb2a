package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrBadShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Permute returns the shape reordered by axes: result[i] = s[axes[i]].
// Axes must already be validated with ValidatePermutation.
func (s Shape) Permute(axes []int) Shape {
	out := make(Shape, len(axes))
	for i, ax := range axes {
		out[i] = s[ax]
	}
	return out
}

// ValidatePermutation checks that axes is a permutation of [0, ndim).
func ValidatePermutation(axes []int, ndim int) error {
	if len(axes) != ndim {
		return fmt.Errorf("%w: %d axes for %dD tensor", ErrBadPermutation, len(axes), ndim)
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return fmt.Errorf("%w: axis %d out of range for %dD tensor", ErrBadPermutation, ax, ndim)
		}
		if seen[ax] {
			return fmt.Errorf("%w: duplicate axis %d", ErrBadPermutation, ax)
		}
		seen[ax] = true
	}
	return nil
}

// IsIdentity reports whether axes is the identity permutation.
func IsIdentity(axes []int) bool {
	for i, ax := range axes {
		if i != ax {
			return false
		}
	}
	return true
}
