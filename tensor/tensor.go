// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensornet/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, complex64, complex128.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a dense row-major tensor.
//
// Example:
//
//	x, _ := tensor.Zeros[complex128](tensor.Shape{2, 3})
//	x.Set(1i, 0, 2)
type Dense[T DType] = tensor.Dense[T]

// Errors returned by tensor construction and layout operations.
var (
	ErrBadShape       = tensor.ErrBadShape
	ErrSizeMismatch   = tensor.ErrSizeMismatch
	ErrBadPermutation = tensor.ErrBadPermutation
	ErrReshape        = tensor.ErrReshape
)

// Creation functions

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape) (*Dense[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Dense[T], error) {
	return tensor.Zeros[T](shape)
}

// Arange creates a tensor whose i-th flat element equals i.
func Arange[T DType](shape Shape) (*Dense[T], error) {
	return tensor.Arange[T](shape)
}

// Conversion

// ToComplex128 returns a copy of t widened to complex128.
func ToComplex128[T DType](t *Dense[T]) *Dense[complex128] {
	return tensor.ToComplex128(t)
}
