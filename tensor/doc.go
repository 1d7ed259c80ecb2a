// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensor type used across tensornet.
//
// # Overview
//
// Dense[T] is a row-major (C-order) array with element type T. Layout
// operations return fresh tensors and never alias their inputs:
//   - Transpose permutes axes
//   - Reshape changes the shape while keeping row-major order
//   - ToComplex128 widens any supported dtype to complex128
//
// # Basic Usage
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	if err != nil {
//	    return err
//	}
//	y, _ := x.Transpose()            // Shape: [3, 2]
//	z, _ := y.Reshape(tensor.Shape{6}) // Shape: [6]
//
// # Supported Data Types
//
//   - float32, float64
//   - int32, int64, uint8
//   - complex64, complex128
//
// Element-wise kernels split large tensors across goroutines and return only
// once all work is done, so every function here is synchronous.
package tensor
