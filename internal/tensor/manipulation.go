package tensor

import (
	"fmt"

	"github.com/born-ml/tensornet/internal/parallel"
)

// Transpose permutes the tensor's axes: axis i of the result is axis axes[i]
// of t. With no axes, all dimensions are reversed.
//
// Example:
//
//	x, _ := tensor.Zeros[float64](Shape{2, 3, 4})
//	y, _ := x.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (t *Dense[T]) Transpose(axes ...int) (*Dense[T], error) {
	ndim := len(t.shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if err := ValidatePermutation(axes, ndim); err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	result := newDense[T](t.shape.Permute(axes))
	transposeData(result.data, t.data, t.shape, t.Strides(), result.Strides(), axes)
	return result, nil
}

// Reshape returns a copy of the tensor with a new shape.
// The number of elements must be unchanged; data keeps its row-major order.
func (t *Dense[T]) Reshape(shape Shape) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != len(t.data) {
		return nil, fmt.Errorf("%w: %v -> %v (different number of elements)", ErrReshape, t.shape, shape)
	}

	result := newDense[T](shape)
	copy(result.data, t.data)
	return result, nil
}

// transposeData scatters src (shape, srcStrides) into dst, whose axis i is
// source axis axes[i] and whose strides are dstStrides.
func transposeData[T DType](dst, src []T, shape Shape, srcStrides, dstStrides, axes []int) {
	ndim := len(shape)

	// strideOf[srcDim] is the destination stride of source axis srcDim.
	strideOf := make([]int, ndim)
	for dstDim, srcDim := range axes {
		strideOf[srcDim] = dstStrides[dstDim]
	}

	parallel.For(len(src), func(i int) {
		idx := i
		dstIdx := 0
		for dim := 0; dim < ndim; dim++ {
			dstIdx += (idx / srcStrides[dim]) * strideOf[dim]
			idx %= srcStrides[dim]
		}
		dst[dstIdx] = src[i]
	}, parallel.DefaultConfig())
}
