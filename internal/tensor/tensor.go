package tensor

import "fmt"

// Dense is a dense, row-major (C-order) tensor with element type T.
//
// Dense owns its backing slice. Layout operations such as Transpose and
// Reshape always return a new tensor with its own buffer, so results never
// alias their inputs.
//
// Example:
//
//	t, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	v := t.At(1, 2) // 6
type Dense[T DType] struct {
	shape  Shape
	stride []int
	data   []T
}

// newDense allocates a zero-filled tensor for an already validated shape.
func newDense[T DType](shape Shape) *Dense[T] {
	return &Dense[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}
}

// Shape returns the tensor's shape.
func (t *Dense[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Dense[T]) Strides() []int {
	return t.stride
}

// Rank returns the number of axes.
func (t *Dense[T]) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Dense[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Dense[T]) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Dense[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Dense[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Dense[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Dense[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		off += idx * t.stride[i]
	}
	return off
}

// Clone creates a deep copy of the tensor.
func (t *Dense[T]) Clone() *Dense[T] {
	c := newDense[T](t.shape)
	copy(c.data, t.data)
	return c
}

// String returns a human-readable representation of the tensor.
func (t *Dense[T]) String() string {
	return fmt.Sprintf("Dense[%s]%v", t.DType(), t.shape)
}
