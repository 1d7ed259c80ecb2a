package tensor

import "fmt"

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrSizeMismatch, shape, shape.NumElements(), len(data))
	}

	t := newDense[T](shape)
	copy(t.data, data)
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return newDense[T](shape), nil
}

// Arange creates a tensor whose i-th flat element equals i, converted to T
// (integer types wrap on overflow). Useful for tracking where elements move under layout changes.
func Arange[T DType](shape Shape) (*Dense[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = fromFloat64[T](float64(i))
	}
	return t, nil
}

// fromFloat64 converts v to the element type T.
func fromFloat64[T DType](v float64) T {
	var out any
	var dummy T
	switch any(dummy).(type) {
	case float32:
		out = float32(v)
	case float64:
		out = v
	case int32:
		out = int32(int64(v))
	case int64:
		out = int64(v)
	case uint8:
		// Through int64 so that values past 255 wrap modulo 256.
		out = uint8(int64(v))
	case complex64:
		out = complex(float32(v), 0)
	case complex128:
		out = complex(v, 0)
	default:
		panic("unsupported type")
	}
	return out.(T)
}
