package tensor

import "github.com/born-ml/tensornet/internal/parallel"

// ToComplex128 returns a copy of t widened to complex128.
// Real inputs get a zero imaginary part.
func ToComplex128[T DType](t *Dense[T]) *Dense[complex128] {
	result := newDense[complex128](t.shape)
	dst := result.data

	switch src := any(t.data).(type) {
	case []complex128:
		copy(dst, src)
	case []complex64:
		castInto(dst, src, func(v complex64) complex128 { return complex128(v) })
	case []float64:
		castInto(dst, src, func(v float64) complex128 { return complex(v, 0) })
	case []float32:
		castInto(dst, src, func(v float32) complex128 { return complex(float64(v), 0) })
	case []int64:
		castInto(dst, src, func(v int64) complex128 { return complex(float64(v), 0) })
	case []int32:
		castInto(dst, src, func(v int32) complex128 { return complex(float64(v), 0) })
	case []uint8:
		castInto(dst, src, func(v uint8) complex128 { return complex(float64(v), 0) })
	default:
		panic("to complex128: unsupported dtype")
	}
	return result
}

func castInto[S any](dst []complex128, src []S, conv func(S) complex128) {
	parallel.For(len(src), func(i int) {
		dst[i] = conv(src[i])
	}, parallel.DefaultConfig())
}
