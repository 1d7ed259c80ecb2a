package tt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensornet/internal/tensor"
)

func TestContract_ProductState(t *testing.T) {
	a := mustDense(t, []complex128{1, 2}, 1, 2, 1)
	b := mustDense(t, []complex128{3, 1i}, 1, 2, 1)

	full, err := Contract([]*tensor.Dense[complex128]{a, b})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2, 2, 1}, full.Shape())
	assert.Equal(t, []complex128{3, 1i, 6, 2i}, full.Data())
}

func TestContract_SharedBond(t *testing.T) {
	// a[0, i, k] = i+k, b[k, j, 0] = k*j + 1
	a := mustDense(t, []complex128{0, 1, 1, 2}, 1, 2, 2)
	b := mustDense(t, []complex128{1, 1, 1, 2}, 2, 2, 1)

	full, err := Contract([]*tensor.Dense[complex128]{a, b})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var want complex128
			for k := 0; k < 2; k++ {
				want += a.At(0, i, k) * b.At(k, j, 0)
			}
			assert.Equal(t, want, full.At(0, i, j, 0))
		}
	}
}

func TestContract_Errors(t *testing.T) {
	_, err := Contract(nil)
	assert.ErrorIs(t, err, ErrEmptyChain)

	a := mustDense(t, []complex128{1, 2, 3, 4}, 1, 2, 2)
	c := mustDense(t, []complex128{1, 2, 3}, 3, 1, 1)
	_, err = Contract([]*tensor.Dense[complex128]{a, c})
	assert.ErrorIs(t, err, ErrBondMismatch)
}

func TestContract_DoesNotAlias(t *testing.T) {
	a := mustDense(t, []complex128{1, 2}, 1, 2, 1)

	full, err := Contract([]*tensor.Dense[complex128]{a})
	require.NoError(t, err)

	full.Data()[0] = 9
	assert.Equal(t, complex128(1), a.At(0, 0, 0))
}

func TestRelativeError(t *testing.T) {
	ref := mustDense(t, []complex128{3, 4i}, 2)
	approx := mustDense(t, []complex128{3, 3i}, 2)

	e, err := RelativeError(ref, approx)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, e, 1e-15)

	zero := mustDense(t, []complex128{0, 0}, 2)
	e, err = RelativeError(zero, zero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	e, err = RelativeError(zero, ref)
	require.NoError(t, err)
	assert.True(t, math.IsInf(e, 1))

	_, err = RelativeError(ref, mustDense(t, []complex128{1}, 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRanks(t *testing.T) {
	a := mustDense(t, make([]float64, 6), 1, 2, 3)
	b := mustDense(t, make([]float64, 12), 3, 2, 2)

	assert.Equal(t, []int{1, 3, 2}, Ranks([]Node[float64]{{Tensor: a}, {Tensor: b}}))
	assert.Nil(t, Ranks([]Node[float64]{}))
}
