package tt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensornet/internal/tensor"
)

// randomChain builds a chain with the given bond dimensions and physical
// size phys at every site. Cores are named site0, site1, ...
func randomChain(t *testing.T, rng *rand.Rand, ranks []int, phys int) []Node[float64] {
	t.Helper()
	state := make([]Node[float64], len(ranks)-1)
	for i := range state {
		shape := tensor.Shape{ranks[i], phys, ranks[i+1]}
		data := make([]float64, shape.NumElements())
		for j := range data {
			data[j] = rng.NormFloat64()
		}
		x, err := tensor.FromSlice(data, shape)
		require.NoError(t, err)
		state[i] = Node[float64]{
			Name:      fmt.Sprintf("site%d", i),
			AxisNames: []string{"left", "phys", "right"},
			Tensor:    x,
		}
	}
	return state
}

func randomComplexChain(t *testing.T, rng *rand.Rand, ranks []int, phys int) []Node[complex128] {
	t.Helper()
	state := make([]Node[complex128], len(ranks)-1)
	for i := range state {
		shape := tensor.Shape{ranks[i], phys, ranks[i+1]}
		data := make([]complex128, shape.NumElements())
		for j := range data {
			data[j] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
		x, err := tensor.FromSlice(data, shape)
		require.NoError(t, err)
		state[i] = Node[complex128]{Name: fmt.Sprintf("site%d", i), Tensor: x}
	}
	return state
}

func randomCMat(rng *rand.Rand, rows, cols int) *cmat {
	m := newCMat(rows, cols)
	for i := range m.Data {
		m.Data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return m
}

func mustDense[T tensor.DType](t *testing.T, data []T, shape ...int) *tensor.Dense[T] {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape(shape))
	require.NoError(t, err)
	return x
}

// within allows a little round-off on top of the requested tolerance.
func within(eps float64) float64 {
	return eps*(1+1e-9) + 1e-10
}
