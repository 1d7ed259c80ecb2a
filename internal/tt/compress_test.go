package tt

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensornet/internal/tensor"
)

func TestCompress_ReconstructionBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	state := randomChain(t, rng, []int{1, 3, 4, 3, 1}, 2)

	for _, eps := range []float64{0, 1e-6, 1e-2} {
		t.Run(fmt.Sprintf("eps=%g", eps), func(t *testing.T) {
			out, err := Compress(state, eps)
			require.NoError(t, err)
			require.Len(t, out, len(state))

			relErr, err := ReconstructionError(state, out)
			require.NoError(t, err)
			assert.LessOrEqual(t, relErr, within(eps))
		})
	}
}

func TestCompress_LooseToleranceTruncates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	state := randomChain(t, rng, []int{1, 4, 8, 4, 1}, 3)

	for _, eps := range []float64{0.1, 0.5, 0.9} {
		t.Run(fmt.Sprintf("eps=%g", eps), func(t *testing.T) {
			out, err := Compress(state, eps)
			require.NoError(t, err)

			relErr, err := ReconstructionError(state, out)
			require.NoError(t, err)
			assert.LessOrEqual(t, relErr, within(eps))

			before, after := Ranks(state), Ranks(out)
			for i := range before {
				assert.LessOrEqual(t, after[i], before[i], "bond %d", i)
			}
		})
	}
}

func TestCompress_ComplexChain(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	state := randomComplexChain(t, rng, []int{2, 3, 5, 2}, 2)

	out, err := Compress(state, 1e-3)
	require.NoError(t, err)

	relErr, err := ReconstructionError(state, out)
	require.NoError(t, err)
	assert.LessOrEqual(t, relErr, within(1e-3))

	// Outer bonds are never truncated.
	ranks := Ranks(out)
	assert.Equal(t, 2, ranks[0])
	assert.Equal(t, 2, ranks[len(ranks)-1])
}

func TestCompress_RemovesRedundantBond(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	state := randomChain(t, rng, []int{1, 3, 3, 1}, 2)

	// Every column of the first core is the same vector, so bond 0 has
	// true rank 1.
	first := state[0].Tensor
	for i := 0; i < 2; i++ {
		for j := 1; j < 3; j++ {
			first.Set(first.At(0, i, 0), 0, i, j)
		}
	}

	out, err := Compress(state, 1e-10)
	require.NoError(t, err)

	// Bond 1 is bounded by the last core's 2x1 right side.
	assert.Equal(t, []int{1, 1, 2, 1}, Ranks(out))

	relErr, err := ReconstructionError(state, out)
	require.NoError(t, err)
	assert.Less(t, relErr, 1e-9)
}

func TestCompress_Metadata(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	state := randomChain(t, rng, []int{1, 2, 2, 1}, 2)
	state[1].Name = "middle"
	state[1].AxisNames = []string{"a", "b", "c"}

	out, err := Compress(state, 1e-6)
	require.NoError(t, err)

	for i := range state {
		assert.Equal(t, state[i].Name, out[i].Name)
		assert.Equal(t, state[i].AxisNames, out[i].AxisNames)
		assert.Equal(t, tensor.Complex128, out[i].Tensor.DType())
		assert.Equal(t, 3, out[i].Tensor.Rank())
	}

	// Metadata slices are copies.
	out[1].AxisNames[0] = "changed"
	assert.Equal(t, "a", state[1].AxisNames[0])
}

func TestCompress_SingleCore(t *testing.T) {
	x := mustDense(t, []int32{1, 2, 3, 4}, 1, 4, 1)
	state := []Node[int32]{{Name: "only", Tensor: x}}

	out, err := Compress(state, 0.5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []complex128{1, 2, 3, 4}, out[0].Tensor.Data())
	assert.Equal(t, "only", out[0].Name)
}

func TestCompress_Empty(t *testing.T) {
	out, err := Compress([]Node[float32]{}, 0.1)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompress_InputErrors(t *testing.T) {
	good := mustDense(t, []float64{1, 2}, 1, 2, 1)
	wide := mustDense(t, []float64{1, 2, 3, 4}, 1, 2, 2)
	flat := mustDense(t, []float64{1, 2}, 2)

	tests := []struct {
		name    string
		state   []Node[float64]
		eps     float64
		wantErr error
	}{
		{"negative eps", []Node[float64]{{Tensor: good}}, -1e-3, ErrNegativeEps},
		{"nan eps", []Node[float64]{{Tensor: good}}, math.NaN(), ErrNegativeEps},
		{"nil tensor", []Node[float64]{{Tensor: good}, {Name: "hole"}}, 0.1, ErrNilTensor},
		{"rank 1 core", []Node[float64]{{Tensor: flat}}, 0.1, ErrCoreRank},
		{"bond mismatch", []Node[float64]{{Tensor: wide}, {Tensor: good}}, 0.1, ErrBondMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Compress(tt.state, tt.eps)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

// stubDecomposer records its input and returns a canned result.
type stubDecomposer struct {
	got    []*tensor.Dense[complex128]
	gotEps float64
	result func(in []*tensor.Dense[complex128]) ([]*tensor.Dense[complex128], error)
}

func (s *stubDecomposer) Round(cores []*tensor.Dense[complex128], eps float64) ([]*tensor.Dense[complex128], error) {
	s.got, s.gotEps = cores, eps
	return s.result(cores)
}

func TestCompressWith_WidensInput(t *testing.T) {
	x := mustDense(t, []float32{1.5, -2}, 1, 2, 1)
	stub := &stubDecomposer{result: func(in []*tensor.Dense[complex128]) ([]*tensor.Dense[complex128], error) {
		return in, nil
	}}

	out, err := CompressWith([]Node[float32]{{Name: "a", Tensor: x}}, 0.25, stub)
	require.NoError(t, err)

	require.Len(t, stub.got, 1)
	assert.Equal(t, 0.25, stub.gotEps)
	assert.Equal(t, tensor.Complex128, stub.got[0].DType())
	assert.Equal(t, []complex128{1.5, -2}, stub.got[0].Data())
	assert.Equal(t, "a", out[0].Name)
}

func TestCompressWith_PropagatesFailure(t *testing.T) {
	x := mustDense(t, []float64{1, 2}, 1, 2, 1)
	cause := errors.New("did not converge")
	stub := &stubDecomposer{result: func([]*tensor.Dense[complex128]) ([]*tensor.Dense[complex128], error) {
		return nil, cause
	}}

	out, err := CompressWith([]Node[float64]{{Tensor: x}}, 0.1, stub)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrDecompositionFailure)
	assert.ErrorIs(t, err, cause)
}

func TestCompressWith_WrongCoreCount(t *testing.T) {
	x := mustDense(t, []float64{1, 2}, 1, 2, 1)
	stub := &stubDecomposer{result: func(in []*tensor.Dense[complex128]) ([]*tensor.Dense[complex128], error) {
		return append(in, in[0]), nil
	}}

	_, err := CompressWith([]Node[float64]{{Tensor: x}}, 0.1, stub)
	assert.ErrorIs(t, err, ErrDecompositionFailure)
}

func TestCompressWith_NilCore(t *testing.T) {
	x := mustDense(t, []float64{1, 2}, 1, 2, 1)
	stub := &stubDecomposer{result: func([]*tensor.Dense[complex128]) ([]*tensor.Dense[complex128], error) {
		return []*tensor.Dense[complex128]{nil}, nil
	}}

	_, err := CompressWith([]Node[float64]{{Tensor: x}}, 0.1, stub)
	assert.ErrorIs(t, err, ErrDecompositionFailure)
}

func TestCompress_DoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	state := randomChain(t, rng, []int{1, 3, 3, 1}, 2)
	before := make([][]float64, len(state))
	for i, n := range state {
		before[i] = append([]float64(nil), n.Tensor.Data()...)
	}

	_, err := Compress(state, 0.3)
	require.NoError(t, err)

	for i, n := range state {
		assert.Equal(t, before[i], n.Tensor.Data())
	}
}
