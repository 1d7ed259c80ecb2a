package tt

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// cmat is a row-major complex matrix. Core unfoldings are cmats over the
// core's own backing slice, since a C-order (l, n, r) core is both an
// (l*n) x r and an l x (n*r) matrix without moving data.
type cmat struct {
	cblas128.General
}

func newCMat(rows, cols int) *cmat {
	return cmatOf(rows, cols, make([]complex128, rows*cols))
}

// cmatOf wraps data, which must hold rows*cols elements, without copying.
func cmatOf(rows, cols int, data []complex128) *cmat {
	return &cmat{cblas128.General{Rows: rows, Cols: cols, Stride: cols, Data: data}}
}

func (m *cmat) at(i, j int) complex128 {
	return m.Data[i*m.Stride+j]
}

// mul returns op(a)*op(b), with op chosen by ta and tb.
func mul(ta, tb blas.Transpose, a, b *cmat) *cmat {
	ar, ac := a.Rows, a.Cols
	if ta != blas.NoTrans {
		ar, ac = ac, ar
	}
	br, bc := b.Rows, b.Cols
	if tb != blas.NoTrans {
		br, bc = bc, br
	}
	if ac != br {
		panic("tt: matrix dimension mismatch")
	}

	out := newCMat(ar, bc)
	cblas128.Gemm(ta, tb, 1, a.General, b.General, 0, out.General)
	return out
}

// adjoint returns a materialised conjugate transpose of m, for callers that
// need its data laid out row-major.
func (m *cmat) adjoint() *cmat {
	out := newCMat(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Data[j*out.Stride+i] = cmplx.Conj(m.at(i, j))
		}
	}
	return out
}

func vec(data []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(data), Inc: 1, Data: data}
}

// frobenius returns the Frobenius norm of a flat complex slice.
func frobenius(data []complex128) float64 {
	if len(data) == 0 {
		return 0
	}
	return cblas128.Nrm2(vec(data))
}
