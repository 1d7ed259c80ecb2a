package tt

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// gsTol is the residual norm below which a Gram-Schmidt candidate is
// treated as already spanned. Candidates start with unit norm.
const gsTol = 1e-8

// factor is a truncated left factorisation a ≈ q*r where q has orthonormal
// columns spanning a's dominant left singular subspace and r = qᴴ*a.
type factor struct {
	q, r *cmat
	// tail is the Frobenius norm of the discarded singular values, which
	// equals ‖a - q*r‖_F.
	tail float64
}

// leftFactor computes the smallest-rank factor whose discarded tail is at
// most maxErr, keeping at least one and, when maxRank > 0, at most maxRank
// columns.
//
// gonum only factors real matrices, so a = X + iY is embedded as the real
// matrix [[X, -Y], [Y, X]]. Its singular values are those of a, each twice,
// and a left singular vector [u; v] maps to the complex left singular vector
// u + iv of a.
func leftFactor(a *cmat, maxErr float64, maxRank int) (factor, error) {
	m, n := a.Rows, a.Cols
	emb := mat.NewDense(2*m, 2*n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			x, y := real(a.at(i, j)), imag(a.at(i, j))
			emb.Set(i, j, x)
			emb.Set(i, j+n, -y)
			emb.Set(i+m, j, y)
			emb.Set(i+m, j+n, x)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(emb, mat.SVDThin); !ok {
		return factor{}, ErrSVDFailed
	}
	vals := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	k, tail := chooseRank(vals, maxErr, maxRank)

	basis := make([][]complex128, 0, k)
	for c := 0; c < len(vals) && len(basis) < k; c++ {
		v := make([]complex128, m)
		for i := range v {
			v[i] = complex(u.At(i, c), u.At(i+m, c))
		}
		if orthonormalize(v, basis) {
			basis = append(basis, v)
		}
	}
	if len(basis) == 0 {
		// Keep the bond alive for an all-zero matrix.
		e := make([]complex128, m)
		e[0] = 1
		basis = append(basis, e)
	}
	if len(basis) < k {
		// Only reachable through severe round-off; recompute the tail for
		// what was actually kept.
		k = len(basis)
		tail = tailNorm(vals, k)
	}

	q := newCMat(m, k)
	for c, v := range basis {
		for i, x := range v {
			q.Data[i*q.Stride+c] = x
		}
	}
	return factor{q: q, r: mul(blas.ConjTrans, blas.NoTrans, q, a), tail: tail}, nil
}

// chooseRank picks the complex rank to keep from the paired real singular
// values of the embedding.
func chooseRank(vals []float64, maxErr float64, maxRank int) (int, float64) {
	p := len(vals) / 2
	k := p
	for r := 1; r < p; r++ {
		if tailNorm(vals, r) <= maxErr {
			k = r
			break
		}
	}
	if maxRank > 0 && k > maxRank {
		k = maxRank
	}
	return k, tailNorm(vals, k)
}

// tailNorm is the norm of the complex singular values from index k on.
// Each complex value appears twice in vals.
func tailNorm(vals []float64, k int) float64 {
	if 2*k >= len(vals) {
		return 0
	}
	return floats.Norm(vals[2*k:], 2) / math.Sqrt2
}

// orthonormalize makes v orthogonal to every vector in basis (two passes of
// modified Gram-Schmidt) and normalises it. It reports false when v is
// numerically inside the span of basis.
func orthonormalize(v []complex128, basis [][]complex128) bool {
	for pass := 0; pass < 2; pass++ {
		for _, b := range basis {
			proj := cblas128.Dotc(vec(b), vec(v))
			cblas128.Axpy(-proj, vec(b), vec(v))
		}
	}
	nrm := frobenius(v)
	if nrm < gsTol {
		return false
	}
	cblas128.Scal(complex(1/nrm, 0), vec(v))
	return true
}
