package tt

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/blas"

	"github.com/born-ml/tensornet/internal/tensor"
)

// RounderConfig configures SVDRounder.
type RounderConfig struct {
	// MaxRank caps every rounded bond dimension. Zero means no cap; with a
	// cap the eps bound no longer holds when the cap binds.
	MaxRank int

	// Logger receives debug traces of the chosen ranks. Nil disables logging.
	Logger *zap.Logger
}

// DefaultRounderConfig returns a config with no rank cap and no logging.
func DefaultRounderConfig() RounderConfig {
	return RounderConfig{}
}

// SVDRounder is the default Decomposer: TT-rounding by right-to-left
// orthogonalisation followed by a left-to-right sweep of truncated SVDs.
// It is safe for concurrent use.
type SVDRounder struct {
	maxRank int
	logger  *zap.Logger
}

// NewSVDRounder creates an SVDRounder from cfg.
func NewSVDRounder(cfg RounderConfig) *SVDRounder {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SVDRounder{maxRank: cfg.MaxRank, logger: logger}
}

// core is a mutable (l, n, r) core used during a sweep.
type core struct {
	l, n, r int
	data    []complex128
}

func (c *core) leftUnfolding() *cmat  { return cmatOf(c.l*c.n, c.r, c.data) }
func (c *core) rightUnfolding() *cmat { return cmatOf(c.l, c.n*c.r, c.data) }

// Round implements Decomposer.
//
// With d cores, each of the d-1 internal bonds is truncated to a Frobenius
// error of at most eps/sqrt(d-1) times the chain's norm, which bounds the
// total relative error by eps. The outer bonds are left untouched.
func (s *SVDRounder) Round(cores []*tensor.Dense[complex128], eps float64) ([]*tensor.Dense[complex128], error) {
	if eps < 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeEps, eps)
	}
	shapes, err := coreShapes(cores)
	if err != nil {
		return nil, err
	}

	d := len(cores)
	work := make([]*core, d)
	for i, c := range cores {
		data := make([]complex128, c.NumElements())
		copy(data, c.Data())
		work[i] = &core{l: shapes[i][0], n: shapes[i][1], r: shapes[i][2], data: data}
	}

	if d > 1 {
		if err := s.orthogonalize(work); err != nil {
			return nil, err
		}
		norm := frobenius(work[0].data)
		delta := eps / math.Sqrt(float64(d-1)) * norm
		s.logger.Debug("tt rounding",
			zap.Int("cores", d),
			zap.Float64("eps", eps),
			zap.Float64("norm", norm),
			zap.Float64("bond_threshold", delta))

		if err := s.truncate(work, delta); err != nil {
			return nil, err
		}
	}

	out := make([]*tensor.Dense[complex128], d)
	for i, c := range work {
		t, err := tensor.FromSlice(c.data, tensor.Shape{c.l, c.n, c.r})
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// orthogonalize makes cores 1..d-1 right-orthonormal, moving the chain's
// norm into core 0. Exactly-zero directions are dropped from the bonds.
func (s *SVDRounder) orthogonalize(work []*core) error {
	for k := len(work) - 1; k > 0; k-- {
		c := work[k]
		// bᴴ = q*r, so b = rᴴ*qᴴ with qᴴ having orthonormal rows.
		f, err := leftFactor(c.rightUnfolding().adjoint(), 0, 0)
		if err != nil {
			return fmt.Errorf("orthogonalize core %d: %w", k, err)
		}
		rank := f.q.Cols
		c.data = f.q.adjoint().Data
		c.l = rank

		prev := work[k-1]
		prev.data = mul(blas.NoTrans, blas.ConjTrans, prev.leftUnfolding(), f.r).Data
		prev.r = rank
	}
	return nil
}

// truncate sweeps left to right, cutting every internal bond to the
// smallest rank with discarded weight at most delta.
func (s *SVDRounder) truncate(work []*core, delta float64) error {
	for k := 0; k < len(work)-1; k++ {
		c := work[k]
		before := c.r
		f, err := leftFactor(c.leftUnfolding(), delta, s.maxRank)
		if err != nil {
			return fmt.Errorf("truncate bond %d: %w", k, err)
		}
		rank := f.q.Cols
		c.data = f.q.Data
		c.r = rank

		next := work[k+1]
		next.data = mul(blas.NoTrans, blas.NoTrans, f.r, next.rightUnfolding()).Data
		next.l = rank

		s.logger.Debug("bond truncated",
			zap.Int("bond", k),
			zap.Int("rank_before", before),
			zap.Int("rank", rank),
			zap.Float64("discarded", f.tail))
	}
	return nil
}
