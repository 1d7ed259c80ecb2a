package axes

import (
	"fmt"

	"github.com/born-ml/tensornet/internal/tensor"
)

// Layout is a precomputed canonicalization plan for tensors of one rank.
// It is independent of the tensor's sizes and data.
type Layout struct {
	// Perm is the axis order applied before merging: out first, then
	// up1, up2, down1, down2 as present.
	Perm []int

	// Groups holds, per output axis, how many consecutive permuted axes
	// are merged into it (1 or 2).
	Groups []int

	// Names are the output axis names, a subsequence of out, up, down.
	Names []string
}

// Plan builds a Layout from a positional label list. labels[i] labels axis
// i of the tensor, or axis i+1 when hasOut is set.
func Plan(labels []Label, hasOut bool, rank int) (Layout, error) {
	m, err := MappingFromLabels(labels, hasOut)
	if err != nil {
		return Layout{}, err
	}
	if n := len(labels) + outCount(hasOut); n != rank {
		return Layout{}, fmt.Errorf("%w: %d labels with out=%t for rank %d tensor",
			ErrAxisCountMismatch, len(labels), hasOut, rank)
	}
	return PlanMapped(m, hasOut, rank)
}

// PlanMapped builds a Layout from an explicit label to axis mapping.
func PlanMapped(m Mapping, hasOut bool, rank int) (Layout, error) {
	outAxes := outCount(hasOut)

	owner := make(map[int]Label, len(m))
	for l, ax := range m {
		if !l.IsBond() {
			return Layout{}, fmt.Errorf("%w: %q", ErrInvalidAxisLabel, string(l))
		}
		if ax < outAxes || ax >= rank {
			return Layout{}, fmt.Errorf("%w: %s -> axis %d for rank %d tensor (out=%t)",
				ErrAxisOutOfRange, l, ax, rank, hasOut)
		}
		if prev, taken := owner[ax]; taken {
			return Layout{}, fmt.Errorf("%w: %s and %s -> axis %d", ErrAxisCollision, prev, l, ax)
		}
		owner[ax] = l
	}
	if len(m)+outAxes != rank {
		return Layout{}, fmt.Errorf("%w: %d labels + %d out axes for rank %d tensor",
			ErrAxisCountMismatch, len(m), outAxes, rank)
	}

	var lay Layout
	if hasOut {
		lay.Perm = append(lay.Perm, 0)
		lay.Groups = append(lay.Groups, 1)
		lay.Names = append(lay.Names, NameOut)
	}

	for g, name := range []string{NameUp, NameDown} {
		width := 0
		for _, l := range bondOrder[2*g : 2*g+2] {
			if ax, ok := m[l]; ok {
				lay.Perm = append(lay.Perm, ax)
				width++
			}
		}
		if width > 0 {
			lay.Groups = append(lay.Groups, width)
			lay.Names = append(lay.Names, name)
		}
	}
	return lay, nil
}

// Rank returns the rank of tensors this layout accepts.
func (l Layout) Rank() int {
	return len(l.Perm)
}

// OutputShape returns the canonical shape for an input of the given shape.
func (l Layout) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if len(in) != l.Rank() {
		return nil, fmt.Errorf("%w: layout for rank %d, tensor has rank %d",
			ErrAxisCountMismatch, l.Rank(), len(in))
	}

	out := make(tensor.Shape, 0, len(l.Groups))
	pos := 0
	for _, width := range l.Groups {
		size := 1
		for _, ax := range l.Perm[pos : pos+width] {
			size *= in[ax]
		}
		out = append(out, size)
		pos += width
	}
	return out, nil
}

// Apply permutes and merges t according to the layout. The result never
// shares memory with t.
func Apply[T tensor.DType](l Layout, t *tensor.Dense[T]) (*tensor.Dense[T], error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	shape, err := l.OutputShape(t.Shape())
	if err != nil {
		return nil, err
	}

	permuted := t
	if !tensor.IsIdentity(l.Perm) {
		if permuted, err = t.Transpose(l.Perm...); err != nil {
			return nil, err
		}
	}
	// Reshape copies, so the identity path is detached from t as well.
	return permuted.Reshape(shape)
}

func outCount(hasOut bool) int {
	if hasOut {
		return 1
	}
	return 0
}
