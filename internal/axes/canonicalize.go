package axes

import "github.com/born-ml/tensornet/internal/tensor"

// Canonicalize reorders and merges the bond axes of t into the layout
// [out?, up?, down?] and returns the new tensor with its axis names.
//
// labels lists the bond label of each non-out axis in tensor order: labels[i]
// is axis i, or axis i+1 when hasOut marks axis 0 as the physical axis.
//
// Example:
//
//	// t has shape (2, 3, 4, 5): out, up1, up2, down1
//	c, names, err := axes.Canonicalize(t, []axes.Label{axes.Up1, axes.Up2, axes.Down1}, true)
//	// c has shape (2, 12, 5), names == [out up down]
func Canonicalize[T tensor.DType](t *tensor.Dense[T], labels []Label, hasOut bool) (*tensor.Dense[T], []string, error) {
	if t == nil {
		return nil, nil, ErrNilTensor
	}
	lay, err := Plan(labels, hasOut, t.Rank())
	if err != nil {
		return nil, nil, err
	}
	return apply(lay, t)
}

// CanonicalizeMapped is Canonicalize with an explicit label to axis mapping,
// so bond axes may sit in any order in t.
func CanonicalizeMapped[T tensor.DType](t *tensor.Dense[T], m Mapping, hasOut bool) (*tensor.Dense[T], []string, error) {
	if t == nil {
		return nil, nil, ErrNilTensor
	}
	lay, err := PlanMapped(m, hasOut, t.Rank())
	if err != nil {
		return nil, nil, err
	}
	return apply(lay, t)
}

func apply[T tensor.DType](lay Layout, t *tensor.Dense[T]) (*tensor.Dense[T], []string, error) {
	out, err := Apply(lay, t)
	if err != nil {
		return nil, nil, err
	}
	return out, append([]string(nil), lay.Names...), nil
}
