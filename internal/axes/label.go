// Package axes canonicalizes the bond axes of tensor-network tensors.
//
// A tensor carries up to four bond axes labelled up1, up2, down1 and down2,
// optionally preceded by a physical "out" axis at position 0. Canonicalize
// permutes and merges them into the layout [out?, up?, down?], where up is
// up1 and up2 flattened (up1 varying slower) and down likewise.
package axes

import "fmt"

// Label names one axis of a tensor-network tensor.
type Label string

// Recognized labels. Out is never passed in a label list; its presence is
// given by the hasOut flag.
const (
	Out   Label = "out"
	Up1   Label = "up1"
	Up2   Label = "up2"
	Down1 Label = "down1"
	Down2 Label = "down2"
)

// Names of the canonical output axes.
const (
	NameOut  = "out"
	NameUp   = "up"
	NameDown = "down"
)

// bondOrder is the order bond labels take in the canonical layout.
var bondOrder = [...]Label{Up1, Up2, Down1, Down2}

// IsBond reports whether l is one of the four bond labels.
func (l Label) IsBond() bool {
	switch l {
	case Up1, Up2, Down1, Down2:
		return true
	default:
		return false
	}
}

// Mapping assigns each present bond label its axis index in the tensor.
type Mapping map[Label]int

// MappingFromLabels builds a Mapping from a positional label list:
// labels[i] sits on axis i, shifted by one when hasOut reserves axis 0.
func MappingFromLabels(labels []Label, hasOut bool) (Mapping, error) {
	offset := 0
	if hasOut {
		offset = 1
	}

	m := make(Mapping, len(labels))
	for i, l := range labels {
		if !l.IsBond() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAxisLabel, string(l))
		}
		if _, dup := m[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAxisLabel, string(l))
		}
		m[l] = i + offset
	}
	return m, nil
}
