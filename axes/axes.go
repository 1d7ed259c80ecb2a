// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package axes canonicalizes the bond axes of tensor-network tensors.
//
// A tensor carries up to four bond axes labelled up1, up2, down1 and down2,
// optionally preceded by a physical "out" axis at position 0. Canonicalize
// transposes and merges them into the layout [out?, up?, down?]:
//   - out is kept as is
//   - up is up1 and up2 flattened, up1 varying slower
//   - down is down1 and down2 flattened, down1 varying slower
//
// A group with no labels present is dropped from the result.
//
// Example:
//
//	// x has shape (2, 3, 4, 5) laid out as out, up1, up2, down1.
//	y, names, err := axes.Canonicalize(x, []axes.Label{axes.Up1, axes.Up2, axes.Down1}, true)
//	// y has shape (2, 12, 5); names is [out up down].
package axes

import (
	"github.com/born-ml/tensornet/internal/axes"
	"github.com/born-ml/tensornet/tensor"
)

// Label names one axis of a tensor-network tensor.
type Label = axes.Label

// Recognized labels. Out is never passed in a label list.
const (
	Out   Label = axes.Out
	Up1   Label = axes.Up1
	Up2   Label = axes.Up2
	Down1 Label = axes.Down1
	Down2 Label = axes.Down2
)

// Names of the canonical output axes.
const (
	NameOut  = axes.NameOut
	NameUp   = axes.NameUp
	NameDown = axes.NameDown
)

// Mapping assigns each present bond label its axis index in the tensor.
type Mapping = axes.Mapping

// Layout is a reusable canonicalization plan for tensors of one rank.
type Layout = axes.Layout

// Errors returned by the canonicalizer. Match them with errors.Is.
var (
	ErrInvalidAxisLabel   = axes.ErrInvalidAxisLabel
	ErrDuplicateAxisLabel = axes.ErrDuplicateAxisLabel
	ErrAxisCountMismatch  = axes.ErrAxisCountMismatch
	ErrAxisOutOfRange     = axes.ErrAxisOutOfRange
	ErrAxisCollision      = axes.ErrAxisCollision
	ErrNilTensor          = axes.ErrNilTensor
)

// Canonicalize reorders and merges the bond axes of t into [out?, up?, down?].
//
// labels[i] names axis i of t, or axis i+1 when hasOut marks axis 0 as the
// physical axis. The returned tensor never shares memory with t.
func Canonicalize[T tensor.DType](t *tensor.Dense[T], labels []Label, hasOut bool) (*tensor.Dense[T], []string, error) {
	return axes.Canonicalize(t, labels, hasOut)
}

// CanonicalizeMapped is Canonicalize with an explicit label to axis mapping.
func CanonicalizeMapped[T tensor.DType](t *tensor.Dense[T], m Mapping, hasOut bool) (*tensor.Dense[T], []string, error) {
	return axes.CanonicalizeMapped(t, m, hasOut)
}

// Plan validates a positional label list and returns its Layout without
// touching any data.
func Plan(labels []Label, hasOut bool, rank int) (Layout, error) {
	return axes.Plan(labels, hasOut, rank)
}

// PlanMapped is Plan with an explicit label to axis mapping.
func PlanMapped(m Mapping, hasOut bool, rank int) (Layout, error) {
	return axes.PlanMapped(m, hasOut, rank)
}

// Apply executes a Layout on t.
func Apply[T tensor.DType](l Layout, t *tensor.Dense[T]) (*tensor.Dense[T], error) {
	return axes.Apply(l, t)
}
