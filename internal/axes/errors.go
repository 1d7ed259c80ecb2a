package axes

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrInvalidAxisLabel is returned for a label outside up1, up2, down1, down2.
	ErrInvalidAxisLabel = errors.New("axes: invalid axis label")

	// ErrDuplicateAxisLabel is returned when a label appears more than once.
	ErrDuplicateAxisLabel = errors.New("axes: duplicate axis label")

	// ErrAxisCountMismatch is returned when the labels (plus the out axis)
	// do not account for every axis of the tensor.
	ErrAxisCountMismatch = errors.New("axes: label count does not match tensor rank")

	// ErrAxisOutOfRange is returned when a mapping points outside the tensor,
	// or at axis 0 while that axis is reserved for out.
	ErrAxisOutOfRange = errors.New("axes: axis index out of range")

	// ErrNilTensor is returned when the tensor to canonicalize is nil.
	ErrNilTensor = errors.New("axes: nil tensor")

	// ErrAxisCollision is returned when two labels map to the same axis.
	ErrAxisCollision = errors.New("axes: two labels share one axis")
)
