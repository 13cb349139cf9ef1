package bilateral

import (
	"errors"

	"github.com/born-ml/bilateral/internal/tensor"
)

var (
	// ErrInvalidArgument indicates a sigma that is not strictly positive (or not
	// usable), a signal without spatial axes, or an unsupported element type.
	ErrInvalidArgument = errors.New("bilateral: invalid argument")

	// ErrShapeMismatch indicates an input missing the [batch, channel] leading axes
	// or carrying a non-positive size or stride.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrAllocationFailure indicates that the output buffer could not be allocated.
	ErrAllocationFailure = tensor.ErrAllocation
)
