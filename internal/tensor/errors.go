package tensor

import "errors"

var (
	// ErrShapeMismatch indicates a shape, stride or offset that cannot describe the
	// tensor's storage (non-positive size or stride, missing axes, short buffer).
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrAllocation indicates a buffer that cannot be allocated because its size
	// overflows or exceeds MaxElements.
	ErrAllocation = errors.New("tensor: allocation failure")

	// ErrDataType indicates an unsupported or mismatched element type.
	ErrDataType = errors.New("tensor: unsupported data type")
)
