package tensor

import (
	"fmt"
	"math"
)

// MaxElements is the largest backing buffer, in elements, NewRaw and NewRawStrided
// will allocate. Requests beyond it fail with ErrAllocation instead of reaching the runtime.
var MaxElements = 1 << 34

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0): %w", i, dim, ErrShapeMismatch)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Extent returns the number of elements a buffer needs so that every coordinate of
// the shape, laid out with the given strides, stays in bounds:
//
//	1 + Σ (s[i]-1) * strides[i]
//
// Strides must be positive. The result is checked for int overflow and against
// MaxElements; failures wrap ErrAllocation.
func (s Shape) Extent(strides []int) (int, error) {
	if len(strides) != len(s) {
		return 0, fmt.Errorf("strides %v do not match shape %v: %w", strides, s, ErrShapeMismatch)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	extent := 1
	for i, dim := range s {
		if strides[i] <= 0 {
			return 0, fmt.Errorf("invalid stride at index %d: %d (must be > 0): %w", i, strides[i], ErrShapeMismatch)
		}
		if dim-1 > 0 && strides[i] > (math.MaxInt-extent)/(dim-1) {
			return 0, fmt.Errorf("extent of shape %v overflows: %w", s, ErrAllocation)
		}
		extent += (dim - 1) * strides[i]
	}
	if extent > MaxElements {
		return 0, fmt.Errorf("extent %d exceeds limit %d: %w", extent, MaxElements, ErrAllocation)
	}
	return extent, nil
}
