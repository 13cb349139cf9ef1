package tensor

import (
	"fmt"
	"slices"
)

// Descriptor is the read-only layout of a [batch, channel, spatial...] tensor.
// All sizes and strides are in elements, not bytes.
type Descriptor struct {
	BatchCount     int
	ChannelCount   int
	BatchStride    int
	ChannelStride  int
	SpatialSizes   []int
	SpatialStrides []int
}

// SpatialRank returns the number of spatial axes.
func (d Descriptor) SpatialRank() int {
	return len(d.SpatialSizes)
}

// SpatialCount returns the number of elements in one spatial volume.
func (d Descriptor) SpatialCount() int {
	n := 1
	for _, s := range d.SpatialSizes {
		n *= s
	}
	return n
}

// Descriptor splits r's layout into its batch, channel and spatial parts.
//
// The tensor must carry the two leading [batch, channel] axes; a tensor without spatial
// axes is still described (SpatialRank() == 0) so callers can decide what that means.
// Every size and stride must be positive, and no two coordinates may address
// the same element.
func (r *RawTensor) Descriptor() (Descriptor, error) {
	if len(r.shape) < 2 {
		return Descriptor{}, fmt.Errorf("expected [batch, channel, ...] layout, got %dD shape %v: %w",
			len(r.shape), r.shape, ErrShapeMismatch)
	}
	if err := r.shape.Validate(); err != nil {
		return Descriptor{}, err
	}
	for i, s := range r.stride {
		if s <= 0 {
			return Descriptor{}, fmt.Errorf("invalid stride at index %d: %d (must be > 0): %w", i, s, ErrShapeMismatch)
		}
	}
	if err := checkNoOverlap(r.shape, r.stride); err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		BatchCount:     r.shape[0],
		ChannelCount:   r.shape[1],
		BatchStride:    r.stride[0],
		ChannelStride:  r.stride[1],
		SpatialSizes:   append([]int(nil), r.shape[2:]...),
		SpatialStrides: append([]int(nil), r.stride[2:]...),
	}, nil
}

// checkNoOverlap reports ErrShapeMismatch unless the layout maps distinct
// coordinates to distinct elements. Axes of size 1 never move the offset and
// are ignored; the rest, ordered by stride, must each step past the whole
// extent of the axes below them.
func checkNoOverlap(shape Shape, strides []int) error {
	axes := make([]int, 0, len(shape))
	for i, size := range shape {
		if size > 1 {
			axes = append(axes, i)
		}
	}
	slices.SortFunc(axes, func(a, b int) int { return strides[a] - strides[b] })

	for k := 1; k < len(axes); k++ {
		prev, cur := axes[k-1], axes[k]
		if strides[cur] < strides[prev]*shape[prev] {
			return fmt.Errorf("axes %d and %d overlap: shape %v, strides %v: %w",
				prev, cur, shape, strides, ErrShapeMismatch)
		}
	}
	return nil
}
