package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation.
//
// A RawTensor is a view over a byte buffer: a shape, per-axis strides in elements
// and an element offset of the first coordinate. Several views may share a buffer
// (see AsStrided).
type RawTensor struct {
	buffer []byte   // Backing storage, shared between views
	shape  Shape    // Tensor dimensions
	stride []int    // Strides in elements
	dtype  DataType // Runtime type information
	device Device   // Compute device
	offset int      // Element offset of the zero coordinate
}

// NewRaw creates a new contiguous row-major RawTensor with the given shape and type.
// Memory is zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return NewRawStrided(shape, shape.ComputeStrides(), dtype, device)
}

// NewRawStrided creates a zero-initialized RawTensor with explicit strides.
// The buffer is sized to the extent of shape under strides.
//
// Example (channels-last [N, C, H, W] layout):
//
//	raw, _ := tensor.NewRawStrided(Shape{1, 3, 4, 5}, []int{60, 1, 15, 3}, Float32, CPU)
func NewRawStrided(shape Shape, strides []int, dtype DataType, device Device) (*RawTensor, error) {
	if !dtype.Valid() {
		return nil, fmt.Errorf("dtype %d: %w", dtype, ErrDataType)
	}
	extent, err := shape.Extent(strides)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if extent > math.MaxInt/dtype.Size() {
		return nil, fmt.Errorf("%d %s elements overflow the byte size: %w", extent, dtype, ErrAllocation)
	}

	return &RawTensor{
		buffer: make([]byte, extent*dtype.Size()),
		shape:  shape.Clone(),
		stride: append([]int(nil), strides...),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// FromFloat32 creates a contiguous Float32 tensor by copying data.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return fromSlice(data, shape)
}

// FromFloat64 creates a contiguous Float64 tensor by copying data.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	return fromSlice(data, shape)
}

func fromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}
	raw, err := NewRaw(shape, DataTypeOf[T](), CPU)
	if err != nil {
		return nil, err
	}
	copy(Elements[T](raw), data)
	return raw, nil
}

// AsStrided returns a view sharing r's buffer with a new shape, strides and element
// offset (relative to the start of the buffer). The view must fit in the buffer.
func (r *RawTensor) AsStrided(shape Shape, strides []int, offset int) (*RawTensor, error) {
	extent, err := shape.Extent(strides)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	capacity := len(r.buffer) / r.dtype.Size()
	if offset < 0 || offset > capacity-extent {
		return nil, fmt.Errorf("view of extent %d at offset %d exceeds buffer of %d elements: %w",
			extent, offset, capacity, ErrShapeMismatch)
	}

	return &RawTensor{
		buffer: r.buffer,
		shape:  shape.Clone(),
		stride: append([]int(nil), strides...),
		dtype:  r.dtype,
		device: r.device,
		offset: offset,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's strides in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Offset returns the element offset of the zero coordinate inside the buffer.
func (r *RawTensor) Offset() int {
	return r.offset
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the number of logical elements (product of the shape).
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// IsContiguous reports whether the strides are the row-major strides of the shape.
func (r *RawTensor) IsContiguous() bool {
	want := r.shape.ComputeStrides()
	for i, s := range r.stride {
		if r.shape[i] != 1 && s != want[i] {
			return false
		}
	}
	return true
}

// AsFloat32 interprets the buffer, starting at the tensor's offset, as []float32.
// Element (i0, i1, ...) lives at Σ ik*Strides()[k].
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	return Elements[float32](r)
}

// AsFloat64 interprets the buffer, starting at the tensor's offset, as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	return Elements[float64](r)
}

// Elements returns the typed element view of r starting at its offset.
// The caller must ensure T matches r.DType().
func Elements[T Float](r *RawTensor) []T {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	n := len(r.buffer)/size - r.offset
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by buffer length
	return unsafe.Slice((*T)(unsafe.Pointer(&r.buffer[r.offset*size])), n)
}

// At returns the element at the given indices as float64.
// Panics if indices are out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	offset := r.flatIndex(indices)
	if r.dtype == Float64 {
		return r.AsFloat64()[offset]
	}
	return float64(r.AsFloat32()[offset])
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (r *RawTensor) Set(value float64, indices ...int) {
	offset := r.flatIndex(indices)
	if r.dtype == Float64 {
		r.AsFloat64()[offset] = value
		return
	}
	r.AsFloat32()[offset] = float32(value)
}

func (r *RawTensor) flatIndex(indices []int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return offset
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor[%s]%v strides %v on %s", r.dtype, r.shape, r.stride, r.device)
}
