// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/bilateral/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape, stride and type information via Shape(), Strides(), DType()
//   - Typed data access via AsFloat32() and AsFloat64()
//   - Strided views sharing a buffer via AsStrided()
//   - Layout inspection via Descriptor()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{1, 1, 2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32() // Zero-copy access
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled contiguous (row-major) tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// NewRawStrided creates a zero-filled tensor with explicit strides in elements.
//
// Example (channels-last image, [N, C, H, W] stored as NHWC):
//
//	raw, _ := tensor.NewRawStrided(tensor.Shape{1, 3, 4, 5}, []int{60, 1, 15, 3}, tensor.Float32, tensor.CPU)
func NewRawStrided(shape Shape, strides []int, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRawStrided(shape, strides, dtype, device)
}

// FromFloat32 creates a contiguous Float32 tensor by copying data.
func FromFloat32(data []float32, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat32(data, shape)
}

// FromFloat64 creates a contiguous Float64 tensor by copying data.
func FromFloat64(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromFloat64(data, shape)
}
