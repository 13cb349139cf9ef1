// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/bilateral/internal/tensor"
)

// Type aliases for public API

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device tensors are allocated on.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 3, 4, 5} is one 3-channel 4×5 image.
type Shape = tensor.Shape

// Descriptor is the read-only [batch, channel, spatial...] layout of a tensor,
// in elements.
type Descriptor = tensor.Descriptor

// Errors returned by tensor constructors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrAllocation    = tensor.ErrAllocation
	ErrDataType      = tensor.ErrDataType
)
