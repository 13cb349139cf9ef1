// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public storage types consumed by the bilateral filter.
//
// # Overview
//
// A RawTensor is a strided view over a float32 or float64 buffer:
//   - Shape, DataType, Device: core type definitions
//   - Per-axis strides in elements, so NCHW, NHWC and padded layouts are all expressible
//   - Descriptor: the [batch, channel, spatial...] split used by signal filters
//
// # Basic Usage
//
//	x, _ := tensor.FromFloat32(pixels, tensor.Shape{1, 3, 480, 640})
//	d, _ := x.Descriptor()
//	fmt.Println(d.SpatialSizes) // [480 640]
//
// # Strided Layouts
//
//	// [N, C, H, W] logical shape stored channels-last.
//	nhwc, _ := tensor.NewRawStrided(tensor.Shape{1, 3, 4, 5}, []int{60, 1, 15, 3}, tensor.Float32, tensor.CPU)
//
// # Memory Management
//
// Tensors are ordinary Go values; buffers are reclaimed by the garbage collector.
// Allocation requests larger than the internal element limit fail with ErrAllocation.
package tensor
