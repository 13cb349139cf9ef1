// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bilateral provides an N-dimensional joint spatial/color bilateral filter.
//
// # Overview
//
// The filter replaces every element of a [batch, channel, dim0, ..., dimK-1] signal
// with a weighted average of its neighbours. A neighbour's weight is the product of
//   - a spatial Gaussian of its offset from the home element (sigma: spatialSigma)
//   - a color Gaussian of the distance between the two channel vectors (sigma: colorSigma)
//
// The window spans ceil(3*spatialSigma) elements per axis. Neighbours outside the
// volume are clamped to the nearest edge element.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/bilateral/bilateral"
//	    "github.com/born-ml/bilateral/tensor"
//	)
//
//	func main() {
//	    img, _ := tensor.FromFloat32(pixels, tensor.Shape{1, 3, 480, 640})
//	    out, err := bilateral.Filter(img, 2, 25)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = out.AsFloat32()
//	}
//
// # Errors
//
// Errors wrap ErrInvalidArgument, ErrShapeMismatch or ErrAllocationFailure and are
// detected before any output is allocated.
//
// # Thread Safety
//
// Filter only reads its input and returns a fresh tensor, so it is safe for
// concurrent use. Home elements are spread across goroutines according to Config.
package bilateral
