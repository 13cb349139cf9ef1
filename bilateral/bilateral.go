// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package bilateral

import (
	"log/slog"

	internal "github.com/born-ml/bilateral/internal/bilateral"
	"github.com/born-ml/bilateral/internal/parallel"
	"github.com/born-ml/bilateral/tensor"
)

// Config controls how home elements are spread across goroutines.
type Config = parallel.Config

// Errors returned by Filter. Match them with errors.Is.
var (
	ErrInvalidArgument   = internal.ErrInvalidArgument
	ErrShapeMismatch     = internal.ErrShapeMismatch
	ErrAllocationFailure = internal.ErrAllocationFailure
)

// DefaultConfig returns a Config using one worker per CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a Config that filters on the calling goroutine.
func SequentialConfig() Config {
	return parallel.Sequential()
}

// Filter applies the bilateral filter with DefaultConfig.
//
// Input must be a Float32 or Float64 tensor shaped [batch, channel, dim0, ...] with
// at least one spatial axis. The result has the same shape, strides and dtype.
func Filter(input *tensor.RawTensor, spatialSigma, colorSigma float32) (*tensor.RawTensor, error) {
	return internal.Filter(input, spatialSigma, colorSigma, parallel.DefaultConfig())
}

// FilterWithConfig applies the bilateral filter with an explicit Config.
func FilterWithConfig(input *tensor.RawTensor, spatialSigma, colorSigma float32, cfg Config) (*tensor.RawTensor, error) {
	return internal.Filter(input, spatialSigma, colorSigma, cfg)
}

// WindowSize returns the per-axis window length and half width used for spatialSigma.
func WindowSize(spatialSigma float32) (size, half int, err error) {
	return internal.WindowSize(spatialSigma)
}

// SpatialKernel returns the unnormalized 1D spatial weight table for spatialSigma.
func SpatialKernel(spatialSigma float32) ([]float32, error) {
	return internal.SpatialKernel[float32](spatialSigma)
}

// SetLogger configures the logger for the filter. By default nothing is logged.
// Pass nil to restore silence.
//
// Example:
//
//	bilateral.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Logger returns the logger currently used by the filter.
func Logger() *slog.Logger {
	return internal.Logger()
}
