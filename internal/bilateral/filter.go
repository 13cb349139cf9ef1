// Package bilateral implements an N-dimensional joint spatial/color bilateral filter
// over [batch, channel, spatial...] tensors.
//
// Each output element is the average of its window neighbours weighted by
//
//	exp(-‖Δx‖²/(2σs²)) · exp(-‖Δc‖²/(2σc²))
//
// where Δx is the spatial offset and Δc the difference of the channel vectors.
// Neighbours outside the volume are clamped to the nearest edge element.
package bilateral

import (
	"fmt"

	"github.com/born-ml/bilateral/internal/ndindex"
	"github.com/born-ml/bilateral/internal/parallel"
	"github.com/born-ml/bilateral/internal/tensor"
)

// plan is the validated, precomputed state of one Filter call.
type plan struct {
	desc         tensor.Descriptor
	spatialSigma float32
	colorSigma   float32
	windowSize   int
	half         int
}

func newPlan(input *tensor.RawTensor, spatialSigma, colorSigma float32) (*plan, error) {
	if input == nil {
		return nil, fmt.Errorf("bilateral: nil input: %w", ErrInvalidArgument)
	}
	size, half, err := WindowSize(spatialSigma)
	if err != nil {
		return nil, err
	}
	if err := checkSigma("color", colorSigma); err != nil {
		return nil, err
	}

	desc, err := input.Descriptor()
	if err != nil {
		return nil, fmt.Errorf("bilateral: %w", err)
	}
	if desc.SpatialRank() < 1 {
		return nil, fmt.Errorf("bilateral: input %v has no spatial axes: %w", input.Shape(), ErrInvalidArgument)
	}
	if dt := input.DType(); dt != tensor.Float32 && dt != tensor.Float64 {
		return nil, fmt.Errorf("bilateral: unsupported dtype %s: %w", dt, ErrInvalidArgument)
	}

	return &plan{
		desc:         desc,
		spatialSigma: spatialSigma,
		colorSigma:   colorSigma,
		windowSize:   size,
		half:         half,
	}, nil
}

// Filter applies the bilateral filter to input and returns a new tensor with the
// same shape, strides and dtype. Input must be laid out as
// [batch, channel, dim0, ..., dimK-1] with K >= 1.
//
// Every argument is validated before the output is allocated; on error no output
// exists. Errors wrap ErrInvalidArgument, ErrShapeMismatch or ErrAllocationFailure.
//
// The input is only read. Home elements are split across cfg's workers and the
// result does not depend on the worker count.
func Filter(input *tensor.RawTensor, spatialSigma, colorSigma float32, cfg parallel.Config) (*tensor.RawTensor, error) {
	p, err := newPlan(input, spatialSigma, colorSigma)
	if err != nil {
		return nil, err
	}

	output, err := tensor.NewRawStrided(input.Shape(), input.Strides(), input.DType(), input.Device())
	if err != nil {
		return nil, fmt.Errorf("bilateral: allocate output: %w", err)
	}

	total := p.desc.BatchCount * p.desc.SpatialCount()
	Logger().Debug("bilateral filter",
		"shape", input.Shape(),
		"dtype", input.DType().String(),
		"spatialSigma", spatialSigma,
		"colorSigma", colorSigma,
		"window", p.windowSize,
		"half", p.half,
		"workers", cfg.Workers(total))

	// Dispatch to type-specific implementation
	switch input.DType() {
	case tensor.Float32:
		err = run(p, tensor.Elements[float32](input), tensor.Elements[float32](output), cfg)
	case tensor.Float64:
		err = run(p, tensor.Elements[float64](input), tensor.Elements[float64](output), cfg)
	}
	if err != nil {
		return nil, err
	}
	return output, nil
}

// run sweeps every home element of every batch. Items are numbered
// batch-major, then in ndindex order within a batch.
func run[T tensor.Float](p *plan, in, out []T, cfg parallel.Config) error {
	kernel, err := SpatialKernel[T](p.spatialSigma)
	if err != nil {
		return err
	}
	colorExp := colorExpConstant[T](p.colorSigma)

	d := p.desc
	homeCount := d.SpatialCount()

	parallel.ForRange(d.BatchCount*homeCount, func(start, end int) {
		agg := newAggregator(in, d, kernel, p.half, colorExp)

		b := start / homeCount
		home := ndindex.NewAt(d.SpatialSizes, start%homeCount)
		for i := start; i < end; i++ {
			offset, weightSum := agg.accumulate(b*d.BatchStride, home.Index())
			agg.write(out, offset, weightSum)

			// Wrapping past the last home coordinate moves to the next batch.
			if !home.Next() {
				b++
			}
		}
	}, cfg)

	return nil
}
