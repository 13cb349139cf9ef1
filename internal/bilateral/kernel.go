package bilateral

import (
	"fmt"
	"math"

	"github.com/born-ml/bilateral/internal/tensor"
)

// maxWindowSize bounds the per-axis window so the kernel table stays allocatable.
const maxWindowSize = 1 << 20

// WindowSize returns the per-axis window length and its half width for a spatial sigma.
//
//	size = ceil(3 * sigma)
//	half = floor(size / 2)
//
// An even size gives an asymmetric window of offsets [-half, size-half). This is
// intentional and kept as is.
func WindowSize(spatialSigma float32) (size, half int, err error) {
	if err := checkSigma("spatial", spatialSigma); err != nil {
		return 0, 0, err
	}
	if math.IsInf(float64(spatialSigma), 1) {
		return 0, 0, fmt.Errorf("bilateral: spatial sigma is infinite: %w", ErrInvalidArgument)
	}

	// The product is taken in float32, like the sigma itself.
	w := math.Ceil(float64(3 * spatialSigma))
	if w > maxWindowSize {
		return 0, 0, fmt.Errorf("bilateral: spatial sigma %g gives window %g, limit %d: %w",
			spatialSigma, w, maxWindowSize, ErrInvalidArgument)
	}
	size = int(w)
	return size, size / 2, nil
}

// SpatialKernel returns the 1D spatial weight table for a spatial sigma:
//
//	kernel[i] = exp((i - half)² · -1/(2σ²))   for i in [0, size)
//
// The table is not normalized; kernel[half] is exactly 1. The same table is
// used for every spatial axis.
func SpatialKernel[T tensor.Float](spatialSigma float32) ([]T, error) {
	size, half, err := WindowSize(spatialSigma)
	if err != nil {
		return nil, err
	}

	sigma := T(spatialSigma)
	expConstant := -1 / (2 * sigma * sigma)

	kernel := make([]T, size)
	for i := range kernel {
		d := T(i - half)
		kernel[i] = T(math.Exp(float64(d * d * expConstant)))
	}
	return kernel, nil
}

// colorExpConstant returns -1/(2σ²) for the color sigma. An infinite sigma gives
// -0, so every neighbour gets color weight 1.
func colorExpConstant[T tensor.Float](colorSigma float32) T {
	sigma := T(colorSigma)
	return -1 / (2 * sigma * sigma)
}

func checkSigma(name string, sigma float32) error {
	// Written as a negated comparison so NaN is rejected too.
	if !(sigma > 0) {
		return fmt.Errorf("bilateral: %s sigma must be > 0, got %g: %w", name, sigma, ErrInvalidArgument)
	}
	return nil
}
