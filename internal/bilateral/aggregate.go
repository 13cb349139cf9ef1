package bilateral

import (
	"math"

	"github.com/born-ml/bilateral/internal/ndindex"
	"github.com/born-ml/bilateral/internal/tensor"
)

// aggregator computes the weighted average for one home element at a time.
// It owns its window iterator and accumulators, so one aggregator must not be
// shared between goroutines.
type aggregator[T tensor.Float] struct {
	data          []T
	channels      int
	channelStride int
	sizes         []int
	strides       []int

	kernel   []T
	half     int
	colorExp T

	window   *ndindex.Indexer
	valueSum []T
}

func newAggregator[T tensor.Float](data []T, desc tensor.Descriptor, kernel []T, half int, colorExp T) *aggregator[T] {
	windowSizes := make([]int, desc.SpatialRank())
	for i := range windowSizes {
		windowSizes[i] = len(kernel)
	}

	return &aggregator[T]{
		data:          data,
		channels:      desc.ChannelCount,
		channelStride: desc.ChannelStride,
		sizes:         desc.SpatialSizes,
		strides:       desc.SpatialStrides,
		kernel:        kernel,
		half:          half,
		colorExp:      colorExp,
		window:        ndindex.New(windowSizes),
		valueSum:      make([]T, desc.ChannelCount),
	}
}

// accumulate sweeps the window around home and leaves the weighted channel sums
// in a.valueSum. It returns the home element's offset and the weight normalizer.
func (a *aggregator[T]) accumulate(base int, home []int) (offset int, weightSum T) {
	data, cs := a.data, a.channelStride
	offset = homeOffset(base, home, a.strides)

	clear(a.valueSum)
	a.window.Reset()

	for ok := true; ok; ok = a.window.Next() {
		w := a.window.Index()
		n := neighbourOffset(base, home, w, a.half, a.sizes, a.strides)

		// Euclidean color distance.
		var colorDistanceSquared T
		for c := 0; c < a.channels; c++ {
			diff := data[offset+c*cs] - data[n+c*cs]
			colorDistanceSquared += diff * diff
		}

		spatialWeight := T(1)
		for _, k := range w {
			spatialWeight *= a.kernel[k]
		}
		colorWeight := T(math.Exp(float64(colorDistanceSquared * a.colorExp)))
		totalWeight := spatialWeight * colorWeight

		for c := 0; c < a.channels; c++ {
			a.valueSum[c] += data[n+c*cs] * totalWeight
		}
		weightSum += totalWeight
	}

	return offset, weightSum
}

// write stores the normalized sums of the last accumulate call at offset.
// weightSum is positive: the window centre always contributes weight 1.
func (a *aggregator[T]) write(out []T, offset int, weightSum T) {
	for c := 0; c < a.channels; c++ {
		out[offset+c*a.channelStride] = a.valueSum[c] / weightSum
	}
}
