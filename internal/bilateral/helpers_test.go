package bilateral

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/bilateral/internal/tensor"
)

// newSignal builds a contiguous float32 tensor from data.
func newSignal(t *testing.T, shape tensor.Shape, data []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromFloat32(data, shape)
	require.NoError(t, err)
	return raw
}

// constant returns n copies of v.
func constant(n int, v float32) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = v
	}
	return data
}

// noise returns n values uniformly spread in [mean-amp, mean+amp].
func noise(n int, mean, amp float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic test data
	data := make([]float32, n)
	for i := range data {
		data[i] = mean + amp*(2*rng.Float32()-1)
	}
	return data
}

// reference2D is a direct nested-loop bilateral filter over a [B, C, H, W] tensor,
// written independently of the iterator/aggregator machinery. It works in float64.
func reference2D(t *testing.T, in *tensor.RawTensor, spatialSigma, colorSigma float32) [][][][]float64 {
	t.Helper()
	shape := in.Shape()
	require.Len(t, shape, 4)
	B, C, H, W := shape[0], shape[1], shape[2], shape[3]

	size, half, err := WindowSize(spatialSigma)
	require.NoError(t, err)
	ss, cs := float64(spatialSigma), float64(colorSigma)

	clamp := func(i, n int) int { return min(n-1, max(0, i)) }

	out := make([][][][]float64, B)
	for b := 0; b < B; b++ {
		out[b] = make([][][]float64, C)
		for c := range out[b] {
			out[b][c] = make([][]float64, H)
			for h := range out[b][c] {
				out[b][c][h] = make([]float64, W)
			}
		}

		for h := 0; h < H; h++ {
			for w := 0; w < W; w++ {
				sums := make([]float64, C)
				var weightSum float64
				for kh := 0; kh < size; kh++ {
					for kw := 0; kw < size; kw++ {
						dh, dw := kh-half, kw-half
						nh, nw := clamp(h+dh, H), clamp(w+dw, W)

						var d2 float64
						for c := 0; c < C; c++ {
							diff := in.At(b, c, h, w) - in.At(b, c, nh, nw)
							d2 += diff * diff
						}
						spatial := math.Exp(-float64(dh*dh)/(2*ss*ss)) * math.Exp(-float64(dw*dw)/(2*ss*ss))
						weight := spatial * math.Exp(-d2/(2*cs*cs))
						for c := 0; c < C; c++ {
							sums[c] += in.At(b, c, nh, nw) * weight
						}
						weightSum += weight
					}
				}
				for c := 0; c < C; c++ {
					out[b][c][h][w] = sums[c] / weightSum
				}
			}
		}
	}
	return out
}
