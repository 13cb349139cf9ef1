package main

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/bilateral/internal/ndindex"
	"github.com/born-ml/bilateral/internal/parallel"
	"github.com/born-ml/bilateral/internal/tensor"
)

// channelStats is the mean and variance of one channel over all batches.
type channelStats struct {
	Mean     float64
	Variance float64
}

// computeStats gathers every element of each channel, honoring strides.
// Channels are reduced independently under cfg.
func computeStats(raw *tensor.RawTensor, cfg parallel.Config) []channelStats {
	desc, err := raw.Descriptor()
	if err != nil {
		return nil
	}

	out := make([]channelStats, desc.ChannelCount)
	parallel.For(desc.ChannelCount, func(c int) {
		home := ndindex.New(desc.SpatialSizes)
		values := make([]float64, 0, desc.BatchCount*home.Len())
		coord := make([]int, 2+desc.SpatialRank())
		coord[1] = c
		for b := 0; b < desc.BatchCount; b++ {
			coord[0] = b
			home.Reset()
			for ok := true; ok; ok = home.Next() {
				copy(coord[2:], home.Index())
				values = append(values, raw.At(coord...))
			}
		}
		out[c].Mean, out[c].Variance = stat.MeanVariance(values, nil)
	}, cfg)
	return out
}

func logStats(logger *slog.Logger, label string, raw *tensor.RawTensor, cfg parallel.Config) {
	for c, s := range computeStats(raw, cfg) {
		logger.Info("channel stats",
			"signal", label,
			"channel", c,
			"mean", s.Mean,
			"variance", s.Variance)
	}
}
