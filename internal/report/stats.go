package report

import (
	"sort"

	"pinglog/internal/models"
)

// Summarize computes aggregate latency statistics for a dataset,
// including the share of samples above each configured threshold.
func Summarize(ds models.Dataset, thresholds []float64) models.Summary {
	s := models.Summary{Key: ds.Key, Samples: ds.Len()}

	for _, th := range thresholds {
		s.OverThreshold = append(s.OverThreshold, models.ThresholdShare{
			ThresholdMs: th,
			Percent:     PercentOver(ds.RTTs, th),
		})
	}
	if ds.Len() == 0 {
		return s
	}

	rtts := append([]float64(nil), ds.RTTs...)
	sort.Float64s(rtts)
	s.MinRTT = rtts[0]
	s.MedianRTT = rtts[len(rtts)/2]
	s.P95RTT = rtts[int(float64(len(rtts))*0.95)]
	s.MaxRTT = rtts[len(rtts)-1]
	return s
}

// PercentOver returns the percentage of values strictly above threshold.
func PercentOver(values []float64, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	over := 0
	for _, v := range values {
		if v > threshold {
			over++
		}
	}
	return 100 * float64(over) / float64(len(values))
}
