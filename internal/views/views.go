// Package views derives analysis views from merged datasets. Every
// function is a pure transformation returning a new structure.
package views

import (
	"sort"
	"time"

	"pinglog/internal/models"
)

const (
	dayMs  = int64(24 * time.Hour / time.Millisecond)
	hourMs = int64(time.Hour / time.Millisecond)

	// roundingOffsetMs centers samples on the nearest hour when
	// bucketing: 13:40 counts toward hour 14.
	roundingOffsetMs = int64(30 * time.Minute / time.Millisecond)
)

// RecentWindow keeps only samples within window of the newest sample in
// the dataset (not wall-clock now). An empty dataset stays empty.
func RecentWindow(ds models.Dataset, window time.Duration) models.Dataset {
	out := models.Dataset{Key: ds.Key, IPs: ds.IPs}
	if len(ds.Times) == 0 {
		return out
	}

	maxTs := ds.Times[0]
	for _, ts := range ds.Times[1:] {
		if ts > maxTs {
			maxTs = ts
		}
	}

	cutoff := maxTs - window.Milliseconds()
	for i, ts := range ds.Times {
		if ts >= cutoff {
			out.Times = append(out.Times, ts)
			out.RTTs = append(out.RTTs, ds.RTTs[i])
		}
	}
	return out
}

// StripDate reduces an absolute timestamp to its time of day in ms.
// Applying it to an already stripped value is a no-op.
func StripDate(ts int64) int64 {
	tod := ts % dayMs
	if tod < 0 {
		tod += dayMs
	}
	return tod
}

// HourOf buckets a time-of-day value into an hour 0..23, rounding to
// the nearest hour: 23:40 wraps into hour 0.
func HourOf(tod int64) int {
	return int(((tod + roundingOffsetMs) % dayMs) / hourMs)
}

// DayOverlay replaces every timestamp with its time of day so samples
// from all days overlay onto a single 24h axis.
func DayOverlay(ds models.Dataset) models.Dataset {
	out := models.Dataset{
		Key:   ds.Key,
		IPs:   ds.IPs,
		Times: make([]int64, len(ds.Times)),
		RTTs:  append([]float64(nil), ds.RTTs...),
	}
	for i, ts := range ds.Times {
		out.Times[i] = StripDate(ts)
	}
	return out
}

// HourBuckets maps each hour of day to the RTTs observed in that hour
// across all days.
type HourBuckets [24][]float64

// TimeOfDay strips the calendar date from every sample and groups the
// RTTs by hour of day.
func TimeOfDay(ds models.Dataset) HourBuckets {
	var buckets HourBuckets
	for i, ts := range ds.Times {
		h := HourOf(StripDate(ts))
		buckets[h] = append(buckets[h], ds.RTTs[i])
	}
	return buckets
}

// Histogram is the per-hour frequency distribution of RTTs over a fixed
// set of bins. Fractions rows hold len(Edges)-1 values summing to 1 for
// hours with samples and all zeros otherwise.
type Histogram struct {
	Edges     []float64
	Counts    [24]int
	Fractions [24][]float64
}

// BinHistogram bins each hour bucket over the given ascending edges.
// Values below the first edge land in the first bin, values at or above
// the last edge in the last bin.
func BinHistogram(buckets HourBuckets, edges []float64) Histogram {
	bins := len(edges) - 1
	h := Histogram{Edges: append([]float64(nil), edges...)}

	for hour, rtts := range buckets {
		row := make([]float64, bins)
		h.Fractions[hour] = row
		h.Counts[hour] = len(rtts)
		if len(rtts) == 0 {
			continue
		}
		for _, v := range rtts {
			row[binIndex(v, edges)]++
		}
		for i := range row {
			row[i] /= float64(len(rtts))
		}
	}
	return h
}

// binIndex places v into a bin. An exact edge value belongs to the bin
// starting at that edge; out-of-range values clamp into the end bins.
func binIndex(v float64, edges []float64) int {
	i := sort.SearchFloat64s(edges, v)
	if i >= len(edges) || edges[i] != v {
		i--
	}
	if i < 0 {
		return 0
	}
	if i > len(edges)-2 {
		return len(edges) - 2
	}
	return i
}
