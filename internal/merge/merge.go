// Package merge folds parsed capture sessions into one dataset per
// logical host.
package merge

import (
	"sort"

	"pinglog/internal/models"
)

// Fold groups targets across captures by display key (host name,
// falling back to IP). IPs accumulate as a first-seen-ordered union and
// ping series concatenate in capture order. Overlapping sessions are
// not deduplicated: loading the same file twice doubles its samples.
//
// After folding, each dataset's sample pair is sorted by timestamp so
// downstream windowing and bucketing never depend on file load order.
func Fold(captures []models.Capture) []models.Dataset {
	index := make(map[string]int)
	var datasets []models.Dataset

	for _, c := range captures {
		for i := range c.Targets {
			t := &c.Targets[i]
			key := t.Key()

			idx, ok := index[key]
			if !ok {
				idx = len(datasets)
				index[key] = idx
				datasets = append(datasets, models.Dataset{Key: key})
			}

			ds := &datasets[idx]
			if t.IP != "" && !containsIP(ds.IPs, t.IP) {
				ds.IPs = append(ds.IPs, t.IP)
			}
			ds.Times = append(ds.Times, t.Times...)
			ds.RTTs = append(ds.RTTs, t.RTTs...)
		}
	}

	for i := range datasets {
		sortByTime(&datasets[i])
	}
	return datasets
}

func containsIP(ips []string, ip string) bool {
	for _, v := range ips {
		if v == ip {
			return true
		}
	}
	return false
}

// sortByTime stably sorts the parallel Times/RTTs slices by timestamp.
func sortByTime(ds *models.Dataset) {
	if sort.SliceIsSorted(ds.Times, func(i, j int) bool { return ds.Times[i] < ds.Times[j] }) {
		return
	}

	order := make([]int, len(ds.Times))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return ds.Times[order[i]] < ds.Times[order[j]] })

	times := make([]int64, len(order))
	rtts := make([]float64, len(order))
	for i, o := range order {
		times[i] = ds.Times[o]
		rtts[i] = ds.RTTs[o]
	}
	ds.Times, ds.RTTs = times, rtts
}
