package models

// Summary holds aggregate latency statistics for one dataset.
type Summary struct {
	Key           string           `json:"key"`
	Samples       int              `json:"samples"`
	MinRTT        float64          `json:"min_rtt"`
	MedianRTT     float64          `json:"median_rtt"`
	P95RTT        float64          `json:"p95_rtt"`
	MaxRTT        float64          `json:"max_rtt"`
	OverThreshold []ThresholdShare `json:"over_threshold"`
}

// ThresholdShare is the fraction of samples above a latency threshold.
type ThresholdShare struct {
	ThresholdMs float64 `json:"threshold_ms"`
	Percent     float64 `json:"percent"`
}
