package models

// Capture is one parsed measurement session (one JSON file).
type Capture struct {
	StartTime int64 // session start, ms since epoch
	Duration  int   // seconds
	Interval  int   // milliseconds
	Targets   []Target
}

// Target is one probed endpoint within a session. Times holds absolute
// sample timestamps (ms since epoch), RTTs the round-trip times in ms.
// Timed-out probes are already filtered out at load time, so the two
// slices are parallel and equal length.
type Target struct {
	HostName string
	IP       string
	Times    []int64
	RTTs     []float64
}

// Key returns the display key used to merge targets across sessions:
// the host name when known, the IP otherwise.
func (t *Target) Key() string {
	if t.HostName != "" {
		return t.HostName
	}
	return t.IP
}
