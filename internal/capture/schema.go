// Package capture defines the JSON capture-file format and records new
// capture sessions by pinging targets.
package capture

// Report is the on-disk capture file: one measurement session.
type Report struct {
	StartTime string         `json:"start_time"` // RFC3339
	Duration  int            `json:"duration"`   // seconds
	Interval  int            `json:"interval"`   // milliseconds
	Targets   []TargetReport `json:"targets"`
}

// TargetReport is one probed endpoint within a session.
type TargetReport struct {
	HostName string      `json:"host_name"`
	IP       string      `json:"ip"`
	Pings    []PingProbe `json:"pings"`
}

// PingProbe is a single probe. StartedAt is the offset from the session
// start in ms; RTT is the round-trip time in ms, or the timeout sentinel
// for probes that got no reply.
type PingProbe struct {
	StartedAt uint32 `json:"started_at"`
	RTT       uint32 `json:"rtt"`
}
