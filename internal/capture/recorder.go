package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pinglog/internal/config"
)

// Recorder runs one bounded capture session against a set of endpoints
// and produces a Report in the capture-file format.
type Recorder struct {
	pinger Pinger
	cfg    config.Config
}

// NewRecorder creates a Recorder.
func NewRecorder(pinger Pinger, cfg config.Config) *Recorder {
	return &Recorder{pinger: pinger, cfg: cfg}
}

// Run pings every endpoint concurrently at the configured interval
// until the configured duration elapses or ctx is cancelled. Probes
// that fail or time out are recorded with the sentinel RTT so the file
// format matches what the loader expects.
func (r *Recorder) Run(ctx context.Context, endpoints []Endpoint) Report {
	start := time.Now()
	deadline := start.Add(r.cfg.CaptureDuration)

	targets := make([]TargetReport, len(endpoints))
	var wg sync.WaitGroup
	for i, ep := range endpoints {
		wg.Add(1)
		go func(i int, ep Endpoint) {
			defer wg.Done()
			targets[i] = r.pingTarget(ctx, ep, start, deadline)
		}(i, ep)
	}
	wg.Wait()

	return Report{
		StartTime: start.Format(time.RFC3339),
		Duration:  int(r.cfg.CaptureDuration.Seconds()),
		Interval:  int(r.cfg.CaptureInterval.Milliseconds()),
		Targets:   targets,
	}
}

func (r *Recorder) pingTarget(ctx context.Context, ep Endpoint, start, deadline time.Time) TargetReport {
	var pings []PingProbe

	for {
		now := time.Now()
		if !now.Before(deadline) || ctx.Err() != nil {
			break
		}

		startedAt := uint32(now.Sub(start).Milliseconds())
		probe := PingProbe{StartedAt: startedAt, RTT: r.cfg.Sentinel}
		if rtt, err := r.pinger.Ping(ep.IP, r.cfg.CaptureTimeout); err == nil {
			probe.RTT = uint32(rtt + 0.5)
		}
		pings = append(pings, probe)

		remaining := now.Add(r.cfg.CaptureInterval).Sub(time.Now())
		if remaining > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(remaining):
			}
		}
	}

	return TargetReport{HostName: ep.Host, IP: ep.IP, Pings: pings}
}

// WriteReport writes the report as pretty-printed JSON into dir using a
// timestamped file name, refusing to overwrite an existing file.
func WriteReport(rep Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture directory: %w", err)
	}

	name := filepath.Join(dir, time.Now().Format("pings_2006-01-02_15-04-05.json"))
	if _, err := os.Stat(name); err == nil {
		return "", fmt.Errorf("capture file %s already exists", name)
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return name, nil
}
