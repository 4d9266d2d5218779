// Package loader reads capture JSON files into parsed, filtered
// measurement sessions.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pinglog/internal/capture"
	"pinglog/internal/models"
)

// LoadDir parses every regular file in dir as a capture file, in
// directory order. Dotfiles and subdirectories are skipped. Any
// malformed file aborts the whole load; there is no partial recovery.
func LoadDir(dir string, sentinel uint32) ([]models.Capture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read capture directory: %w", err)
	}

	var captures []models.Capture
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		c, err := LoadFile(filepath.Join(dir, e.Name()), sentinel)
		if err != nil {
			return nil, err
		}
		captures = append(captures, c)
	}
	return captures, nil
}

// LoadFile parses a single capture file. Probes whose RTT equals the
// timeout sentinel are dropped; all remaining sample times are converted
// to absolute ms-since-epoch timestamps.
func LoadFile(path string, sentinel uint32) (models.Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Capture{}, fmt.Errorf("read %s: %w", path, err)
	}

	var rep capture.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return models.Capture{}, fmt.Errorf("parse %s: %w", path, err)
	}

	c, err := fromReport(rep, sentinel)
	if err != nil {
		return models.Capture{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func fromReport(rep capture.Report, sentinel uint32) (models.Capture, error) {
	if rep.StartTime == "" {
		return models.Capture{}, fmt.Errorf("missing start_time")
	}
	start, err := time.Parse(time.RFC3339, rep.StartTime)
	if err != nil {
		return models.Capture{}, fmt.Errorf("bad start_time: %w", err)
	}
	if rep.Targets == nil {
		return models.Capture{}, fmt.Errorf("missing targets")
	}

	startMs := start.UnixMilli()
	c := models.Capture{
		StartTime: startMs,
		Duration:  rep.Duration,
		Interval:  rep.Interval,
		Targets:   make([]models.Target, 0, len(rep.Targets)),
	}

	for _, t := range rep.Targets {
		target := models.Target{HostName: t.HostName, IP: t.IP}
		for _, p := range t.Pings {
			if p.RTT == sentinel {
				continue
			}
			target.Times = append(target.Times, startMs+int64(p.StartedAt))
			target.RTTs = append(target.RTTs, float64(p.RTT))
		}
		c.Targets = append(c.Targets, target)
	}
	return c, nil
}
