package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors Config for the TOML file. Durations are plain
// integers (ms or hours) so the file stays editable without Go duration
// syntax. Absent keys leave the defaults untouched.
type fileConfig struct {
	DataDir           string    `toml:"data_dir"`
	DatabasePath      string    `toml:"database_path"`
	OutputDir         string    `toml:"output_dir"`
	Sentinel          int64     `toml:"timeout_sentinel"`
	MaxTitleIPs       int       `toml:"max_title_ips"`
	RecentWindowHours int       `toml:"recent_window_hours"`
	BinEdges          []float64 `toml:"bin_edges"`
	Thresholds        []float64 `toml:"thresholds"`
	Port              int       `toml:"port"`
	RetentionDays     int       `toml:"retention_days"`

	Targets           []string `toml:"targets"`
	CaptureIntervalMS int      `toml:"capture_interval_ms"`
	CaptureDurationS  int      `toml:"capture_duration_s"`
	CaptureTimeoutMS  int      `toml:"capture_timeout_ms"`
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file not found: %w", err)
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Sentinel > 0 {
		cfg.Sentinel = uint32(fc.Sentinel)
	}
	if fc.MaxTitleIPs > 0 {
		cfg.MaxTitleIPs = fc.MaxTitleIPs
	}
	if fc.RecentWindowHours > 0 {
		cfg.RecentWindow = time.Duration(fc.RecentWindowHours) * time.Hour
	}
	if len(fc.BinEdges) > 0 {
		cfg.BinEdges = fc.BinEdges
	}
	if len(fc.Thresholds) > 0 {
		cfg.Thresholds = fc.Thresholds
	}
	if fc.Port > 0 {
		cfg.Port = fc.Port
	}
	if fc.RetentionDays > 0 {
		cfg.Retention = time.Duration(fc.RetentionDays) * 24 * time.Hour
	}
	if len(fc.Targets) > 0 {
		cfg.Targets = fc.Targets
	}
	if fc.CaptureIntervalMS > 0 {
		cfg.CaptureInterval = time.Duration(fc.CaptureIntervalMS) * time.Millisecond
	}
	if fc.CaptureDurationS > 0 {
		cfg.CaptureDuration = time.Duration(fc.CaptureDurationS) * time.Second
	}
	if fc.CaptureTimeoutMS > 0 {
		cfg.CaptureTimeout = time.Duration(fc.CaptureTimeoutMS) * time.Millisecond
	}

	return nil
}
