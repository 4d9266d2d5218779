package config

import (
	"fmt"
	"math"
	"time"
)

// Modes supported by the pinglog binary.
const (
	ModeAnalyze = "analyze"
	ModeCapture = "capture"
	ModeServe   = "serve"
)

// TimeoutSentinel is the reserved RTT value written by the capture side
// for probes that timed out. Samples carrying it are excluded from all
// analysis.
const TimeoutSentinel uint32 = math.MaxUint32

// Config holds all configuration for pinglog. One struct covers every
// mode; Validate checks only the fields the selected mode uses.
type Config struct {
	// analyze / serve
	DataDir      string
	DatabasePath string
	OutputDir    string
	Sentinel     uint32
	MaxTitleIPs  int
	RecentWindow time.Duration
	BinEdges     []float64
	Thresholds   []float64
	Port         int
	Retention    time.Duration // archive retention; 0 keeps everything

	// capture
	Targets         []string
	CaptureInterval time.Duration
	CaptureDuration time.Duration
	CaptureTimeout  time.Duration
}

// Default returns the built-in configuration, overridden by an optional
// TOML file and then by flags.
func Default() Config {
	return Config{
		DataDir:         "captures",
		OutputDir:       "reports",
		Sentinel:        TimeoutSentinel,
		MaxTitleIPs:     3,
		RecentWindow:    24 * time.Hour,
		BinEdges:        []float64{0, 30, 50, 100, 1000},
		Thresholds:      []float64{60, 100},
		Port:            8080,
		CaptureInterval: 500 * time.Millisecond,
		CaptureDuration: 30 * time.Second,
		CaptureTimeout:  time.Second,
	}
}

// Validate checks whether the configuration is usable for the given mode.
func (c *Config) Validate(mode string) error {
	switch mode {
	case ModeAnalyze, ModeServe:
		if c.DataDir == "" && c.DatabasePath == "" {
			return fmt.Errorf("a data directory or database path must be specified")
		}
		if c.RecentWindow <= 0 {
			return fmt.Errorf("recent window must be positive")
		}
		if len(c.BinEdges) < 2 {
			return fmt.Errorf("at least two histogram bin edges are required")
		}
		for i := 1; i < len(c.BinEdges); i++ {
			if c.BinEdges[i] <= c.BinEdges[i-1] {
				return fmt.Errorf("histogram bin edges must be strictly ascending")
			}
		}
		if c.MaxTitleIPs < 0 {
			return fmt.Errorf("max title IPs cannot be negative")
		}
		if c.Retention < 0 {
			return fmt.Errorf("retention cannot be negative")
		}
		if mode == ModeServe && (c.Port <= 0 || c.Port > 65535) {
			return fmt.Errorf("port must be between 1 and 65535")
		}
	case ModeCapture:
		if len(c.Targets) == 0 {
			return fmt.Errorf("at least one target must be specified")
		}
		if c.CaptureInterval <= 0 {
			return fmt.Errorf("interval must be positive")
		}
		if c.CaptureDuration <= 0 {
			return fmt.Errorf("duration must be positive")
		}
		if c.CaptureTimeout <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}
