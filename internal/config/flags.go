package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Parse determines the mode from the first non-flag argument (default
// "analyze") and builds the configuration from defaults, the optional
// TOML file, and flags, in that precedence order.
func Parse(args []string) (string, Config, error) {
	mode := ModeAnalyze
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		mode = args[0]
		args = args[1:]
	}
	if mode != ModeAnalyze && mode != ModeCapture && mode != ModeServe {
		return "", Config{}, fmt.Errorf("unknown mode %q (expected analyze, capture or serve)", mode)
	}

	cfg := Default()

	fs := flag.NewFlagSet("pinglog "+mode, flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "Optional TOML config file")
		dataDir    = fs.String("dir", cfg.DataDir, "Directory containing capture JSON files")
		dbPath     = fs.String("db", cfg.DatabasePath, "SQLite archive path (optional)")
		outDir     = fs.String("out", cfg.OutputDir, "Output directory for reports and capture files")
		window     = fs.Duration("window", cfg.RecentWindow, "Recent window duration")
		maxIPs     = fs.Int("max-title-ips", cfg.MaxTitleIPs, "Maximum IPs shown in a chart title")
		binEdges   = fs.String("bins", joinFloats(cfg.BinEdges), "Comma-separated histogram bin edges (ms)")
		thresholds = fs.String("thresholds", joinFloats(cfg.Thresholds), "Comma-separated latency thresholds (ms)")
		port       = fs.Int("port", cfg.Port, "HTTP viewer port")
		retention  = fs.Duration("retention", cfg.Retention, "Archive retention (0 keeps everything)")
		targets    = fs.String("targets", "", "Comma-separated capture targets (IPs or host names)")
		interval   = fs.Duration("interval", cfg.CaptureInterval, "Interval between pings")
		duration   = fs.Duration("duration", cfg.CaptureDuration, "Total capture run time")
		timeout    = fs.Duration("timeout", cfg.CaptureTimeout, "Per-ping timeout")
	)
	if err := fs.Parse(args); err != nil {
		return "", Config{}, err
	}

	if *configPath != "" {
		if err := loadFile(*configPath, &cfg); err != nil {
			return "", Config{}, err
		}
	}

	// Flags explicitly set on the command line win over the file.
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.DataDir = *dataDir
		case "db":
			cfg.DatabasePath = *dbPath
		case "out":
			cfg.OutputDir = *outDir
		case "window":
			cfg.RecentWindow = *window
		case "max-title-ips":
			cfg.MaxTitleIPs = *maxIPs
		case "bins":
			if v, err := parseFloats(*binEdges); err != nil {
				ferr = fmt.Errorf("invalid -bins: %w", err)
			} else {
				cfg.BinEdges = v
			}
		case "thresholds":
			if v, err := parseFloats(*thresholds); err != nil {
				ferr = fmt.Errorf("invalid -thresholds: %w", err)
			} else {
				cfg.Thresholds = v
			}
		case "port":
			cfg.Port = *port
		case "retention":
			cfg.Retention = *retention
		case "targets":
			cfg.Targets = splitList(*targets)
		case "interval":
			cfg.CaptureInterval = *interval
		case "duration":
			cfg.CaptureDuration = *duration
		case "timeout":
			cfg.CaptureTimeout = *timeout
		}
	})
	if ferr != nil {
		return "", Config{}, ferr
	}

	return mode, cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
