package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"pinglog/internal/config"
	"pinglog/internal/models"
)

func sampleDataset() models.Dataset {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC).UnixMilli()
	ds := models.Dataset{Key: "router", IPs: []string{"10.0.0.1", "10.0.0.2"}}
	rtts := []float64{12, 45, 80, 110, 30, 25, 70, 15, 200, 55}
	for i, rtt := range rtts {
		ds.Times = append(ds.Times, base+int64(i)*int64(time.Hour/time.Millisecond))
		ds.RTTs = append(ds.RTTs, rtt)
	}
	return ds
}

func TestLatencyChartRenders(t *testing.T) {
	cfg := config.Default()
	graph := LatencyChart(sampleDataset(), cfg)

	// One data series plus one reference line per threshold.
	if want := 1 + len(cfg.Thresholds); len(graph.Series) != want {
		t.Fatalf("series = %d, want %d", len(graph.Series), want)
	}
	if !strings.Contains(graph.Title, "router (10.0.0.1, 10.0.0.2)") {
		t.Errorf("title missing target identity: %q", graph.Title)
	}
	if !strings.Contains(graph.Title, "> 60 ms") {
		t.Errorf("title missing threshold share: %q", graph.Title)
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty PNG output")
	}
}

func TestHourlyHistogramChartRenders(t *testing.T) {
	graph := HourlyHistogramChart(sampleDataset(), config.Default())

	if len(graph.Bars) != 24 {
		t.Fatalf("bars = %d, want 24", len(graph.Bars))
	}
	for _, bar := range graph.Bars {
		if len(bar.Values) == 0 {
			t.Errorf("bar %s has no segments", bar.Name)
		}
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestDayOverlayChartRenders(t *testing.T) {
	graph := DayOverlayChart(sampleDataset(), config.Default())

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestGeneratorWritesReportDir(t *testing.T) {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.DataDir = "captures"

	gen := NewGenerator(cfg)
	reportDir, err := gen.Generate([]models.Dataset{sampleDataset()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	entries, err := os.ReadDir(reportDir)
	if err != nil {
		t.Fatalf("read report dir: %v", err)
	}
	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, want := range []string{
		"latency_router.png",
		"latency_recent_router.png",
		"hourly_router.png",
		"overlay_router.png",
		"summary.txt",
	} {
		if !names[want] {
			t.Errorf("missing %s in report dir (have %v)", want, names)
		}
	}

	summary, err := os.ReadFile(filepath.Join(reportDir, "summary.txt"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(summary), "router") {
		t.Errorf("summary missing target:\n%s", summary)
	}
}
