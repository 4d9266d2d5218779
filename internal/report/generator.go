// Package report renders charts and text summaries from merged
// datasets.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"pinglog/internal/config"
	"pinglog/internal/models"
	"pinglog/internal/views"
)

// Generator writes a report directory of PNG charts and a text summary.
type Generator struct {
	cfg config.Config
}

// NewGenerator creates a report generator.
func NewGenerator(cfg config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// renderable is the common surface of go-chart chart types.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Generate renders, per dataset, the latency scatter (full and recent
// window), the hourly histogram and the time-of-day overlay, plus one
// summary.txt covering all datasets. Individual chart failures are
// logged and skipped so one degenerate dataset cannot sink the report.
func (g *Generator) Generate(datasets []models.Dataset) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(g.cfg.OutputDir, fmt.Sprintf("ping_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	for _, ds := range datasets {
		name := sanitizeFilename(ds.Key)

		g.renderPNG(filepath.Join(reportDir, fmt.Sprintf("latency_%s.png", name)),
			LatencyChart(ds, g.cfg))

		recent := views.RecentWindow(ds, g.cfg.RecentWindow)
		g.renderPNG(filepath.Join(reportDir, fmt.Sprintf("latency_recent_%s.png", name)),
			LatencyChart(recent, g.cfg))

		g.renderPNG(filepath.Join(reportDir, fmt.Sprintf("hourly_%s.png", name)),
			HourlyHistogramChart(ds, g.cfg))

		g.renderPNG(filepath.Join(reportDir, fmt.Sprintf("overlay_%s.png", name)),
			DayOverlayChart(ds, g.cfg))
	}

	if err := g.writeTextSummary(reportDir, datasets); err != nil {
		log.Printf("Failed to write text summary: %v", err)
	}

	return reportDir, nil
}

func (g *Generator) renderPNG(filename string, graph renderable) {
	file, err := os.Create(filename)
	if err != nil {
		log.Printf("Failed to create %s: %v", filename, err)
		return
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		log.Printf("Failed to render %s: %v", filename, err)
	}
}
