package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pinglog/internal/models"
)

func (g *Generator) writeTextSummary(outputDir string, datasets []models.Dataset) error {
	filename := filepath.Join(outputDir, "summary.txt")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Ping Latency Report\n")
	fmt.Fprintf(file, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Capture directory: %s\n\n", g.cfg.DataDir)
	fmt.Fprintln(file, strings.Repeat("=", 60))

	for _, ds := range datasets {
		s := Summarize(ds, g.cfg.Thresholds)

		fmt.Fprintf(file, "\nTarget: %s\n", ds.Title(g.cfg.MaxTitleIPs))
		fmt.Fprintf(file, "  Samples: %d\n", s.Samples)
		if s.Samples == 0 {
			continue
		}
		fmt.Fprintf(file, "  Min RTT: %.1f ms\n", s.MinRTT)
		fmt.Fprintf(file, "  Median RTT: %.1f ms\n", s.MedianRTT)
		fmt.Fprintf(file, "  P95 RTT: %.1f ms\n", s.P95RTT)
		fmt.Fprintf(file, "  Max RTT: %.1f ms\n", s.MaxRTT)
		for _, ts := range s.OverThreshold {
			fmt.Fprintf(file, "  Above %.0f ms: %.2f%%\n", ts.ThresholdMs, ts.Percent)
		}
	}

	fmt.Fprintln(file)
	fmt.Fprintln(file, strings.Repeat("=", 60))
	return nil
}
