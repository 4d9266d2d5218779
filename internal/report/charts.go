package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pinglog/internal/config"
	"pinglog/internal/models"
	"pinglog/internal/views"
)

var thresholdColors = []drawing.Color{
	{R: 230, G: 140, B: 0, A: 255},
	{R: 200, G: 30, B: 30, A: 255},
}

// LatencyChart plots RTT over absolute time as a scatter with one
// dashed reference line per configured threshold. The title carries the
// percentage of samples above each threshold.
func LatencyChart(ds models.Dataset, cfg config.Config) chart.Chart {
	times := make([]time.Time, len(ds.Times))
	for i, ts := range ds.Times {
		times[i] = time.UnixMilli(ts)
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name: ds.Key,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    2,
				DotColor:    chart.GetDefaultColor(0),
			},
			XValues: times,
			YValues: ds.RTTs,
		},
	}

	if len(times) > 0 {
		for i, th := range cfg.Thresholds {
			series = append(series, chart.TimeSeries{
				Name: fmt.Sprintf("%.0f ms", th),
				Style: chart.Style{
					StrokeColor:     thresholdColors[i%len(thresholdColors)],
					StrokeWidth:     1.0,
					StrokeDashArray: []float64{5, 5},
				},
				XValues: []time.Time{times[0], times[len(times)-1]},
				YValues: []float64{th, th},
			})
		}
	}

	return chart.Chart{
		Title: latencyTitle(ds, cfg),
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
		},
		YAxis: chart.YAxis{
			Name: "RTT (ms)",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: series,
	}
}

func latencyTitle(ds models.Dataset, cfg config.Config) string {
	var b strings.Builder
	b.WriteString(ds.Title(cfg.MaxTitleIPs))
	for i, th := range cfg.Thresholds {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.1f%% > %.0f ms", PercentOver(ds.RTTs, th), th)
	}
	return b.String()
}

// HourlyHistogramChart renders the per-hour RTT distribution as a
// stacked bar chart, one bar per hour of day, one segment per bin.
// Hours without samples get a single gray placeholder segment.
func HourlyHistogramChart(ds models.Dataset, cfg config.Config) chart.StackedBarChart {
	hist := views.BinHistogram(views.TimeOfDay(ds), cfg.BinEdges)

	bars := make([]chart.StackedBar, 0, 24)
	for hour := 0; hour < 24; hour++ {
		bar := chart.StackedBar{
			Name:  fmt.Sprintf("%02d", hour),
			Width: 36,
		}

		if hist.Counts[hour] == 0 {
			bar.Values = []chart.Value{{
				Value: 1,
				Label: "",
				Style: chart.Style{FillColor: drawing.Color{R: 235, G: 235, B: 235, A: 255}},
			}}
			bars = append(bars, bar)
			continue
		}

		for bin, frac := range hist.Fractions[hour] {
			if frac == 0 {
				continue
			}
			label := ""
			if frac >= 0.05 {
				label = fmt.Sprintf("%.0f%%", 100*frac)
			}
			bar.Values = append(bar.Values, chart.Value{
				Value: frac,
				Label: label,
				Style: chart.Style{
					FillColor:   chart.GetDefaultColor(bin),
					StrokeWidth: chart.Disabled,
					FontSize:    8,
				},
			})
		}
		bars = append(bars, bar)
	}

	return chart.StackedBarChart{
		Title: fmt.Sprintf("Hourly RTT distribution: %s", ds.Title(cfg.MaxTitleIPs)),
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:      1200,
		Height:     400,
		BarSpacing: 6,
		XAxis: chart.Style{
			FontSize: 9,
		},
		YAxis: chart.Style{
			FontSize: 9,
		},
		Bars: bars,
	}
}

// DayOverlayChart plots every sample against its time of day so all
// captured days overlay onto one 24h axis.
func DayOverlayChart(ds models.Dataset, cfg config.Config) chart.Chart {
	overlay := views.DayOverlay(ds)

	times := make([]time.Time, len(overlay.Times))
	for i, tod := range overlay.Times {
		times[i] = time.UnixMilli(tod).UTC()
	}

	return chart.Chart{
		Title: fmt.Sprintf("Time of day: %s", ds.Title(cfg.MaxTitleIPs)),
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Hour of day",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04"),
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64((24 * time.Hour).Nanoseconds()),
			},
		},
		YAxis: chart.YAxis{
			Name: "RTT (ms)",
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: ds.Key,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
					DotColor:    chart.GetDefaultColor(0),
				},
				XValues: times,
				YValues: overlay.RTTs,
			},
		},
	}
}
