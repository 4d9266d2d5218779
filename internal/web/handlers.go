package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"pinglog/internal/models"
	"pinglog/internal/report"
	"pinglog/internal/views"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>pinglog</title></head>
<body>
<h1>Datasets</h1>
<ul>
{{range .}}
<li><b>{{.Key}}</b> ({{len .Times}} samples)
  <a href="/charts/latency/{{.Key}}.png">latency</a>
  <a href="/charts/hourly/{{.Key}}.png">hourly</a>
  <a href="/charts/overlay/{{.Key}}.png">overlay</a>
</li>
{{end}}
</ul>
</body>
</html>`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, s.datasets); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleDatasets handles /api/datasets requests
func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	summaries := make([]models.Summary, 0, len(s.datasets))
	for _, ds := range s.datasets {
		summaries = append(summaries, report.Summarize(ds, s.cfg.Thresholds))
	}
	writeJSON(w, summaries)
}

// handleRecent handles /api/recent?key=...&hours=... requests
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.dataset(w, r)
	if !ok {
		return
	}

	window := s.cfg.RecentWindow
	if h := r.URL.Query().Get("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid hours", http.StatusBadRequest)
			return
		}
		window = time.Duration(parsed) * time.Hour
	}

	writeJSON(w, views.RecentWindow(*ds, window))
}

// handleHourly handles /api/hourly?key=... requests
func (s *Server) handleHourly(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.dataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, views.TimeOfDay(*ds))
}

// handleHistogram handles /api/histogram?key=... requests
func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.dataset(w, r)
	if !ok {
		return
	}
	hist := views.BinHistogram(views.TimeOfDay(*ds), s.cfg.BinEdges)
	writeJSON(w, hist)
}

// handleChart serves /charts/{kind}/{key}.png rendered on demand.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/charts/")
	kind, name, ok := strings.Cut(rest, "/")
	if !ok || !strings.HasSuffix(name, ".png") {
		http.NotFound(w, r)
		return
	}
	key := strings.TrimSuffix(name, ".png")

	ds, ok := s.byKey[key]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	var err error
	switch kind {
	case "latency":
		err = report.LatencyChart(*ds, s.cfg).Render(chart.PNG, w)
	case "recent":
		recent := views.RecentWindow(*ds, s.cfg.RecentWindow)
		err = report.LatencyChart(recent, s.cfg).Render(chart.PNG, w)
	case "hourly":
		err = report.HourlyHistogramChart(*ds, s.cfg).Render(chart.PNG, w)
	case "overlay":
		err = report.DayOverlayChart(*ds, s.cfg).Render(chart.PNG, w)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("render chart: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) dataset(w http.ResponseWriter, r *http.Request) (*models.Dataset, bool) {
	key := r.URL.Query().Get("key")
	ds, ok := s.byKey[key]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown dataset %q", key), http.StatusNotFound)
		return nil, false
	}
	return ds, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
