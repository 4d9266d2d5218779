// Package web serves the derived views and rendered charts over HTTP.
// Datasets are an immutable snapshot taken at startup.
package web

import (
	"fmt"
	"net/http"

	"pinglog/internal/config"
	"pinglog/internal/models"
)

// Server is the HTTP viewer.
type Server struct {
	datasets []models.Dataset
	byKey    map[string]*models.Dataset
	cfg      config.Config
}

// New creates a viewer over the given dataset snapshot.
func New(datasets []models.Dataset, cfg config.Config) *Server {
	s := &Server{
		datasets: datasets,
		byKey:    make(map[string]*models.Dataset, len(datasets)),
		cfg:      cfg,
	}
	for i := range datasets {
		s.byKey[datasets[i].Key] = &datasets[i]
	}
	return s
}

// Start runs the HTTP server; it blocks until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	return http.ListenAndServe(addr, s.routes())
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/datasets", s.handleDatasets)
	mux.HandleFunc("/api/recent", s.handleRecent)
	mux.HandleFunc("/api/hourly", s.handleHourly)
	mux.HandleFunc("/api/histogram", s.handleHistogram)
	mux.HandleFunc("/charts/", s.handleChart)

	return mux
}
