package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pinglog/internal/capture"
	"pinglog/internal/config"
	"pinglog/internal/database"
	"pinglog/internal/loader"
	"pinglog/internal/merge"
	"pinglog/internal/models"
	"pinglog/internal/report"
	"pinglog/internal/web"
)

func main() {
	mode, cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}
	if err := cfg.Validate(mode); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	switch mode {
	case config.ModeAnalyze:
		err = runAnalyze(cfg)
	case config.ModeCapture:
		err = runCapture(cfg)
	case config.ModeServe:
		err = runServe(cfg)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func runAnalyze(cfg config.Config) error {
	datasets, err := loadDatasets(cfg, false)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		log.Printf("No capture data found in %s", cfg.DataDir)
		return nil
	}

	if cfg.DatabasePath != "" {
		if err := archiveDatasets(cfg, datasets); err != nil {
			return err
		}
	}

	gen := report.NewGenerator(cfg)
	reportDir, err := gen.Generate(datasets)
	if err != nil {
		return err
	}
	log.Printf("Report generated in: %s", reportDir)
	return nil
}

func runCapture(cfg config.Config) error {
	endpoints := make([]capture.Endpoint, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		ep, err := capture.Resolve(t)
		if err != nil {
			return err
		}
		endpoints = append(endpoints, ep)
	}

	log.Printf("Pinging %d target(s) every %v for %v:", len(endpoints), cfg.CaptureInterval, cfg.CaptureDuration)
	for _, ep := range endpoints {
		log.Printf("    %s", ep)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := capture.NewRecorder(capture.NewPinger(), cfg)
	rep := rec.Run(ctx, endpoints)

	name, err := capture.WriteReport(rep, cfg.DataDir)
	if err != nil {
		return err
	}
	log.Printf("Capture written to %s", name)

	return capture.WriteSummary(os.Stdout, rep, cfg.Sentinel)
}

func runServe(cfg config.Config) error {
	datasets, err := loadDatasets(cfg, true)
	if err != nil {
		return err
	}

	log.Printf("Serving %d dataset(s) at http://localhost:%d", len(datasets), cfg.Port)
	return web.New(datasets, cfg).Start()
}

// loadDatasets builds the merged datasets. Serve mode prefers the
// sqlite archive when one is configured; analyze mode always re-reads
// the capture directory so the archive reflects the latest files.
func loadDatasets(cfg config.Config, preferArchive bool) ([]models.Dataset, error) {
	if cfg.DatabasePath != "" && (preferArchive || cfg.DataDir == "") {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := db.InitSchema(); err != nil {
			return nil, err
		}
		return db.LoadDatasets()
	}

	captures, err := loader.LoadDir(cfg.DataDir, cfg.Sentinel)
	if err != nil {
		return nil, err
	}
	return merge.Fold(captures), nil
}

func archiveDatasets(cfg config.Config, datasets []models.Dataset) error {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		return err
	}
	if err := db.ReplaceDatasets(datasets); err != nil {
		return err
	}
	if cfg.Retention > 0 {
		if err := db.Prune(time.Now().Add(-cfg.Retention)); err != nil {
			return err
		}
	}
	log.Printf("Archived %d dataset(s) to %s", len(datasets), cfg.DatabasePath)
	return nil
}
