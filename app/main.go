package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajcareers/jobsync/app/api"
	"github.com/rajcareers/jobsync/app/cfg"
	"github.com/rajcareers/jobsync/app/extract"
	"github.com/rajcareers/jobsync/app/feed"
	"github.com/rajcareers/jobsync/app/job"
	"github.com/rajcareers/jobsync/app/source"
	"github.com/rajcareers/jobsync/app/sync"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting JobSync server", "version", appCfg.Version)

	sources, err := source.Load(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load sources", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded feed sources", "count", len(sources))

	store := job.NewStore(job.Seed())

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.HTTPTimeout) * time.Second,
	}

	fetcher := feed.NewFetcher(httpClient, appCfg.RelayURL, appCfg.UserAgent)
	extractor := extract.NewClient(httpClient, appCfg.GeminiBaseURL, appCfg.GeminiModel,
		appCfg.GeminiAPIKey, appCfg.UserAgent)

	syncLog := sync.NewLog()
	syncer := sync.NewSyncer(sources, fetcher, extractor, store, syncLog,
		appCfg.SourceItemLimit, appCfg.LogSourceFailures)

	scheduler := sync.NewScheduler(syncer, time.Duration(appCfg.SyncInterval)*time.Second)
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(store, syncLog, syncer, extractor)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("HTTP server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer; an in-flight cycle runs to completion.
	slog.Info("Shutdown complete")
}
