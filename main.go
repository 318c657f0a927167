package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"aquacast/internal/config"
	"aquacast/internal/fetchers"
	"aquacast/internal/logger"
	"aquacast/internal/observability"
	"aquacast/internal/server"
	"aquacast/internal/storage"
	"aquacast/internal/store"
)

func main() {
	ctx := context.Background()

	// A local .env is optional; real environment variables win in
	// deployment.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Info("Starting water demand dashboard", map[string]any{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"upstream":    cfg.ForecastURL(),
	})

	snapshots, err := storage.NewSnapshotStore(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize snapshot storage", err)
	}
	defer snapshots.Close()

	registry := prometheus.NewRegistry()
	metrics := observability.New(registry)

	fetcher := fetchers.NewForecastFetcher(cfg.ForecastURL(), cfg.FetchTimeout)
	forecastStore := store.New(fetcher, clockwork.NewRealClock(), metrics)

	// Warm up before serving; a failed fetch still yields the fallback.
	forecastStore.Refresh(ctx)

	refresher := store.NewRefresher(forecastStore)
	if err := refresher.Start(cfg.RefreshCron); err != nil {
		logger.Fatal("Failed to start forecast refresher", err, map[string]any{
			"cron": cfg.RefreshCron,
		})
	}
	defer refresher.Stop()

	srv, err := server.NewServer(cfg, forecastStore, fetcher, snapshots, metrics, registry)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
