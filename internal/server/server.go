package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aquacast/internal/config"
	"aquacast/internal/dashboard"
	"aquacast/internal/fetchers"
	"aquacast/internal/logger"
	"aquacast/internal/observability"
	"aquacast/internal/storage"
	"aquacast/internal/store"
)

// Server wires the dashboard, forecast store and snapshot archive
// behind the HTTP surface.
type Server struct {
	Config    *config.Config
	Store     *store.ForecastStore
	Fetcher   *fetchers.ForecastFetcher
	Builder   *dashboard.Builder
	Snapshots storage.SnapshotStore
	Metrics   *observability.Metrics

	registry *prometheus.Registry
	log      *logger.Logger
}

// NewServer creates a server around an already-constructed store and
// snapshot archive. The prometheus registry backs the /metrics endpoint.
func NewServer(cfg *config.Config, st *store.ForecastStore, fetcher *fetchers.ForecastFetcher,
	snapshots storage.SnapshotStore, metrics *observability.Metrics, registry *prometheus.Registry) (*Server, error) {

	builder, err := dashboard.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dashboard builder: %w", err)
	}

	return &Server{
		Config:    cfg,
		Store:     st,
		Fetcher:   fetcher,
		Builder:   builder,
		Snapshots: snapshots,
		Metrics:   metrics,
		registry:  registry,
		log:       logger.Component("server"),
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.HandleDashboard)
	mux.HandleFunc("/charts/hourly.svg", s.HandleHourlyChart)
	mux.HandleFunc("/charts/overview.png", s.HandleOverviewChart)
	mux.HandleFunc("/charts/interactive", s.HandleInteractiveChart)
	mux.HandleFunc("/api/forecast", s.HandleForecastAPI)
	mux.HandleFunc("/refresh", s.HandleRefresh)
	mux.HandleFunc("/snapshot", s.HandleSnapshot)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return mux
}
