package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"aquacast/internal/charts"
	"aquacast/internal/demand"
	"aquacast/internal/models"
	"aquacast/internal/store"
)

// HandleDashboard serves the dashboard page. The optional ?day= query
// parameter selects which forecast day the detail panel expands.
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, ok := s.Store.Snapshot()
	if !ok {
		// First refresh has not completed yet; render the empty state.
		snap = store.Snapshot{Forecast: &models.ForecastResponse{}}
	}

	html, err := s.Builder.Render(snap, r.URL.Query().Get("day"))
	if err != nil {
		s.log.Error("dashboard render failed", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	if s.Metrics != nil {
		s.Metrics.DashboardRenders.Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// selectedForecast resolves the ?day= parameter against the current
// snapshot, falling back to today's entry.
func (s *Server) selectedForecast(r *http.Request) (models.DailyForecast, bool) {
	snap, ok := s.Store.Snapshot()
	if !ok {
		return models.DailyForecast{}, false
	}

	if f, found := snap.Forecast.ByDate(r.URL.Query().Get("day")); found {
		return f, true
	}
	if f, found := snap.Forecast.Today(); found {
		return f, true
	}
	if len(snap.Forecast.Forecasts) > 0 {
		return snap.Forecast.Forecasts[0], true
	}
	return models.DailyForecast{}, false
}

// HandleHourlyChart serves the standalone hourly SVG for one day.
func (s *Server) HandleHourlyChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f, ok := s.selectedForecast(r)
	if !ok {
		http.Error(w, "No forecast data available", http.StatusNotFound)
		return
	}

	c := demand.Classify(f.Demand)
	svg := charts.RenderHourly(demand.Synthesize(f.Demand), 720, 320, c.LineColor)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

// HandleOverviewChart serves the 10-day overview as a PNG.
func (s *Server) HandleOverviewChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, ok := s.Store.Snapshot()
	if !ok {
		http.Error(w, "No forecast data available", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderOverviewPNG(snap.Forecast.Forecasts, &buf); err != nil {
		s.log.Error("overview chart render failed", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// HandleInteractiveChart serves the echarts overview page, embedded by
// the dashboard in an iframe.
func (s *Server) HandleInteractiveChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, ok := s.Store.Snapshot()
	if !ok {
		http.Error(w, "No forecast data available", http.StatusNotFound)
		return
	}

	html, err := charts.RenderInteractiveOverview(snap.Forecast.Forecasts)
	if err != nil {
		s.log.Error("interactive chart render failed", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// forecastEnvelope wraps the forecast with its provenance for API
// consumers.
type forecastEnvelope struct {
	Source    store.Source             `json:"source"`
	FetchedAt string                   `json:"fetched_at"`
	Forecast  *models.ForecastResponse `json:"forecast"`
}

// HandleForecastAPI serves the current snapshot as JSON.
func (s *Server) HandleForecastAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, ok := s.Store.Snapshot()
	if !ok {
		http.Error(w, "No forecast data available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(forecastEnvelope{
		Source:    snap.Source,
		FetchedAt: snap.FetchedAt.Format(time.RFC3339),
		Forecast:  snap.Forecast,
	})
}

// HandleRefresh triggers an immediate forecast refresh, rate limited so
// a reload-happy browser cannot hammer the upstream.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.Fetcher.AllowManualRefresh() {
		http.Error(w, "Refresh rate limit exceeded, try again shortly", http.StatusTooManyRequests)
		return
	}

	snap := s.Store.Refresh(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":     "refreshed",
		"source":     snap.Source,
		"fetched_at": snap.FetchedAt.Format(time.RFC3339),
		"days":       len(snap.Forecast.Forecasts),
	})
}

// HandleSnapshot archives the current forecast and rendered dashboard
// to the snapshot store.
func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Snapshots == nil {
		http.Error(w, "Snapshot storage is not configured", http.StatusServiceUnavailable)
		return
	}

	snap, ok := s.Store.Snapshot()
	if !ok {
		http.Error(w, "No forecast data available", http.StatusNotFound)
		return
	}

	ctx := r.Context()
	timestamp := snap.FetchedAt

	forecastJSON, err := json.MarshalIndent(snap.Forecast, "", "  ")
	if err != nil {
		http.Error(w, "Failed to encode forecast", http.StatusInternalServerError)
		return
	}
	if err := s.Snapshots.StoreFile(ctx, forecastJSON, "forecast.json", timestamp); err != nil {
		s.log.Error("failed to archive forecast", err)
		http.Error(w, "Failed to archive snapshot", http.StatusInternalServerError)
		return
	}

	html, err := s.Builder.Render(snap, "")
	if err == nil {
		if err := s.Snapshots.StoreFile(ctx, []byte(html), "dashboard.html", timestamp); err != nil {
			s.log.Error("failed to archive dashboard page", err)
		}
	}

	var png bytes.Buffer
	if err := charts.RenderOverviewPNG(snap.Forecast.Forecasts, &png); err == nil {
		if err := s.Snapshots.StoreFile(ctx, png.Bytes(), "overview.png", timestamp); err != nil {
			s.log.Error("failed to archive overview chart", err)
		}
	}

	if s.Metrics != nil {
		s.Metrics.SnapshotSaves.Inc()
	}
	s.log.Info("snapshot archived", map[string]any{"timestamp": timestamp.Format(time.RFC3339)})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "saved",
		"folder": timestamp.Format(time.RFC3339),
	})
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	forecastStatus := "warming up"
	if _, ok := s.Store.Snapshot(); ok {
		forecastStatus = "ok"
	}

	health := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"forecast": forecastStatus,
			"config":   "ok",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
