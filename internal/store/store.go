package store

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"aquacast/internal/demand"
	"aquacast/internal/logger"
	"aquacast/internal/models"
	"aquacast/internal/observability"
)

// Source identifies where the current forecast snapshot came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Snapshot is the immutable unit of forecast state: the data, its
// provenance and when it was taken. Consumers receive the whole value;
// a refresh replaces it atomically, so no partial update is ever
// visible.
type Snapshot struct {
	Forecast  *models.ForecastResponse
	Source    Source
	FetchedAt time.Time
}

// Fetcher is the upstream forecast client consumed by the store.
type Fetcher interface {
	FetchForecast(ctx context.Context) (*models.ForecastResponse, error)
}

// ForecastStore owns the single source-of-truth forecast array for the
// dashboard.
type ForecastStore struct {
	mu       sync.RWMutex
	snapshot Snapshot

	fetcher Fetcher
	clock   clockwork.Clock
	metrics *observability.Metrics
	log     *logger.Logger
}

// New creates a store around the given fetcher. The clock is injected
// so tests can pin the fallback generator's dates.
func New(fetcher Fetcher, clock clockwork.Clock, metrics *observability.Metrics) *ForecastStore {
	return &ForecastStore{
		fetcher: fetcher,
		clock:   clock,
		metrics: metrics,
		log:     logger.Component("store"),
	}
}

// Snapshot returns the current forecast snapshot. The bool is false
// until the first refresh completes.
func (s *ForecastStore) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.snapshot.Forecast != nil
}

// Refresh fetches the live forecast and replaces the snapshot. On any
// fetch failure it substitutes the deterministic fallback generator, so
// the dashboard always has data; the failure is surfaced only through
// provenance, logs and metrics.
func (s *ForecastStore) Refresh(ctx context.Context) Snapshot {
	now := s.clock.Now()

	if s.metrics != nil {
		s.metrics.FetchAttempts.Inc()
	}

	forecast, err := s.fetcher.FetchForecast(ctx)
	source := SourceLive
	if err != nil {
		s.log.Error("forecast fetch failed, using fallback", err)
		forecast = demand.GenerateFallback(now)
		source = SourceFallback
		if s.metrics != nil {
			s.metrics.FetchFailures.Inc()
			s.metrics.FallbackActivations.Inc()
		}
	} else {
		s.log.Info("forecast fetched", map[string]any{"days": len(forecast.Forecasts)})
	}

	next := Snapshot{
		Forecast:  forecast,
		Source:    source,
		FetchedAt: now,
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ForecastDays.Set(float64(len(forecast.Forecasts)))
		if source == SourceFallback {
			s.metrics.UsingFallback.Set(1)
		} else {
			s.metrics.UsingFallback.Set(0)
		}
	}

	return next
}
