package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"aquacast/internal/models"
)

type stubFetcher struct {
	resp *models.ForecastResponse
	err  error
}

func (s *stubFetcher) FetchForecast(ctx context.Context) (*models.ForecastResponse, error) {
	return s.resp, s.err
}

func TestSnapshotEmptyBeforeFirstRefresh(t *testing.T) {
	s := New(&stubFetcher{}, clockwork.NewFakeClock(), nil)
	if _, ok := s.Snapshot(); ok {
		t.Error("store should report no snapshot before the first refresh")
	}
}

func TestRefreshLive(t *testing.T) {
	live := &models.ForecastResponse{
		Forecasts:   []models.DailyForecast{{Date: "2025-06-01", IsToday: true, Demand: 13.7}},
		LastUpdated: "2025-06-01T06:00:00Z",
	}
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	s := New(&stubFetcher{resp: live}, clock, nil)

	snap := s.Refresh(context.Background())
	if snap.Source != SourceLive {
		t.Errorf("source = %s, want live", snap.Source)
	}
	if !snap.FetchedAt.Equal(clock.Now()) {
		t.Errorf("fetchedAt = %v, want clock time %v", snap.FetchedAt, clock.Now())
	}

	got, ok := s.Snapshot()
	if !ok {
		t.Fatal("snapshot missing after refresh")
	}
	if got.Forecast.Forecasts[0].Demand != 13.7 {
		t.Errorf("stored forecast = %+v", got.Forecast.Forecasts[0])
	}
}

func TestRefreshFallsBackOnError(t *testing.T) {
	// Sunday; the fallback generator's day 0 applies the weekend
	// multiplier to template entry 0 and lands on 13.70.
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	s := New(&stubFetcher{err: errors.New("connection refused")}, clock, nil)

	snap := s.Refresh(context.Background())
	if snap.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", snap.Source)
	}
	if len(snap.Forecast.Forecasts) != 10 {
		t.Fatalf("fallback produced %d days, want 10", len(snap.Forecast.Forecasts))
	}
	today := snap.Forecast.Forecasts[0]
	if today.Date != "2025-06-01" || today.Demand != 13.70 {
		t.Errorf("fallback day 0 = %+v, want 2025-06-01 at 13.70", today)
	}
}

func TestRefreshReplacesSnapshotAtomically(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	fetcher := &stubFetcher{err: errors.New("down")}
	s := New(fetcher, clock, nil)
	s.Refresh(context.Background())

	// Upstream recovers; the next refresh swaps provenance to live.
	fetcher.err = nil
	fetcher.resp = &models.ForecastResponse{
		Forecasts: []models.DailyForecast{{Date: "2025-06-01", Demand: 14.2}},
	}
	snap := s.Refresh(context.Background())
	if snap.Source != SourceLive {
		t.Errorf("source after recovery = %s, want live", snap.Source)
	}
	got, _ := s.Snapshot()
	if len(got.Forecast.Forecasts) != 1 || got.Forecast.Forecasts[0].Demand != 14.2 {
		t.Errorf("snapshot not replaced: %+v", got.Forecast)
	}
}

func TestRefresherRejectsBadSpec(t *testing.T) {
	s := New(&stubFetcher{}, clockwork.NewFakeClock(), nil)
	r := NewRefresher(s)
	if err := r.Start("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}

func TestRefresherStartStop(t *testing.T) {
	s := New(&stubFetcher{resp: &models.ForecastResponse{}}, clockwork.NewFakeClock(), nil)
	r := NewRefresher(s)
	if err := r.Start("0 */6 * * *"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	r.Stop()
}
