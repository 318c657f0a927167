package dashboard

import (
	"strings"
	"testing"
	"time"

	"aquacast/internal/demand"
	"aquacast/internal/models"
	"aquacast/internal/store"
)

func fallbackSnapshot(t *testing.T) store.Snapshot {
	t.Helper()
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return store.Snapshot{
		Forecast:  demand.GenerateFallback(now),
		Source:    store.SourceFallback,
		FetchedAt: now,
	}
}

func TestRenderDashboard(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	html, err := b.Render(fallbackSnapshot(t), "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		"Water Demand Forecast",
		"TODAY",                 // today's card label
		"showing estimated data", // fallback banner
		"<svg",                  // inline hourly chart
		"13.70",                 // today's demand on the detail panel
		"/charts/overview.png",
		"/charts/interactive",
		"Model: Simulated",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}

	// Ten day cards, each linking to its date.
	if n := strings.Count(html, "class=\"day-card"); n != 10 {
		t.Errorf("got %d day cards, want 10", n)
	}
	if !strings.Contains(html, "/?day=2025-06-05") {
		t.Error("day cards should link to their dates")
	}
}

func TestRenderSelectsRequestedDay(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	html, err := b.Render(fallbackSnapshot(t), "2025-06-04")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// The wet Wednesday from the fallback template: 11.99 MGD.
	if !strings.Contains(html, "11.99") {
		t.Error("detail panel should show the selected day's demand")
	}
	if !strings.Contains(html, "WED &middot; Jun 4") {
		t.Error("detail header should name the selected day")
	}
}

func TestRenderUnknownDayFallsBackToToday(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	html, err := b.Render(fallbackSnapshot(t), "1999-01-01")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, "TODAY &middot; Jun 1") {
		t.Error("unknown day should select today's forecast")
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	html, err := b.Render(store.Snapshot{
		Forecast:  &models.ForecastResponse{},
		Source:    store.SourceLive,
		FetchedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}, "")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(html, "No forecast data is available") {
		t.Error("empty snapshot should render the empty state")
	}
	if strings.Contains(html, "<svg") {
		t.Error("empty snapshot must not render a detail chart")
	}
}

func TestBuildNarrative(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	forecasts := demand.GenerateFallback(now).Forecasts

	md := BuildNarrative(forecasts)
	if md == "" {
		t.Fatal("narrative should not be empty for a populated forecast")
	}
	// Peak of the fallback window starting on a Sunday is the hot
	// Saturday (87°F): 15.3 * 1.05 = 16.07.
	if !strings.Contains(md, "16.07 MGD") {
		t.Errorf("narrative should name the peak demand: %s", md)
	}
	if !strings.Contains(md, "Sat, Jun 7") {
		t.Errorf("narrative should name the peak day: %s", md)
	}
	if md != BuildNarrative(forecasts) {
		t.Error("narrative is not deterministic")
	}

	if BuildNarrative(nil) != "" {
		t.Error("empty forecast should produce an empty narrative")
	}
}
