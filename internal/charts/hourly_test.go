package charts

import (
	"bytes"
	"strings"
	"testing"

	"aquacast/internal/demand"
	"aquacast/internal/models"
)

func TestRenderHourlyReproducible(t *testing.T) {
	points := demand.Synthesize(13.7)

	a := RenderHourly(points, 720, 320, "#22C55E")
	b := RenderHourly(points, 720, 320, "#22C55E")
	if a != b {
		t.Error("two renders of identical input differ")
	}
}

func TestRenderHourlyLayers(t *testing.T) {
	points := demand.Synthesize(16.0)
	svg := RenderHourly(points, 720, 320, "#EAB308")

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("output does not start with an svg element: %.60s", svg)
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not a closed svg document")
	}

	// Two shaded peak bands.
	if n := strings.Count(svg, "<rect"); n != 2 {
		t.Errorf("got %d rects, want 2 peak bands", n)
	}
	// Three dashed gridlines plus two axis lines.
	if n := strings.Count(svg, "stroke-dasharray=\"4 4\""); n != 3 {
		t.Errorf("got %d dashed gridlines, want 3", n)
	}
	// Area fill and stroke both present, in the configured color.
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("got %d paths, want area + stroke", n)
	}
	if !strings.Contains(svg, "fill-opacity=\"0.15\"") {
		t.Error("missing area fill")
	}
	if !strings.Contains(svg, "stroke=\"#EAB308\"") {
		t.Error("stroke does not use the configured line color")
	}
	// Two annotated peak markers.
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("got %d markers, want 2", n)
	}
	// Four sparse hour labels.
	for _, label := range []string{"12 AM", "6 AM", "12 PM", "6 PM"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("missing hour label %q", label)
		}
	}
}

func TestRenderHourlyTickCeiling(t *testing.T) {
	// Peak hourly rate for daily=13.7 is 13.7*0.069*24 ≈ 22.7, so the
	// tick ceiling rounds up to 25 and the six labels step by 5.
	points := demand.Synthesize(13.7)
	svg := RenderHourly(points, 720, 320, "#22C55E")

	for _, tick := range []string{">0<", ">5<", ">10<", ">15<", ">20<", ">25<"} {
		if !strings.Contains(svg, tick) {
			t.Errorf("missing y tick label %s", tick)
		}
	}
}

func TestRenderHourlyEmptyInput(t *testing.T) {
	svg := RenderHourly(nil, 720, 320, "#22C55E")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Errorf("empty input should still yield a valid svg shell, got %q", svg)
	}
	if strings.Contains(svg, "<path") {
		t.Error("empty input should render no curve")
	}
}

func TestRenderHourlyFlatCurve(t *testing.T) {
	// A zero daily total produces an all-zero curve; the renderer must
	// not divide by a zero span.
	points := demand.Synthesize(0)
	svg := RenderHourly(points, 720, 320, "#22C55E")
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Error("flat curve produced non-finite coordinates")
	}
}

func TestRenderOverviewPNG(t *testing.T) {
	forecasts := []models.DailyForecast{
		{Month: "Jun", DayNumber: 1, Demand: 13.7, LowerBound: 12.5, UpperBound: 14.9},
		{Month: "Jun", DayNumber: 2, Demand: 13.95, LowerBound: 12.75, UpperBound: 15.15},
		{Month: "Jun", DayNumber: 3, Demand: 14.7, LowerBound: 13.5, UpperBound: 15.9},
	}

	var buf bytes.Buffer
	if err := RenderOverviewPNG(forecasts, &buf); err != nil {
		t.Fatalf("RenderOverviewPNG failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("rendered PNG is empty")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not carry a PNG signature")
	}
}

func TestRenderOverviewPNGTooFewPoints(t *testing.T) {
	var buf bytes.Buffer
	err := RenderOverviewPNG([]models.DailyForecast{{Demand: 13.7}}, &buf)
	if err == nil {
		t.Error("expected error for single-point overview")
	}
}

func TestRenderInteractiveOverview(t *testing.T) {
	forecasts := []models.DailyForecast{
		{Month: "Jun", DayNumber: 1, Demand: 13.7, LowerBound: 12.5, UpperBound: 14.9},
		{Month: "Jun", DayNumber: 2, Demand: 13.95, LowerBound: 12.75, UpperBound: 15.15},
	}

	html, err := RenderInteractiveOverview(forecasts)
	if err != nil {
		t.Fatalf("RenderInteractiveOverview failed: %v", err)
	}
	for _, want := range []string{"Predicted demand", "Upper bound", "Lower bound", "Jun 1"} {
		if !strings.Contains(html, want) {
			t.Errorf("interactive chart missing %q", want)
		}
	}

	if _, err := RenderInteractiveOverview(nil); err == nil {
		t.Error("expected error for empty forecast set")
	}
}
