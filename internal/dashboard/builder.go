package dashboard

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"aquacast/internal/charts"
	"aquacast/internal/demand"
	"aquacast/internal/models"
	"aquacast/internal/store"
)

// Templates and styles are resolved at build time; the page carries its
// own scoped stylesheet instead of injecting one at runtime.
//
//go:embed templates/dashboard.html
var dashboardTemplate string

//go:embed templates/dashboard.css
var dashboardCSS string

// Hourly chart viewport, sized for a phone-width card.
const (
	hourlyChartWidth  = 720
	hourlyChartHeight = 320
)

// Builder renders the dashboard page from a forecast snapshot.
type Builder struct {
	tmpl     *template.Template
	markdown goldmark.Markdown
}

// NewBuilder parses the embedded template and configures the markdown
// renderer for the narrative block.
func NewBuilder() (*Builder, error) {
	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &Builder{
		tmpl:     tmpl,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// dayCard is one entry in the 10-day strip.
type dayCard struct {
	models.DailyForecast
	Level     string
	LineColor string
	Tint      string
	Selected  bool
}

// detailView is the expanded panel for the selected day.
type detailView struct {
	models.DailyForecast
	Level     string
	LineColor string
	Tint      string
	HourlySVG template.HTML
}

// pageData feeds the dashboard template.
type pageData struct {
	CSS           template.CSS
	Cards         []dayCard
	Detail        *detailView
	UsingFallback bool
	FetchedAt     string
	LastUpdated   string
	AccuracyLine  string
	Narrative     template.HTML
}

// accuracyLine formats the model-accuracy footer entry.
func accuracyLine(acc models.ModelAccuracy) string {
	if acc.ModelType == "" {
		return ""
	}
	line := "Model: " + acc.ModelType
	if acc.RSquared != nil {
		line += fmt.Sprintf(" (R² %.2f)", *acc.RSquared)
	}
	return line
}

// Render builds the full dashboard page. selectedDay is an ISO date
// from the query string; empty or unknown dates select today's
// forecast. An empty snapshot renders the empty state, never an error.
func (b *Builder) Render(snap store.Snapshot, selectedDay string) (string, error) {
	data := pageData{
		CSS:           template.CSS(dashboardCSS),
		UsingFallback: snap.Source == store.SourceFallback,
		FetchedAt:     snap.FetchedAt.Format(time.RFC3339),
	}

	if snap.Forecast != nil {
		data.LastUpdated = snap.Forecast.LastUpdated
		data.AccuracyLine = accuracyLine(snap.Forecast.ModelAccuracy)

		selected, haveSelected := snap.Forecast.ByDate(selectedDay)
		if !haveSelected {
			selected, haveSelected = snap.Forecast.Today()
		}
		if !haveSelected && len(snap.Forecast.Forecasts) > 0 {
			selected = snap.Forecast.Forecasts[0]
			haveSelected = true
		}

		for _, f := range snap.Forecast.Forecasts {
			c := demand.Classify(f.Demand)
			data.Cards = append(data.Cards, dayCard{
				DailyForecast: f,
				Level:         string(c.Level),
				LineColor:     c.LineColor,
				Tint:          c.BackgroundTint,
				Selected:      haveSelected && f.Date == selected.Date,
			})
		}

		if haveSelected {
			c := demand.Classify(selected.Demand)
			hourly := demand.Synthesize(selected.Demand)
			svg := charts.RenderHourly(hourly, hourlyChartWidth, hourlyChartHeight, c.LineColor)
			data.Detail = &detailView{
				DailyForecast: selected,
				Level:         string(c.Level),
				LineColor:     c.LineColor,
				Tint:          c.BackgroundTint,
				HourlySVG:     template.HTML(svg),
			}
		}

		narrative, err := b.renderNarrative(snap.Forecast.Forecasts)
		if err != nil {
			return "", err
		}
		data.Narrative = narrative
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.String(), nil
}

// renderNarrative converts the deterministic markdown summary to HTML.
func (b *Builder) renderNarrative(forecasts []models.DailyForecast) (template.HTML, error) {
	md := BuildNarrative(forecasts)
	if md == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render narrative: %w", err)
	}
	return template.HTML(buf.String()), nil
}
