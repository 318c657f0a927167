package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"aquacast/internal/models"
)

// baselineMGD is the historical average drawn as a reference line on
// the overview chart.
const baselineMGD = 13.9

// RenderOverviewPNG draws the 10-day demand outlook as a static PNG:
// the predicted demand line, the confidence band bounds and the
// historical baseline.
func RenderOverviewPNG(forecasts []models.DailyForecast, w io.Writer) error {
	if len(forecasts) < 2 {
		return fmt.Errorf("overview chart needs at least 2 forecasts, got %d", len(forecasts))
	}

	xs := make([]float64, len(forecasts))
	demand := make([]float64, len(forecasts))
	upper := make([]float64, len(forecasts))
	lower := make([]float64, len(forecasts))
	baseline := make([]float64, len(forecasts))
	ticks := make([]chart.Tick, len(forecasts))

	for i, f := range forecasts {
		xs[i] = float64(i)
		demand[i] = f.Demand
		upper[i] = f.UpperBound
		lower[i] = f.LowerBound
		baseline[i] = baselineMGD
		ticks[i] = chart.Tick{Value: float64(i), Label: fmt.Sprintf("%s %d", f.Month, f.DayNumber)}
	}

	bandColor := drawing.Color{R: 148, G: 163, B: 184, A: 255}

	graph := chart.Chart{
		Title: "10-Day Demand Outlook (MGD)",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.Color{R: 51, G: 65, B: 85, A: 255},
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.Color{R: 248, G: 250, B: 252, A: 255},
		},
		Width:  760,
		Height: 360,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{
				FontSize:  9,
				FontColor: drawing.Color{R: 100, G: 116, B: 139, A: 255},
			},
		},
		YAxis: chart.YAxis{
			Name: "MGD",
			NameStyle: chart.Style{
				FontSize:  11,
				FontColor: drawing.Color{R: 100, G: 116, B: 139, A: 255},
			},
			Style: chart.Style{
				FontSize:  10,
				FontColor: drawing.Color{R: 100, G: 116, B: 139, A: 255},
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Upper bound",
				XValues: xs,
				YValues: upper,
				Style: chart.Style{
					StrokeColor:     bandColor,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
			chart.ContinuousSeries{
				Name:    "Lower bound",
				XValues: xs,
				YValues: lower,
				Style: chart.Style{
					StrokeColor:     bandColor,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
			chart.ContinuousSeries{
				Name:    "Historical average",
				XValues: xs,
				YValues: baseline,
				Style: chart.Style{
					StrokeColor:     drawing.Color{R: 203, G: 213, B: 225, A: 255},
					StrokeWidth:     1,
					StrokeDashArray: []float64{2, 3},
				},
			},
			chart.ContinuousSeries{
				Name:    "Predicted demand",
				XValues: xs,
				YValues: demand,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 37, G: 99, B: 235, A: 255},
					StrokeWidth: 2.5,
				},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
