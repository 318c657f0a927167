package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"aquacast/internal/models"
)

// RenderInteractiveOverview builds a standalone ECharts page with the
// 10-day demand line and its confidence bounds. The dashboard embeds it
// in an iframe, keeping the main page free of injected script.
func RenderInteractiveOverview(forecasts []models.DailyForecast) (string, error) {
	if len(forecasts) == 0 {
		return "", fmt.Errorf("no forecasts to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "100%",
			Height: "380px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "10-Day Water Demand Forecast",
			Subtitle: "Predicted demand with 80% confidence band (MGD)",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "MGD",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	xAxis := make([]string, len(forecasts))
	demand := make([]opts.LineData, len(forecasts))
	upper := make([]opts.LineData, len(forecasts))
	lower := make([]opts.LineData, len(forecasts))

	for i, f := range forecasts {
		xAxis[i] = fmt.Sprintf("%s %d", f.Month, f.DayNumber)
		demand[i] = opts.LineData{Value: f.Demand}
		upper[i] = opts.LineData{Value: f.UpperBound}
		lower[i] = opts.LineData{Value: f.LowerBound}
	}

	line.SetXAxis(xAxis).
		AddSeries("Predicted demand", demand).
		AddSeries("Upper bound", upper).
		AddSeries("Lower bound", lower).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
