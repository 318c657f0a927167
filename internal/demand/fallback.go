package demand

import (
	"math"
	"strings"
	"time"

	"aquacast/internal/models"
)

// historicalAverage is the fixed baseline daily production in MGD that
// vsAverage deviations are computed against.
const historicalAverage = 13.9

// fallbackBoundWidth is the half-width of the confidence band emitted by
// the fallback generator. It is a fixed display band, a placeholder for
// the upstream model's residual-derived interval, not a statistical
// estimate.
const fallbackBoundWidth = 1.2

// Demand response coefficients for the synthetic forecast: demand grows
// with heat above 65°F, drops on wet days and rises slightly on
// weekends.
const (
	fallbackBaseDemand    = 12.0
	tempCoefficient       = 0.15
	tempReference         = 65.0
	wetDayMultiplier      = 0.85
	weekendMultiplier     = 1.05
	wetDayPrecipThreshold = 0.1
)

// fallbackWeather is the fixed 10-day weather cycle used when the live
// forecast is unavailable. Entries are consumed in source order, one per
// day offset.
type weatherPattern struct {
	tempMax   float64
	tempMin   float64
	precip    float64
	condition string
	icon      string
}

var fallbackWeather = [10]weatherPattern{
	{72, 55, 0.0, "Mild", "⛅"},
	{78, 60, 0.0, "Warm", "☀️"},
	{83, 64, 0.0, "Warm", "☀️"},
	{79, 63, 0.3, "Showers", "🌦️"},
	{74, 58, 0.0, "Mild", "⛅"},
	{81, 62, 0.0, "Warm", "☀️"},
	{87, 66, 0.0, "Hot", "☀️"},
	{84, 65, 0.6, "Rainy", "🌧️"},
	{76, 59, 0.1, "Warm", "☀️"},
	{70, 54, 0.0, "Mild", "⛅"},
}

// GenerateFallback builds a deterministic synthetic 10-day forecast for
// the date of now. Two calls with the same instant produce identical
// output, so the substitution for a failed fetch is fully testable.
func GenerateFallback(now time.Time) *models.ForecastResponse {
	forecasts := make([]models.DailyForecast, 0, len(fallbackWeather))

	for i, pattern := range fallbackWeather {
		date := now.AddDate(0, 0, i)
		d := round2(syntheticDemand(date, pattern))

		dayName := strings.ToUpper(date.Format("Mon"))
		if i == 0 {
			dayName = "TODAY"
		}

		forecasts = append(forecasts, models.DailyForecast{
			Date:       date.Format("2006-01-02"),
			DayName:    dayName,
			DayNumber:  date.Day(),
			Month:      date.Format("Jan"),
			IsToday:    i == 0,
			Demand:     d,
			LowerBound: round2(d - fallbackBoundWidth),
			UpperBound: round2(d + fallbackBoundWidth),
			Weather: models.Weather{
				Date:          date.Format("2006-01-02"),
				Icon:          pattern.icon,
				Condition:     pattern.condition,
				TempMean:      (pattern.tempMax + pattern.tempMin) / 2,
				TempMax:       pattern.tempMax,
				TempMin:       pattern.tempMin,
				Precipitation: pattern.precip,
			},
			VsAverage: int(math.Round((d/historicalAverage - 1) * 100)),
			Factors:   models.DeriveFactors(date, pattern.tempMax, pattern.precip),
		})
	}

	return &models.ForecastResponse{
		Forecasts:   forecasts,
		LastUpdated: now.Format(time.RFC3339),
		ModelAccuracy: models.ModelAccuracy{
			ModelType:          "Simulated",
			ConfidenceInterval: "80%",
		},
	}
}

// syntheticDemand applies the fallback demand response to one day's
// weather pattern.
func syntheticDemand(date time.Time, pattern weatherPattern) float64 {
	d := fallbackBaseDemand + (pattern.tempMax-tempReference)*tempCoefficient
	if pattern.precip > wetDayPrecipThreshold {
		d *= wetDayMultiplier
	}
	if models.IsWeekend(date) {
		d *= weekendMultiplier
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
