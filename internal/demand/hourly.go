package demand

import (
	"fmt"

	"aquacast/internal/models"
)

// hourlyWeights is the fraction of a day's total demand drawn in each
// hour, hand-tuned to the typical residential diurnal profile: low
// overnight, a morning peak around 7, a midday plateau, an evening peak
// around 18 and a decline toward midnight. The 24 entries sum to 1.000;
// Synthesize relies on that so the hourly rates average back to the
// daily total.
var hourlyWeights = [24]float64{
	0.020, 0.016, 0.015, 0.014, 0.016, 0.023, // overnight low
	0.045, 0.068, 0.063, 0.053, // morning peak
	0.049, 0.047, 0.046, 0.044, 0.045, 0.047, // midday plateau
	0.052, 0.060, 0.069, 0.058, // evening peak
	0.050, 0.042, 0.033, 0.025, // decline
}

// labelEvery controls x-axis label sparsity: hours 0, 6, 12 and 18.
const labelEvery = 6

// Synthesize expands a single daily demand total into a 24-point
// intraday profile. Each value is an hourly rate, daily*weight*24, so
// the mean of the 24 values equals the daily total. Negative input
// produces a negative curve, preserved as documented edge behavior.
func Synthesize(dailyDemand float64) []models.HourlyPoint {
	points := make([]models.HourlyPoint, 24)
	for hour := 0; hour < 24; hour++ {
		points[hour] = models.HourlyPoint{
			Hour:  hour,
			Value: dailyDemand * hourlyWeights[hour] * 24,
		}
		if hour%labelEvery == 0 {
			points[hour].Label = hourLabel(hour)
		}
	}
	return points
}

// hourLabel formats an hour as a 12-hour clock label, hour 0 as "12 AM".
func hourLabel(hour int) string {
	suffix := "AM"
	h := hour
	if hour >= 12 {
		suffix = "PM"
		h = hour - 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
