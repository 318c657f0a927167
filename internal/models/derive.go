package models

import "time"

// Factor tag thresholds. TempMax above/below these marks a day as a
// high/low temperature driver; precipitation above the trace threshold
// counts as a wet day.
const (
	highTempThreshold = 75.0
	lowTempThreshold  = 60.0
	tracePrecip       = 0.05
)

// DeriveCondition maps daily weather inputs to a display condition and
// glyph. Precipitation wins over temperature.
func DeriveCondition(tempMax, precipitation float64) (condition, icon string) {
	switch {
	case precipitation > 0.5:
		return "Rainy", "🌧️"
	case precipitation > 0.1:
		return "Showers", "🌦️"
	case tempMax > 85:
		return "Hot", "☀️"
	case tempMax > 75:
		return "Warm", "☀️"
	case tempMax > 65:
		return "Mild", "⛅"
	case tempMax > 50:
		return "Cool", "☁️"
	default:
		return "Cold", "❄️"
	}
}

// DeriveFactors computes the categorical demand drivers for a day.
func DeriveFactors(date time.Time, tempMax, precipitation float64) Factors {
	f := Factors{
		Temperature:   "moderate",
		Precipitation: "no",
		DayType:       "weekday",
	}
	if tempMax > highTempThreshold {
		f.Temperature = "high"
	} else if tempMax < lowTempThreshold {
		f.Temperature = "low"
	}
	if precipitation > tracePrecip {
		f.Precipitation = "yes"
	}
	if IsWeekend(date) {
		f.DayType = "weekend"
	}
	return f
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
