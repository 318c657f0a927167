package dashboard

import (
	"fmt"
	"strings"

	"aquacast/internal/demand"
	"aquacast/internal/models"
)

// BuildNarrative produces a short markdown summary of the forecast
// window: the peak day, the tier mix and any wet-weather suppression.
// It is a pure function of the forecast array, so the same data always
// yields the same paragraph.
func BuildNarrative(forecasts []models.DailyForecast) string {
	if len(forecasts) == 0 {
		return ""
	}

	peak := forecasts[0]
	tierCounts := map[demand.Level]int{}
	wetDays := 0
	for _, f := range forecasts {
		if f.Demand > peak.Demand {
			peak = f
		}
		tierCounts[demand.Classify(f.Demand).Level]++
		if f.Factors.Precipitation == "yes" {
			wetDays++
		}
	}

	peakLevel := demand.Classify(peak.Demand).Level

	var b strings.Builder
	fmt.Fprintf(&b, "Peak demand of **%.2f MGD** is expected on %s, %s %d (%s tier).",
		peak.Demand, titleDay(peak.DayName), peak.Month, peak.DayNumber, peakLevel)

	parts := []string{}
	for _, level := range []demand.Level{demand.LevelHigh, demand.LevelModerate, demand.LevelLow} {
		if n := tierCounts[level]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(string(level))))
		}
	}
	fmt.Fprintf(&b, " Across the %d-day window: %s.", len(forecasts), strings.Join(parts, ", "))

	if wetDays > 0 {
		fmt.Fprintf(&b, " %d day(s) carry measurable precipitation, which suppresses outdoor use.", wetDays)
	}

	return b.String()
}

// titleDay renders an all-caps day name like "SAT" as "Sat"; "TODAY"
// becomes "Today".
func titleDay(name string) string {
	if name == "" {
		return name
	}
	lower := strings.ToLower(name)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
