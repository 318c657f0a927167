package models

// ForecastResponse is the payload returned by the model-serving API at
// GET /api/forecast, and the shape this service re-serves from its snapshot.
type ForecastResponse struct {
	Forecasts     []DailyForecast `json:"forecasts"`
	LastUpdated   string          `json:"last_updated"`
	ModelAccuracy ModelAccuracy   `json:"model_accuracy"`
}

// ModelAccuracy describes the upstream model, or the fallback generator when
// the upstream is unreachable.
type ModelAccuracy struct {
	ModelType          string   `json:"model_type"`
	RSquared           *float64 `json:"r_squared,omitempty"`
	MAPEPercent        *float64 `json:"mape_percent,omitempty"`
	ConfidenceInterval string   `json:"confidence_interval,omitempty"`
}

// DailyForecast is one day of the 10-day demand forecast. All fields are
// value semantics; derived values are recomputed, never mutated in place.
type DailyForecast struct {
	Date       string  `json:"date"` // ISO calendar date, ascending, unique
	DayName    string  `json:"day_name"`
	DayNumber  int     `json:"day_number"`
	Month      string  `json:"month"`
	IsToday    bool    `json:"is_today"`
	Demand     float64 `json:"demand"`      // MGD
	LowerBound float64 `json:"lower_bound"` // 80% confidence band
	UpperBound float64 `json:"upper_bound"`
	Weather    Weather `json:"weather"`
	VsAverage  int     `json:"vs_average"` // percent vs historical baseline
	Factors    Factors `json:"factors"`
}

// Weather holds the daily weather inputs behind a demand prediction.
type Weather struct {
	Date          string  `json:"date"`
	Icon          string  `json:"icon"`
	Condition     string  `json:"condition"`
	TempMean      float64 `json:"temp_mean"`
	TempMax       float64 `json:"temp_max"` // °F
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"` // inches
}

// Factors are the categorical demand drivers shown on each day card.
type Factors struct {
	Temperature   string `json:"temperature"`   // low / moderate / high
	Precipitation string `json:"precipitation"` // yes / no
	DayType       string `json:"day_type"`      // weekday / weekend
}

// HourlyPoint is one hour of the synthesized intraday demand curve.
// Label is empty except every sixth hour.
type HourlyPoint struct {
	Hour  int
	Value float64 // MGD-equivalent hourly rate
	Label string
}

// Today returns the forecast flagged as today, or false when the set is
// empty or carries no such flag. An empty result means the detail view
// renders its empty state rather than failing.
func (r *ForecastResponse) Today() (DailyForecast, bool) {
	for _, f := range r.Forecasts {
		if f.IsToday {
			return f, true
		}
	}
	return DailyForecast{}, false
}

// ByDate returns the forecast for the given ISO date.
func (r *ForecastResponse) ByDate(date string) (DailyForecast, bool) {
	for _, f := range r.Forecasts {
		if f.Date == date {
			return f, true
		}
	}
	return DailyForecast{}, false
}
