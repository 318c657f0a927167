package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the service-level counters and gauges exposed at
// /metrics.
type Metrics struct {
	FetchAttempts       prometheus.Counter
	FetchFailures       prometheus.Counter
	FallbackActivations prometheus.Counter
	DashboardRenders    prometheus.Counter
	SnapshotSaves       prometheus.Counter
	ForecastDays        prometheus.Gauge
	UsingFallback       prometheus.Gauge
}

// New registers the service metrics with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquacast_fetch_attempts_total",
			Help: "Upstream forecast fetch attempts.",
		}),
		FetchFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquacast_fetch_failures_total",
			Help: "Upstream forecast fetches that failed and fell back.",
		}),
		FallbackActivations: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquacast_fallback_activations_total",
			Help: "Times the deterministic fallback forecast was substituted.",
		}),
		DashboardRenders: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquacast_dashboard_renders_total",
			Help: "Dashboard pages rendered.",
		}),
		SnapshotSaves: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquacast_snapshot_saves_total",
			Help: "Dashboard snapshots archived to storage.",
		}),
		ForecastDays: factory.NewGauge(prometheus.GaugeOpts{
			Name: "aquacast_forecast_days",
			Help: "Days in the current forecast snapshot.",
		}),
		UsingFallback: factory.NewGauge(prometheus.GaugeOpts{
			Name: "aquacast_using_fallback",
			Help: "1 when the current snapshot came from the fallback generator.",
		}),
	}
}
