package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters and histograms for the client.
type Metrics struct {
	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: method={suggest,resolve}, outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}

	// Weather metrics.
	WeatherRequests *prometheus.CounterVec // labels: outcome={success,error}

	// APIDuration observes OpenWeather round trips. labels: endpoint={geocode,weather}
	APIDuration *prometheus.HistogramVec

	// StaleDiscards counts completions dropped because a newer request superseded them.
	// labels: flow={suggest,weather}
	StaleDiscards *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates all client metrics on a dedicated registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := newMetrics()
	reg.MustRegister(
		m.GeocodeRequests,
		m.GeocodeCache,
		m.WeatherRequests,
		m.APIDuration,
		m.StaleDiscards,
	)
	m.registry = reg

	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_explorer",
			Name:      "geocode_requests_total",
			Help:      "Geocoding lookups by method and outcome.",
		}, []string{"method", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_explorer",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_explorer",
			Name:      "weather_requests_total",
			Help:      "Current-conditions requests by outcome.",
		}, []string{"outcome"}),
		APIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_explorer",
			Name:      "api_duration_seconds",
			Help:      "OpenWeather request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		StaleDiscards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_explorer",
			Name:      "stale_discards_total",
			Help:      "Completions ignored because a newer request superseded them.",
		}, []string{"flow"}),
	}
}
