package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the farm service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	WeatherRequests *prometheus.CounterVec // labels: outcome={success,error}
	UploadsStored   prometheus.Counter
	ReportsExported prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics()
	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.WeatherRequests,
		m.UploadsStored,
		m.ReportsExported,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "farm",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "weather_requests_total",
			Help:      "Forecast API calls by outcome.",
		}, []string{"outcome"}),
		UploadsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "uploads_stored_total",
			Help:      "Report images written to upload storage.",
		}),
		ReportsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "reports_exported_total",
			Help:      "CSV exports served.",
		}),
	}
}
