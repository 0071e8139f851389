package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "water_api"

// Metrics holds the Prometheus counters, histograms, and gauges for the API.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: route, code
	HTTPDuration *prometheus.HistogramVec // labels: route

	// Chatbot metrics.
	ChatbotQueries  *prometheus.CounterVec   // labels: outcome={found,not_found,error}
	LexiconLookups  *prometheus.CounterVec   // labels: backend, outcome={success,empty,error}
	LexiconDuration *prometheus.HistogramVec // labels: backend

	DatasetRecords prometheus.Gauge
}

// NewMetrics creates and registers all API metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.ChatbotQueries,
		m.LexiconLookups,
		m.LexiconDuration,
		m.DatasetRecords,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),
		ChatbotQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chatbot_queries_total",
			Help:      "Chatbot queries by outcome.",
		}, []string{"outcome"}),
		LexiconLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lexicon_lookups_total",
			Help:      "Synonym dictionary lookups by backend and outcome.",
		}, []string{"backend", "outcome"}),
		LexiconDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lexicon_lookup_duration_seconds",
			Help:      "Synonym dictionary lookup duration in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"backend"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of measurements loaded at startup.",
		}),
	}
}
