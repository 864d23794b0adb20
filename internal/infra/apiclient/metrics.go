package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts calls to the salon API. Register it once per process.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salon_api_requests_total",
				Help: "Calls made to the salon API by resource, method and outcome.",
			},
			[]string{"resource", "method", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salon_api_request_duration_seconds",
				Help:    "Latency of calls made to the salon API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource", "method"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.requests); err != nil {
		return err
	}
	return reg.Register(m.duration)
}

func (m *Metrics) observe(resource, method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(resource, method, outcome).Inc()
	m.duration.WithLabelValues(resource, method).Observe(seconds)
}
