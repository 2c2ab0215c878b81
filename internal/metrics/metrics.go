package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hostelmanager/hostel-access-service/internal/core/ports"
)

// Metrics tracks remote-call outcomes and fallback activations.
type Metrics struct {
	requests  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hostel_remote_requests_total",
			Help: "Remote API calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hostel_fallback_total",
			Help: "Operations served from the fallback dataset.",
		}, []string{"operation"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hostel_remote_request_seconds",
			Help:    "Remote API call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) ObserveRequest(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case ports.IsServerError(err):
		outcome = "server_error"
	default:
		outcome = "transport_error"
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordFallback(operation string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(operation).Inc()
}
