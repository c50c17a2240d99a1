// Package metrics exposes request-pipeline counters for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ForcedLogouts   prometheus.Counter
}

// New creates the client metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "API call latency, network round trip included.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),

		ForcedLogouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "client",
			Name:      "forced_logouts_total",
			Help:      "Sessions dropped because the backend answered 401.",
		}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.ForcedLogouts)
	return m
}

// Observe records one finished call.
func (m *Metrics) Observe(endpoint, outcome string, d time.Duration) {
	m.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// NewServer serves g on /metrics.
func NewServer(addr string, g prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
