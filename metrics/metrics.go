package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greeter_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"path", "status"})

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "greeter_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

// RecordRequest counts one served request and observes its latency.
func RecordRequest(path string, status string, seconds float64) {
	requestTotal.WithLabelValues(path, status).Inc()
	requestLatency.WithLabelValues(path).Observe(seconds)
}

// Handler returns the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
