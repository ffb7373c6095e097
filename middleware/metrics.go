package middleware

import (
	"net/http"
	"strconv"
	"time"

	"greeting-service/metrics"
)

// knownPaths keeps the metric label set bounded; anything else is folded
// into "other" so a URL scan cannot blow up cardinality.
var knownPaths = map[string]struct{}{
	"/":        {},
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics records a request counter and latency observation per exchange.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if _, ok := knownPaths[path]; !ok {
			path = "other"
		}
		metrics.RecordRequest(path, strconv.Itoa(rec.status), time.Since(start).Seconds())
	})
}
