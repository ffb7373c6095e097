// Package greeter exposes the greeting endpoint and the probe endpoints the
// load balancer and orchestrator health-check against.
package greeter

import (
	"net/http"
)

// Handler answers every GET / with the same fixed payload. It holds no
// mutable state, so concurrent requests need no synchronization and the
// process can be replaced by the orchestrator at any time.
type Handler struct {
	greeting []byte
}

func New(greeting string) *Handler {
	return &Handler{greeting: []byte(greeting)}
}

// Register wires the routes onto the mux. The exact-root pattern ("GET /{$}")
// keeps every other path and method on the mux fallback.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /healthz", handleProbe)
	mux.HandleFunc("GET /readyz", handleProbe)
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(h.greeting)
}

// handleProbe is intentionally dependency-free: it reports only that the
// process is alive and accepting connections.
func handleProbe(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
