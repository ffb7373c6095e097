/*
Copyright 2025 Kubotal

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpsrv

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-logr/logr"
)

// NotFoundHandler returns an HTTP handler that logs request information
// and responds with a 404 Not Found error. Registered as the mux fallback,
// it makes the behavior of unmatched paths and methods explicit and stable.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Get logger from context
		logger := logr.FromContextAsSlogLogger(r.Context())
		if logger != nil {
			logger.Warn("404 Not Found",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("raw_query", r.URL.RawQuery),
				slog.String("remote_addr", r.RemoteAddr),
			)
		}
		http.Error(w, fmt.Sprintf("The requested URL %s %s was not found on this server.", r.Method, r.URL.Path), http.StatusNotFound)
	}
}
