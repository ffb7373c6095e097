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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/net/netutil"
)

type Config struct {
	BindAddr    string `yaml:"bindAddr"`
	BindPort    int    `yaml:"bindPort"`
	MaxConns    int    `yaml:"maxConns"`    // MaxConns caps concurrent connections. 0 means no cap.
	LogRequests bool   `yaml:"logRequests"` // LogRequests enables per-exchange debug logging.
}

type HttpServer interface {
	Start(ctx context.Context) error
}

type httpServer struct {
	name   string
	config *Config
	router http.Handler
}

var _ HttpServer = &httpServer{}

func New(name string, config *Config, router http.Handler) HttpServer {
	if config.LogRequests {
		router = LoggingMiddleware(router)
	}
	return &httpServer{
		name:   name,
		config: config,
		router: router,
	}
}

// Start binds the listening socket exactly once and serves until ctx is
// cancelled. A bind failure is returned immediately; there is no retry.
// After cancellation the server is drained and Start returns nil.
func (hs *httpServer) Start(ctx context.Context) error {
	logger := logr.FromContextAsSlogLogger(ctx)
	if logger == nil {
		return errors.New("no logger provided in context. Use logr.NewContextWithSlogLogger()")
	}
	logger = logger.With("name", hs.name)

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", hs.config.BindAddr, hs.config.BindPort))
	if err != nil {
		return fmt.Errorf("httpServer %s: Error on net.Listen(): %w", hs.name, err)
	}
	if hs.config.MaxConns > 0 {
		listener = netutil.LimitListener(listener, hs.config.MaxConns)
	}

	logger.Info("Listening", "bindAddr", hs.config.BindAddr, "port", hs.config.BindPort, "maxConns", hs.config.MaxConns, "name", hs.name)

	srv := &http.Server{
		Handler:      hs.router,
		BaseContext:  func(net.Listener) context.Context { return ctx },
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// Error from closing listeners, or context timeout
			logger.Error("error shutting down the HTTP server", slog.Any("error", err))
		}
		close(idleConsClosed)
	}()

	err = srv.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer %s: Error on srv.Serve(): %w", hs.name, err)
	}
	<-idleConsClosed
	logger.Info("httpServer shutdown", "name", hs.name)
	return nil
}
