package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"

	"greeting-service/config"
	"greeting-service/greeter"
	"greeting-service/metrics"
	"greeting-service/middleware"
	"greeting-service/pkg/httpsrv"
)

func main() {
	cfg, err := config.Load(os.Getenv("GREETER_CONFIG"))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// create a slog.Logger
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Shorten timestamp format
			if a.Key == slog.TimeKey {
				// Format: "15:04:05.000" (HH:MM:SS.mmm)
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05.000"))
				}
			}
			return a
		},
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	logger := slog.New(handler)
	logger.Info("Starting Server", "port", cfg.Port)

	router := http.NewServeMux()
	greeter.New(cfg.Greeting).Register(router)       // the greeting and probe endpoints
	router.Handle("GET /metrics", metrics.Handler()) // prometheus exposition
	router.Handle("/", httpsrv.NotFoundHandler())    // every other path and method

	var root http.Handler = middleware.Metrics(router)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		root = limiter.Middleware(root, "/healthz", "/readyz", "/metrics")
	}

	httpConfig := &httpsrv.Config{
		BindAddr:    cfg.BindAddr,
		BindPort:    cfg.Port,
		MaxConns:    cfg.MaxConns,
		LogRequests: cfg.LogRequests,
	}
	server := httpsrv.New("greeterSrv", httpConfig, root)

	// The orchestrator stops a task with SIGTERM; drain instead of dropping
	// in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logr.NewContextWithSlogLogger(ctx, logger)

	err = server.Start(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error on server launch: %v\n", err)
		os.Exit(1)
	}
}
