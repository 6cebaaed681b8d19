// Package server exposes the check operation over HTTP.
//
// Routes:
//
//	POST /v1/check   {"repository": "..."} -> {"report": "...", "result": {...}}
//	GET  /healthz    liveness probe
//	GET  /metrics    Prometheus exposition
//
// Failures answer {"error": "...", "code": "..."} with the status chosen by
// the error code: 400 for a bad locator, 502 when GitHub could not be read.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/licensescan/pkg/resolve"
)

const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	maxBodyBytes           = 1 << 20
)

// Checker runs one check. *pipeline.Runner satisfies it.
type Checker interface {
	Resolve(ctx context.Context, locator string) (*resolve.Result, error)
}

// Options configures a [Server].
type Options struct {
	Addr            string              // Listen address (default: :8080)
	Logger          *log.Logger         // Defaults to log.Default()
	Gatherer        prometheus.Gatherer // Source for /metrics (default: prometheus.DefaultGatherer)
	ShutdownTimeout time.Duration       // Grace period on context cancel (default: 10s)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	return opts
}

// Server serves the HTTP API.
type Server struct {
	checker Checker
	opts    Options
	router  chi.Router
}

// New creates a Server over checker.
func New(checker Checker, opts Options) *Server {
	s := &Server{checker: checker, opts: opts.WithDefaults()}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.opts.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
