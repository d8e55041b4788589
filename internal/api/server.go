// Package api exposes the delivery boundary: a single read endpoint that
// triggers one full aggregation run and returns the deduplicated records as
// JSON. Filtering, calendars and everything else presentational belong to
// the browser client downstream.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/kokomoarts/kokomo-events/internal/event"
	"github.com/kokomoarts/kokomo-events/internal/metrics"
)

// EventLister is the pipeline as the boundary sees it: one call, one
// deduplicated record list. Individual source failures are already absorbed
// upstream; only a pipeline-level fault escapes, as a panic.
type EventLister interface {
	Events(ctx context.Context) []event.Event
}

// Server serves the aggregation pipeline over HTTP.
type Server struct {
	router  chi.Router
	lister  EventLister
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// New creates the HTTP server around the pipeline. The browser UI is served
// from another origin, so CORS is wide open for the read-only API.
func New(lister EventLister, log zerolog.Logger, m *metrics.Metrics) *Server {
	s := &Server{
		lister:  lister,
		log:     log,
		metrics: m,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(s.recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/events", s.handleEvents)
	r.Get("/healthz", s.handleHealth)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	}

	s.router = r
	return s
}

// Handler returns the root handler, for mounting and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleEvents runs one aggregation and writes the deduplicated list. The
// body is always a JSON array, even when no source produced anything.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events := s.lister.Events(r.Context())
	if events == nil {
		events = []event.Event{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(events); err != nil {
		// Headers are gone; all we can do is log.
		s.log.Error().Err(err).Msg("encoding events response")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write([]byte(`{"status":"ok"}`))
}

// recoverer converts a pipeline-level panic into an explicit error response,
// distinct from the empty list that partial or total source unavailability
// produces.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("pipeline failure")
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"failed to fetch events"}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with method, path and duration.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(started)).
				Msg("request")
		})
	}
}
