package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/dataset"
	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/pollen-stats/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SeasonSource loads season datasets by key.
type SeasonSource interface {
	Load(key string) (*domain.Series, error)
	List() ([]string, error)
}

// Server exposes health, readiness, metrics, and season summary endpoints.
type Server struct {
	httpServer *http.Server
	seasons    SeasonSource
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /seasons, and /seasons/{key} routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, seasons SeasonSource, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		seasons: seasons,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /seasons", s.handleList)
	mux.HandleFunc("GET /seasons/{key}", s.handleSeason)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	keys, err := s.seasons.List()
	if err != nil {
		s.logger.Error("list seasons failed", "error", err)
		s.writeJSON(w, "seasons", http.StatusInternalServerError, errorBody(err))
		return
	}
	s.writeJSON(w, "seasons", http.StatusOK, map[string][]string{"seasons": keys})
}

func (s *Server) handleSeason(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	series, err := s.seasons.Load(key)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("load season failed", "season", key, "error", err)
		}
		s.writeJSON(w, "season", status, errorBody(err))
		return
	}
	s.writeJSON(w, "season", http.StatusOK, domain.Summarize(key, series))
}

// statusFor maps load failures to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, dataset.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedRecord), errors.Is(err, domain.ErrInvalidDate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func (s *Server) writeJSON(w http.ResponseWriter, route string, status int, v any) {
	s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	sharedobs.WriteJSON(w, status, v)
}
