package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/water-quality-api/internal/domain"
	"github.com/couchcryptid/water-quality-api/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WaterService is the read-only query surface the routes depend on.
type WaterService interface {
	All() ([]domain.Measurement, error)
	ByID(id string) (domain.Measurement, bool)
	ByLabel(label string) []domain.Measurement
	Chat(ctx context.Context, query string) (domain.ChatResponse, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the water-quality routes plus health, readiness, and metrics.
type Server struct {
	httpServer *http.Server
	svc        WaterService
	metrics    *observability.Metrics
	logger     *slog.Logger
	clock      clockwork.Clock
}

// Option customizes a Server.
type Option func(*Server)

// WithClock replaces the clock used to time requests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) { s.clock = c }
}

// NewServer creates an HTTP server with the API routes and /healthz, /readyz,
// and /metrics.
func NewServer(addr string, svc WaterService, metrics *observability.Metrics, logger *slog.Logger, opts ...Option) *Server {
	mux := http.NewServeMux()

	s := &Server{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /water", s.handleList)
	mux.HandleFunc("GET /water/{id}", s.handleByID)
	mux.HandleFunc("GET /water/by_is_safe/{$}", s.handleByLabel)
	mux.HandleFunc("GET /chatbot", s.handleChatbot)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(svc))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.instrument(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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
