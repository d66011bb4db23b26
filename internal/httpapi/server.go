// Package httpapi exposes the graph store and matching engine as a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/internal/metrics"
	"github.com/katalvlaran/bimatch/internal/ratelimit"
)

const defaultMaxBodyBytes = 1 << 20

// Server serves one graph.
type Server struct {
	graph    *core.Graph
	logger   *zap.Logger
	metrics  *metrics.Collector
	limiter  *ratelimit.Limiter
	validate *validator.Validate

	corsOrigins  []string
	corsMaxAge   int
	maxBodyBytes int64
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records operations in c and mounts GET /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithRateLimiter applies l to every mutating route. The caller owns l and must Stop it.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	return func(s *Server) { s.limiter = l }
}

// WithCORS enables CORS for the given origins. No origins leaves CORS off.
func WithCORS(origins []string, maxAge int) Option {
	return func(s *Server) {
		s.corsOrigins = origins
		s.corsMaxAge = maxAge
	}
}

// WithMaxBodyBytes caps request bodies; n <= 0 keeps the 1 MiB default.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// New creates a Server for g. A nil logger is replaced by zap.NewNop().
func New(g *core.Graph, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		graph:        g,
		logger:       logger,
		validate:     validator.New(),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(s.logger))
	if len(s.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         s.corsMaxAge,
		}))
	}

	router.Get("/healthz", s.health)
	if s.metrics != nil {
		router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.getGraph)

		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(s.rateLimit(s.limiter))
			}
			r.Delete("/graph", s.clearGraph)
			r.Post("/nodes", s.addNode)
			r.Delete("/nodes/{id}", s.removeNode)
			r.Post("/edges", s.addEdge)
			r.Delete("/edges/{u}/{v}", s.removeEdge)
			r.Post("/matching", s.findMatching)
			r.Delete("/matching", s.resetMatching)
		})
	})

	return router
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, app *AppError) {
	fields := []zap.Field{
		zap.String("type", app.Type),
		zap.String("message", app.Message),
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimiddleware.GetReqID(r.Context())),
	}
	if app.Status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Warn("request rejected", fields...)
	}
	s.respondJSON(w, app.Status, errorBody{Error: app})
}

// record updates metrics after op; a no-op without a collector.
func (s *Server) record(op string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordOperation(op, err)
	if err == nil {
		s.metrics.ObserveGraph(s.graph.Stats())
	}
}
