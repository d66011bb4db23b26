package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/internal/ratelimit"
)

// requestLogger logs one line per request after the handler returns.
func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// rateLimit rejects requests from clients that exceeded limiter with 429.
func (s *Server) rateLimit(limiter *ratelimit.Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(ratelimit.ClientIP(r)) {
				w.Header().Set("Retry-After", "1")
				s.respondError(w, r, &AppError{
					Status:  http.StatusTooManyRequests,
					Type:    TypeRateLimited,
					Message: "too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
