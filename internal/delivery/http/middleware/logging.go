package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"agtechsummit/internal/metrics"
)

// RequestIDHeader carries the request ID back to the client. An incoming value is reused.
const RequestIDHeader = "X-Request-ID"

const unmatchedRoute = "unmatched"

// statusRecorder captures the status code and body size written by the next handler.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func (w *statusRecorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// LoggingMiddleware logs one line per request and records it in m, which may be nil.
// Server errors log at warn. Bodies are never logged.
func LoggingMiddleware(logger *slog.Logger, m *metrics.HTTPMetrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		// ServeMux stores the matched pattern on the request it was handed.
		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		m.Observe(r.Method, route, rec.status, elapsed)

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", rec.status,
			"bytes", rec.written,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}
