package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/metrics"
)

// capturingHandler keeps the last log record.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(string) slog.Handler { return h }

func (h *capturingHandler) attrs() map[string]slog.Value {
	out := make(map[string]slog.Value)
	h.record.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value
		return true
	})
	return out
}

func TestLoggingMiddleware(t *testing.T) {
	var logs capturingHandler
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /speakers/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("POST /registrations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	handler := LoggingMiddleware(slog.New(&logs), m, mux)

	tests := []struct {
		name      string
		method    string
		path      string
		wantRoute string
		wantCode  int
		wantLevel slog.Level
		wantClass string
		wantBytes int64
	}{
		{"matched route", http.MethodGet, "/speakers/sp-1", "GET /speakers/{id}", http.StatusOK, slog.LevelInfo, "2xx", 5},
		{"server error", http.MethodPost, "/registrations", "POST /registrations", http.StatusServiceUnavailable, slog.LevelWarn, "5xx", 0},
		{"no route", http.MethodGet, "/missing", unmatchedRoute, http.StatusNotFound, slog.LevelInfo, "4xx", 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantCode, rr.Code)
			require.Equal(t, "request", logs.record.Message)
			assert.Equal(t, tt.wantLevel, logs.record.Level)

			attrs := logs.attrs()
			assert.Equal(t, tt.path, attrs["path"].String())
			assert.Equal(t, tt.wantRoute, attrs["route"].String())
			assert.Equal(t, int64(tt.wantCode), attrs["status"].Int64())
			assert.Equal(t, tt.wantBytes, attrs["bytes"].Int64())
			assert.Equal(t, rr.Header().Get(RequestIDHeader), attrs["request_id"].String())
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(tt.method, tt.wantRoute, tt.wantClass)))
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var logs capturingHandler
	handler := LoggingMiddleware(slog.New(&logs), nil, http.NotFoundHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "generated id should be a uuid")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "edge-42")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "edge-42", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "edge-42", logs.attrs()["request_id"].String())
}
