package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/adapters/auth"
	"agtechsummit/internal/adapters/payment"
	"agtechsummit/internal/delivery/http/controllers"
	"agtechsummit/internal/delivery/http/middleware"
	"agtechsummit/internal/media"
	"agtechsummit/internal/repository/memory"
	"agtechsummit/internal/services"
	"agtechsummit/internal/store"
)

type offlineGeo struct{}

func (offlineGeo) LookupCountry(ctx context.Context) (string, error) {
	return "", errors.New("offline")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(context.Background(), memory.New(), store.WithLogger(logger))
	repos := st.Repositories()

	jwt := auth.NewJWT("router-test-secret")
	adminAuth, err := services.NewAdminAuthService("admin@agtechsummit.in", "admin123", auth.NewBcryptHasher(4), jwt, time.Hour)
	require.NoError(t, err)
	checkout := services.NewCheckoutService(repos.PassTiers, repos.Registrations, offlineGeo{}, payment.NewSimulated(0, "s"), nil, logger, services.CheckoutConfig{})
	ingestor := media.NewIngestor(media.Options{})

	reg := prometheus.NewRegistry()
	mux := NewRouter(Controllers{
		Content:     controllers.NewContentController(logger, services.NewContentService(repos, time.Second)),
		Submissions: controllers.NewSubmissionController(logger, services.NewSubmissionService(repos, nil, logger, time.Second)),
		Checkout:    controllers.NewCheckoutController(logger, checkout),
		Review:      controllers.NewReviewController(logger, services.NewReviewService(repos, time.Second)),
		Auth:        controllers.NewAuthController(logger, adminAuth),
		Uploads:     controllers.NewUploadController(logger, ingestor, ingestor.Options().MaxSizeBytes),
	}, middleware.RequireAdmin(jwt, logger), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	status, body := do(t, srv, http.MethodPost, "/admin/login", "", `{"email":"admin@agtechsummit.in","password":"admin123"}`)
	require.Equal(t, http.StatusOK, status)
	return body["data"].(map[string]any)["token"].(string)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/admin/stats", "/admin/registrations", "/admin/enquiries"} {
		status, body := do(t, srv, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.Equal(t, "unauthorized", body["error"].(map[string]any)["code"])

		status, _ = do(t, srv, http.MethodGet, path, "forged", "")
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}
}

func TestRouter_SpeakerLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	status, body := do(t, srv, http.MethodPost, "/admin/speakers", token,
		`{"name":"Dr. Anita Rao","type":"keynote","company":"ICAR"}`)
	require.Equal(t, http.StatusCreated, status)
	id := body["data"].(map[string]any)["id"].(string)

	status, body = do(t, srv, http.MethodGet, "/speakers?type=keynote", "", "")
	require.Equal(t, http.StatusOK, status)
	names := []string{}
	for _, s := range body["data"].([]any) {
		names = append(names, s.(map[string]any)["name"].(string))
	}
	assert.Contains(t, names, "Dr. Anita Rao")

	status, _ = do(t, srv, http.MethodDelete, "/admin/speakers/"+id, token, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = do(t, srv, http.MethodGet, "/speakers/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_CheckoutShowsInDashboard(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	status, body := do(t, srv, http.MethodPost, "/registrations", "",
		`{"passId":"regular","currency":"USD","fullName":"Anil","email":"anil@farm.in"}`)
	require.Equal(t, http.StatusCreated, status, body)

	status, body = do(t, srv, http.MethodGet, "/admin/stats", token, "")
	require.Equal(t, http.StatusOK, status)
	stats := body["data"].(map[string]any)
	assert.EqualValues(t, 1, stats["registrations"])
	assert.EqualValues(t, 209, stats["revenueByCurrency"].(map[string]any)["USD"])

	status, body = do(t, srv, http.MethodGet, "/admin/registrations?page=1&page_size=10", token, "")
	require.Equal(t, http.StatusOK, status)
	page := body["data"].(map[string]any)
	assert.Len(t, page["items"], 1)
}

func TestRouter_PublicFormsAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	status, _ := do(t, srv, http.MethodPost, "/enquiries", "", `{"fullName":"Meera","email":"meera@example.com"}`)
	assert.Equal(t, http.StatusCreated, status)

	status, _ = do(t, srv, http.MethodGet, "/pass-tiers", "", "")
	assert.Equal(t, http.StatusOK, status)

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
