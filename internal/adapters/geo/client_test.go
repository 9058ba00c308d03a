package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LookupCountry(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"ip":"1.2.3.4","country_name":"India"}`, want: "India"},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":true}`, wantErr: true},
		{name: "error flag", status: http.StatusOK, body: `{"error":true,"reason":"Reserved IP Address"}`, wantErr: true},
		{name: "empty country", status: http.StatusOK, body: `{}`, wantErr: true},
		{name: "bad json", status: http.StatusOK, body: `<html>`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL, srv.Client()).LookupCountry(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_LookupCountry_canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, srv.Client()).LookupCountry(ctx)
	require.Error(t, err)
}

func TestNewClient_defaults(t *testing.T) {
	c := NewClient("", nil)
	assert.Equal(t, DefaultURL, c.url)
	assert.NotNil(t, c.httpClient)
}
