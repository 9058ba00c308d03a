package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantKnown  bool
	}{
		{"not found", fmt.Errorf("speaker x: %w", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound, true},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest, true},
		{"invalid promotion", domain.ErrInvalidPromotion, http.StatusBadRequest, ErrCodeBadRequest, true},
		{"already approved", domain.ErrAlreadyApproved, http.StatusConflict, ErrCodeConflict, true},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, ErrCodeUnauthorized, true},
		{"payment", domain.ErrPaymentFailed, http.StatusPaymentRequired, ErrCodePaymentFailed, true},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternalError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, known := StatusForError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

type sampleRequest struct {
	Name string `json:"name"`
}

func (s sampleRequest) Validate() []string {
	return Required(nil, "name", s.Name)
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantMsg string
	}{
		{name: "valid", body: `{"name":"x"}`, wantOK: true},
		{name: "missing field", body: `{"name":"  "}`, wantMsg: "name is required"},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantMsg: "unknown field"},
		{name: "malformed", body: `{`, wantMsg: "unexpected EOF"},
		{name: "empty", body: ``, wantMsg: "request body is empty"},
		{name: "two objects", body: `{"name":"x"} {"name":"y"}`, wantMsg: "single JSON object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var env APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
			require.NotNil(t, env.Error)
			assert.Contains(t, env.Error.Message, tt.wantMsg)
		})
	}
}

func TestDecodeAndValidate_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	var dest sampleRequest

	require.False(t, DecodeAndValidate(rr, req, &dest))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3, HasNext: true},
		NewPaginationMeta(domain.PaginationParams{Page: 2, PageSize: 10}, 21))
	assert.False(t, NewPaginationMeta(domain.PaginationParams{Page: 3, PageSize: 10}, 21).HasNext)
	assert.Equal(t, 0, NewPaginationMeta(domain.PaginationParams{Page: 1}, 5).TotalPages)
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&page_size=500", nil)
	p := ParsePagination(req)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)

	req = httptest.NewRequest(http.MethodGet, "/?page=-1&page_size=abc", nil)
	p = ParsePagination(req)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}
