package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

func TestContentController_ListSpeakers_PassesTypeFilter(t *testing.T) {
	svc := &mockContentService{speakers: []*domain.Speaker{{ID: "sp-1", Name: "Asha", Type: domain.SpeakerTypeKeynote}}}
	ctrl := NewContentController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/speakers?type=keynote", nil)
	w := httptest.NewRecorder()
	ctrl.ListSpeakers(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.Speaker
	decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].Name)
	assert.Equal(t, domain.SpeakerTypeKeynote, svc.gotType)
}

func TestContentController_ListSpeakers_InvalidType(t *testing.T) {
	svc := &mockContentService{err: fmt.Errorf("%w: unknown speaker type", domain.ErrInvalidInput)}
	ctrl := NewContentController(testLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.ListSpeakers(w, httptest.NewRequest(http.MethodGet, "/speakers?type=guest", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
}

func TestContentController_GetSpeaker(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"missing", fmt.Errorf("speaker sp-9: %w", domain.ErrNotFound), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{err: tt.err}
			ctrl := NewContentController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodGet, "/speakers/sp-9", nil)
			req.SetPathValue("id", "sp-9")
			w := httptest.NewRecorder()
			ctrl.GetSpeaker(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "sp-9", svc.gotID)
		})
	}
}

func TestContentController_ListSessions_Filters(t *testing.T) {
	svc := &mockContentService{sessions: []*domain.Session{}}
	ctrl := NewContentController(testLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.ListSessions(w, httptest.NewRequest(http.MethodGet, "/sessions?day=day2&track=Soil", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.SessionFilter{Day: domain.Day2, Track: "Soil"}, svc.gotFilter)
}

func TestContentController_ListCommitteeMembers(t *testing.T) {
	svc := &mockContentService{members: []*domain.CommitteeMember{{ID: "cm-1"}}}
	ctrl := NewContentController(testLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.ListCommitteeMembers(w, httptest.NewRequest(http.MethodGet, "/committee-members?category=advisory", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CommitteeAdvisory, svc.gotCat)
}

func TestContentController_CreateSpeaker(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Asha","type":"keynote","company":"AgriCo"}`, http.StatusCreated},
		{"missing name", `{"type":"keynote"}`, http.StatusBadRequest},
		{"bad type", `{"name":"Asha","type":"guest"}`, http.StatusBadRequest},
		{"unknown field", `{"name":"Asha","type":"keynote","rank":1}`, http.StatusBadRequest},
		{"malformed", `{"name":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{}
			ctrl := NewContentController(testLogger(), svc)

			w := httptest.NewRecorder()
			ctrl.CreateSpeaker(w, httptest.NewRequest(http.MethodPost, "/admin/speakers", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "AgriCo", svc.gotSpeaker.Company)
			}
		})
	}
}

func TestContentController_UpdateSpeaker_NotFound(t *testing.T) {
	svc := &mockContentService{err: domain.ErrNotFound}
	ctrl := NewContentController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPatch, "/admin/speakers/nope", strings.NewReader(`{"name":"B"}`))
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	ctrl.UpdateSpeaker(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentController_DeleteEndpoints(t *testing.T) {
	tests := []struct {
		name string
		call func(c *ContentController, w http.ResponseWriter, r *http.Request)
	}{
		{"speaker", (*ContentController).DeleteSpeaker},
		{"committee member", (*ContentController).DeleteCommitteeMember},
		{"session", (*ContentController).DeleteSession},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockContentService{}
			ctrl := NewContentController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodDelete, "/admin/x/id-1", nil)
			req.SetPathValue("id", "id-1")
			w := httptest.NewRecorder()
			tt.call(ctrl, w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, "id-1", svc.gotID)

			svc.err = domain.ErrNotFound
			w = httptest.NewRecorder()
			tt.call(ctrl, w, req)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestContentController_CreateCommitteeMember_Validation(t *testing.T) {
	ctrl := NewContentController(testLogger(), &mockContentService{})

	w := httptest.NewRecorder()
	ctrl.CreateCommitteeMember(w, httptest.NewRequest(http.MethodPost, "/admin/committee-members",
		strings.NewReader(`{"name":"Ravi","category":"honorary","order":-1}`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Contains(t, env.Error.Message, "category")
	assert.Contains(t, env.Error.Message, "order")
}

func TestContentController_CreateSession(t *testing.T) {
	ctrl := NewContentController(testLogger(), &mockContentService{})

	w := httptest.NewRecorder()
	ctrl.CreateSession(w, httptest.NewRequest(http.MethodPost, "/admin/sessions",
		strings.NewReader(`{"title":"Opening","day":"day1","type":"keynote","time":"09:00"}`)))

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	ctrl.CreateSession(w, httptest.NewRequest(http.MethodPost, "/admin/sessions",
		strings.NewReader(`{"title":"Opening","day":"day3","type":"keynote"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentController_UpdatePassPrices(t *testing.T) {
	svc := &mockContentService{}
	ctrl := NewContentController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPut, "/admin/pass-tiers/regular/prices", strings.NewReader(`{"prices":{"INR":15000,"USD":180}}`))
	req.SetPathValue("id", "regular")
	w := httptest.NewRecorder()
	ctrl.UpdatePassPrices(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "regular", svc.gotID)
	assert.Equal(t, map[string]int{"INR": 15000, "USD": 180}, svc.gotPrices)

	w = httptest.NewRecorder()
	ctrl.UpdatePassPrices(w, httptest.NewRequest(http.MethodPut, "/admin/pass-tiers/regular/prices", strings.NewReader(`{"prices":{}}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentController_UnexpectedErrorIsHidden(t *testing.T) {
	svc := &mockContentService{err: fmt.Errorf("backend exploded: secret detail")}
	ctrl := NewContentController(testLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.ListPassTiers(w, httptest.NewRequest(http.MethodGet, "/pass-tiers", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, helpers.ErrCodeInternalError, env.Error.Code)
	assert.NotContains(t, env.Error.Message, "secret")
}
