package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

func TestSubmissionController_SubmitPaper(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "valid",
			body:       `{"authorName":"Dr. Rao","email":"rao@uni.edu","paperTitle":"Drip irrigation at scale","researchTrack":"Water"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"authorName":"Dr. Rao","email":"rao@uni.edu"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "paperTitle is required",
		},
		{
			name:       "bad email",
			body:       `{"authorName":"Dr. Rao","email":"rao-at-uni","paperTitle":"T"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid email format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSubmissionService{}
			ctrl := NewSubmissionController(testLogger(), svc)

			w := httptest.NewRecorder()
			ctrl.SubmitPaper(w, httptest.NewRequest(http.MethodPost, "/paper-submissions", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				env := decode(t, w, nil)
				assert.Contains(t, env.Error.Message, tt.wantMsg)
				return
			}
			var got domain.PaperSubmission
			decode(t, w, &got)
			assert.Equal(t, domain.PaperStatusPending, got.Status)
			assert.Equal(t, "Water", svc.gotPaper.ResearchTrack)
		})
	}
}

func TestSubmissionController_SubmitEnquiry(t *testing.T) {
	ctrl := NewSubmissionController(testLogger(), &mockSubmissionService{})

	w := httptest.NewRecorder()
	ctrl.SubmitEnquiry(w, httptest.NewRequest(http.MethodPost, "/enquiries",
		strings.NewReader(`{"fullName":"Meera","email":"meera@example.com","message":"Sponsorship?"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	ctrl.SubmitEnquiry(w, httptest.NewRequest(http.MethodPost, "/enquiries", strings.NewReader(`{"email":"meera@example.com"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmissionController_ApplyForLeadership(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"advisor", `{"track":"advisor","fullName":"K. Iyer","email":"k@iyer.in","linkedinUrl":"https://linkedin.com/in/kiyer"}`, http.StatusCreated},
		{"speaker with type", `{"track":"speaker","fullName":"K. Iyer","email":"k@iyer.in","speakerType":"panelist"}`, http.StatusCreated},
		{"unknown track", `{"track":"volunteer","fullName":"K. Iyer","email":"k@iyer.in"}`, http.StatusBadRequest},
		{"bad speaker type", `{"track":"speaker","fullName":"K. Iyer","email":"k@iyer.in","speakerType":"host"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSubmissionService{}
			ctrl := NewSubmissionController(testLogger(), svc)

			w := httptest.NewRecorder()
			ctrl.ApplyForLeadership(w, httptest.NewRequest(http.MethodPost, "/leadership-applications", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSubmissionController_ApplyAsSpeaker(t *testing.T) {
	ctrl := NewSubmissionController(testLogger(), &mockSubmissionService{})

	w := httptest.NewRecorder()
	ctrl.ApplyAsSpeaker(w, httptest.NewRequest(http.MethodPost, "/speaker-applications",
		strings.NewReader(`{"fullName":"Lee","email":"lee@example.com","type":"session"}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmissionController_SubmitExitFeedback(t *testing.T) {
	ctrl := NewSubmissionController(testLogger(), &mockSubmissionService{})

	w := httptest.NewRecorder()
	ctrl.SubmitExitFeedback(w, httptest.NewRequest(http.MethodPost, "/exit-feedback", strings.NewReader(`{"step":2,"reason":"Too expensive"}`)))
	require.Equal(t, http.StatusCreated, w.Code)
	var got domain.ExitFeedback
	decode(t, w, &got)
	assert.Equal(t, 2, got.Step)

	w = httptest.NewRecorder()
	ctrl.SubmitExitFeedback(w, httptest.NewRequest(http.MethodPost, "/exit-feedback", strings.NewReader(`{"step":-1,"reason":""}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmissionController_ServiceError(t *testing.T) {
	ctrl := NewSubmissionController(testLogger(), &mockSubmissionService{err: errors.New("disk full")})

	w := httptest.NewRecorder()
	ctrl.SubmitEnquiry(w, httptest.NewRequest(http.MethodPost, "/enquiries",
		strings.NewReader(`{"fullName":"Meera","email":"meera@example.com"}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
