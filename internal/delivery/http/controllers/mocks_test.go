package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// decode unmarshals the envelope of w and, when dest is non-nil, its data field.
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if dest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
	return env
}

type mockContentService struct {
	err        error
	speakers   []*domain.Speaker
	sessions   []*domain.Session
	members    []*domain.CommitteeMember
	tiers      []*domain.PassTier
	gotID      string
	gotType    domain.SpeakerType
	gotFilter  domain.SessionFilter
	gotCat     domain.CommitteeCategory
	gotSpeaker domain.SpeakerInput
	gotPrices  map[string]int
}

func (m *mockContentService) ListSpeakers(ctx context.Context, t domain.SpeakerType) ([]*domain.Speaker, error) {
	m.gotType = t
	return m.speakers, m.err
}

func (m *mockContentService) GetSpeaker(ctx context.Context, id string) (*domain.Speaker, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Speaker{ID: id, Name: "Asha"}, nil
}

func (m *mockContentService) CreateSpeaker(ctx context.Context, in domain.SpeakerInput) (*domain.Speaker, error) {
	m.gotSpeaker = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Speaker{ID: "sp-1", Name: in.Name, Type: in.Type}, nil
}

func (m *mockContentService) UpdateSpeaker(ctx context.Context, id string, patch domain.SpeakerPatch) (*domain.Speaker, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Speaker{ID: id}, nil
}

func (m *mockContentService) DeleteSpeaker(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockContentService) ListCommitteeMembers(ctx context.Context, category domain.CommitteeCategory) ([]*domain.CommitteeMember, error) {
	m.gotCat = category
	return m.members, m.err
}

func (m *mockContentService) CreateCommitteeMember(ctx context.Context, in domain.CommitteeMemberInput) (*domain.CommitteeMember, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CommitteeMember{ID: "cm-1", Name: in.Name, Category: in.Category}, nil
}

func (m *mockContentService) UpdateCommitteeMember(ctx context.Context, id string, patch domain.CommitteeMemberPatch) (*domain.CommitteeMember, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CommitteeMember{ID: id}, nil
}

func (m *mockContentService) DeleteCommitteeMember(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockContentService) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	m.gotFilter = filter
	return m.sessions, m.err
}

func (m *mockContentService) CreateSession(ctx context.Context, in domain.SessionInput) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Session{ID: "s-1", Title: in.Title}, nil
}

func (m *mockContentService) UpdateSession(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Session{ID: id}, nil
}

func (m *mockContentService) DeleteSession(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockContentService) ListPassTiers(ctx context.Context) ([]*domain.PassTier, error) {
	return m.tiers, m.err
}

func (m *mockContentService) UpdatePassPrices(ctx context.Context, id string, prices map[string]int) (*domain.PassTier, error) {
	m.gotID = id
	m.gotPrices = prices
	if m.err != nil {
		return nil, m.err
	}
	return &domain.PassTier{ID: id, Prices: prices}, nil
}

type mockSubmissionService struct {
	err      error
	gotPaper domain.PaperSubmissionInput
	gotApp   domain.LeadershipApplicationInput
}

func (m *mockSubmissionService) SubmitPaper(ctx context.Context, in domain.PaperSubmissionInput) (*domain.PaperSubmission, error) {
	m.gotPaper = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.PaperSubmission{ID: "p-1", AuthorName: in.AuthorName, Email: in.Email, PaperTitle: in.PaperTitle, Status: domain.PaperStatusPending}, nil
}

func (m *mockSubmissionService) SubmitEnquiry(ctx context.Context, in domain.EnquiryInput) (*domain.Enquiry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Enquiry{ID: "e-1", FullName: in.FullName, Email: in.Email}, nil
}

func (m *mockSubmissionService) ApplyForLeadership(ctx context.Context, in domain.LeadershipApplicationInput) (*domain.LeadershipApplication, error) {
	m.gotApp = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.LeadershipApplication{ID: "la-1", Track: in.Track, FullName: in.FullName, Status: domain.ApplicationStatusNew}, nil
}

func (m *mockSubmissionService) ApplyAsSpeaker(ctx context.Context, in domain.SpeakerApplicationInput) (*domain.SpeakerApplication, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SpeakerApplication{ID: "sa-1", FullName: in.FullName}, nil
}

func (m *mockSubmissionService) SubmitExitFeedback(ctx context.Context, in domain.ExitFeedbackInput) (*domain.ExitFeedback, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExitFeedback{ID: "x-1", Reason: in.Reason, Step: in.Step}, nil
}

type mockCheckoutService struct {
	currency string
	err      error
	gotReq   domain.CheckoutRequest
	gotPass  string
	gotCur   string
}

func (m *mockCheckoutService) DetectCurrency(ctx context.Context) string { return m.currency }

func (m *mockCheckoutService) Quote(ctx context.Context, passID, currency string) (*domain.Quote, error) {
	m.gotPass, m.gotCur = passID, currency
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Quote{PassID: passID, Currency: currency, Price: 209, PlatformFee: 10, Total: 219}, nil
}

func (m *mockCheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CheckoutResult{
		Registration: &domain.Registration{ID: "r-1", Email: req.Email, Status: domain.RegistrationPending},
		Quote:        &domain.Quote{PassID: req.PassID, Total: 219},
	}, nil
}

type mockReviewService struct {
	err           error
	stats         domain.DashboardStats
	registrations []*domain.Registration
	total         int
	promotion     *domain.Promotion
	gotID         string
	gotTrack      domain.ApplicationTrack
	gotPage       domain.PaginationParams
	gotPaper      domain.PaperSubmissionStatus
	gotApp        domain.ApplicationStatus
	gotReg        domain.RegistrationStatus
}

func (m *mockReviewService) Stats(ctx context.Context) domain.DashboardStats { return m.stats }

func (m *mockReviewService) ListPaperSubmissions(ctx context.Context) []*domain.PaperSubmission {
	return []*domain.PaperSubmission{{ID: "p-1"}}
}

func (m *mockReviewService) SetPaperSubmissionStatus(ctx context.Context, id string, status domain.PaperSubmissionStatus) (*domain.PaperSubmission, error) {
	m.gotID, m.gotPaper = id, status
	if m.err != nil {
		return nil, m.err
	}
	return &domain.PaperSubmission{ID: id, Status: status}, nil
}

func (m *mockReviewService) DeletePaperSubmission(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockReviewService) ListEnquiries(ctx context.Context) []*domain.Enquiry {
	return []*domain.Enquiry{}
}

func (m *mockReviewService) DeleteEnquiry(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockReviewService) ListLeadershipApplications(ctx context.Context, track domain.ApplicationTrack) []*domain.LeadershipApplication {
	m.gotTrack = track
	return []*domain.LeadershipApplication{{ID: "la-1", Track: domain.TrackAdvisor}}
}

func (m *mockReviewService) UpdateLeadershipApplication(ctx context.Context, id string, patch domain.LeadershipApplicationPatch) (*domain.LeadershipApplication, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	a := &domain.LeadershipApplication{ID: id}
	if patch.FullName != nil {
		a.FullName = *patch.FullName
	}
	return a, nil
}

func (m *mockReviewService) SetLeadershipApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.LeadershipApplication, error) {
	m.gotID, m.gotApp = id, status
	if m.err != nil {
		return nil, m.err
	}
	return &domain.LeadershipApplication{ID: id, Status: status}, nil
}

func (m *mockReviewService) Promote(ctx context.Context, id string) (*domain.Promotion, error) {
	m.gotID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.promotion, nil
}

func (m *mockReviewService) DeleteLeadershipApplication(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}

func (m *mockReviewService) ListSpeakerApplications(ctx context.Context) []*domain.SpeakerApplication {
	return []*domain.SpeakerApplication{}
}

func (m *mockReviewService) ListRegistrations(ctx context.Context, p domain.PaginationParams) ([]*domain.Registration, int) {
	m.gotPage = p
	return m.registrations, m.total
}

func (m *mockReviewService) SetRegistrationStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	m.gotID, m.gotReg = id, status
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Registration{ID: id, Status: status}, nil
}

func (m *mockReviewService) ListExitFeedback(ctx context.Context) []*domain.ExitFeedback {
	return []*domain.ExitFeedback{}
}

func (m *mockReviewService) DeleteExitFeedback(ctx context.Context, id string) error {
	m.gotID = id
	return m.err
}
