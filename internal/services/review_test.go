package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/store"
)

func TestReviewService_Promote(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	speakerApp, err := repos.LeadershipApplications.Create(ctx, domain.LeadershipApplicationInput{
		Track: domain.TrackSpeaker, FullName: "Gita", SpeakerType: domain.SpeakerTypePanelist,
	})
	require.NoError(t, err)
	advisorApp, err := repos.LeadershipApplications.Create(ctx, domain.LeadershipApplicationInput{
		Track: domain.TrackAdvisor, FullName: "Hiro", Title: "Agronomist",
	})
	require.NoError(t, err)

	p, err := svc.Promote(ctx, speakerApp.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Speaker)
	assert.Nil(t, p.CommitteeMember)
	assert.Equal(t, "Gita", p.Speaker.Name)
	assert.Equal(t, domain.SpeakerTypePanelist, p.Speaker.Type)

	p, err = svc.Promote(ctx, advisorApp.ID)
	require.NoError(t, err)
	require.NotNil(t, p.CommitteeMember)
	assert.Equal(t, domain.CommitteeAdvisory, p.CommitteeMember.Category)

	_, err = svc.Promote(ctx, speakerApp.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyApproved)

	_, err = svc.Promote(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats := svc.Stats(ctx)
	assert.Equal(t, 4, stats.Speakers)
	assert.Equal(t, 4, stats.CommitteeMembers)
}

func TestReviewService_ListLeadershipApplications_byTrack(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	for _, tr := range []domain.ApplicationTrack{domain.TrackSpeaker, domain.TrackAdvisor, domain.TrackSpeaker} {
		_, err := repos.LeadershipApplications.Create(ctx, domain.LeadershipApplicationInput{Track: tr})
		require.NoError(t, err)
	}

	assert.Len(t, svc.ListLeadershipApplications(ctx, ""), 3)
	assert.Len(t, svc.ListLeadershipApplications(ctx, domain.TrackSpeaker), 2)
	assert.Len(t, svc.ListSpeakerApplications(ctx), 2)
}

func TestReviewService_UpdateLeadershipApplication_rederivesIDs(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	a, err := repos.LeadershipApplications.Create(ctx, domain.LeadershipApplicationInput{
		Track: domain.TrackSpeaker, LinkedinURL: "https://linkedin.com/in/old", LinkedinID: "old",
	})
	require.NoError(t, err)

	a, err = svc.UpdateLeadershipApplication(ctx, a.ID, domain.LeadershipApplicationPatch{LinkedinURL: ptr("https://linkedin.com/in/new")})
	require.NoError(t, err)
	assert.Equal(t, "new", a.LinkedinID)

	a, err = svc.SetLeadershipApplicationStatus(ctx, a.ID, domain.ApplicationStatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusReviewing, a.Status)

	require.NoError(t, svc.DeleteLeadershipApplication(ctx, a.ID))
	assert.ErrorIs(t, svc.DeleteLeadershipApplication(ctx, a.ID), domain.ErrNotFound)
}

func TestReviewService_ListRegistrations_paginates(t *testing.T) {
	repos := newTestRepos(t, store.WithClock(tickingClock()))
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		reg, err := repos.Registrations.Create(ctx, domain.RegistrationInput{Email: "r@x.y", Amount: 100, Currency: "USD"})
		require.NoError(t, err)
		ids = append(ids, reg.ID)
	}

	tests := []struct {
		name    string
		params  domain.PaginationParams
		wantIDs []string
	}{
		{name: "first page newest first", params: domain.PaginationParams{Page: 1, PageSize: 2}, wantIDs: []string{ids[4], ids[3]}},
		{name: "last partial page", params: domain.PaginationParams{Page: 3, PageSize: 2}, wantIDs: []string{ids[0]}},
		{name: "past the end", params: domain.PaginationParams{Page: 9, PageSize: 2}, wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total := svc.ListRegistrations(ctx, tt.params)
			assert.Equal(t, 5, total)
			got := make([]string, 0, len(page))
			for _, r := range page {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestReviewService_SetRegistrationStatus(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	reg, err := repos.Registrations.Create(ctx, domain.RegistrationInput{Amount: 100, Currency: "INR"})
	require.NoError(t, err)

	reg, err = svc.SetRegistrationStatus(ctx, reg.ID, domain.RegistrationCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationCompleted, reg.Status)

	_, err = svc.SetRegistrationStatus(ctx, reg.ID, "refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.SetRegistrationStatus(ctx, "missing", domain.RegistrationCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewService_deletes(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos, testTimeout)
	ctx := context.Background()

	p, err := repos.PaperSubmissions.Create(ctx, domain.PaperSubmissionInput{PaperTitle: "x"})
	require.NoError(t, err)
	e, err := repos.Enquiries.Create(ctx, domain.EnquiryInput{FullName: "y"})
	require.NoError(t, err)
	f, err := repos.ExitFeedback.Create(ctx, domain.ExitFeedbackInput{Step: 1, Reason: domain.ExitReasonOther})
	require.NoError(t, err)

	p, err = svc.SetPaperSubmissionStatus(ctx, p.ID, domain.PaperStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.PaperStatusAccepted, p.Status)

	require.NoError(t, svc.DeletePaperSubmission(ctx, p.ID))
	require.NoError(t, svc.DeleteEnquiry(ctx, e.ID))
	require.NoError(t, svc.DeleteExitFeedback(ctx, f.ID))

	assert.Empty(t, svc.ListPaperSubmissions(ctx))
	assert.Empty(t, svc.ListEnquiries(ctx))
	assert.Empty(t, svc.ListExitFeedback(ctx))

	assert.ErrorIs(t, svc.DeletePaperSubmission(ctx, p.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEnquiry(ctx, e.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteExitFeedback(ctx, f.ID), domain.ErrNotFound)
}
