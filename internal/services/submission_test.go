package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

func TestSubmissionService_SubmitPaper_acknowledges(t *testing.T) {
	repos := newTestRepos(t)
	mail := &fakeEmailService{}
	svc := NewSubmissionService(repos, mail, discardLogger(), testTimeout)

	p, err := svc.SubmitPaper(context.Background(), domain.PaperSubmissionInput{
		AuthorName: "Asha Rao",
		Email:      "asha@example.com",
		PaperTitle: "Soil sensors at scale",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaperStatusPending, p.Status)
	assert.Len(t, repos.PaperSubmissions.GetAll(context.Background()), 1)

	require.Len(t, mail.receipts, 1)
	assert.Equal(t, "asha@example.com", mail.receipts[0].Email)
	assert.Equal(t, "Soil sensors at scale", mail.receipts[0].Subject)
}

func TestSubmissionService_emailFailureDoesNotFailSubmission(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos, &fakeEmailService{err: errBoom}, discardLogger(), testTimeout)

	e, err := svc.SubmitEnquiry(context.Background(), domain.EnquiryInput{FullName: "Ben", Email: "ben@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
}

func TestSubmissionService_ApplyForLeadership_derivesSocialIDs(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos, nil, discardLogger(), testTimeout)

	a, err := svc.ApplyForLeadership(context.Background(), domain.LeadershipApplicationInput{
		Track:       domain.TrackAdvisor,
		FullName:    "Chen Li",
		Email:       "chen@example.com",
		LinkedinURL: "https://www.linkedin.com/in/chen-li/",
		TwitterURL:  "x.com/chenli",
	})
	require.NoError(t, err)
	assert.Equal(t, "chen-li", a.LinkedinID)
	assert.Equal(t, "chenli", a.TwitterHandle)
	assert.Equal(t, domain.ApplicationStatusNew, a.Status)
}

func TestSubmissionService_invalidInput(t *testing.T) {
	svc := NewSubmissionService(newTestRepos(t), nil, discardLogger(), testTimeout)

	_, err := svc.ApplyForLeadership(context.Background(), domain.LeadershipApplicationInput{Track: "astronaut"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmissionService_ApplyAsSpeaker_showsInLeadershipList(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewSubmissionService(repos, nil, discardLogger(), testTimeout)

	sa, err := svc.ApplyAsSpeaker(context.Background(), domain.SpeakerApplicationInput{
		FullName: "Dana",
		Email:    "dana@example.com",
		Type:     domain.SpeakerTypeKeynote,
	})
	require.NoError(t, err)

	la, err := repos.LeadershipApplications.GetByID(context.Background(), sa.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackSpeaker, la.Track)
}

func TestSubmissionService_SubmitExitFeedback(t *testing.T) {
	repos := newTestRepos(t)
	mail := &fakeEmailService{}
	svc := NewSubmissionService(repos, mail, discardLogger(), testTimeout)

	f, err := svc.SubmitExitFeedback(context.Background(), domain.ExitFeedbackInput{Step: 2, Reason: domain.ExitReasonPrice, Email: "x@y.z"})
	require.NoError(t, err)
	assert.Equal(t, 2, f.Step)
	assert.Empty(t, mail.receipts)
}
