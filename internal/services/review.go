package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/social"
)

type reviewService struct {
	repos          domain.Repositories
	contextTimeout time.Duration
}

// NewReviewService creates the admin dashboard service.
func NewReviewService(repos domain.Repositories, timeout time.Duration) domain.ReviewService {
	return &reviewService{repos: repos, contextTimeout: timeout}
}

func (s *reviewService) Stats(ctx context.Context) domain.DashboardStats {
	return s.repos.Stats.GetDashboardStats(ctx)
}

func (s *reviewService) ListPaperSubmissions(ctx context.Context) []*domain.PaperSubmission {
	return s.repos.PaperSubmissions.GetAll(ctx)
}

func (s *reviewService) SetPaperSubmissionStatus(ctx context.Context, id string, status domain.PaperSubmissionStatus) (*domain.PaperSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.repos.PaperSubmissions.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update paper submission status: %w", err)
	}
	return p, nil
}

func (s *reviewService) DeletePaperSubmission(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.PaperSubmissions.Delete(ctx, id) {
		return notFound("paper submission", id)
	}
	return nil
}

func (s *reviewService) ListEnquiries(ctx context.Context) []*domain.Enquiry {
	return s.repos.Enquiries.GetAll(ctx)
}

func (s *reviewService) DeleteEnquiry(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.Enquiries.Delete(ctx, id) {
		return notFound("enquiry", id)
	}
	return nil
}

func (s *reviewService) ListLeadershipApplications(ctx context.Context, track domain.ApplicationTrack) []*domain.LeadershipApplication {
	all := s.repos.LeadershipApplications.GetAll(ctx)
	if track == "" {
		return all
	}
	return slices.DeleteFunc(all, func(a *domain.LeadershipApplication) bool { return a.Track != track })
}

func (s *reviewService) UpdateLeadershipApplication(ctx context.Context, id string, patch domain.LeadershipApplicationPatch) (*domain.LeadershipApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillApplicationPatch(&patch)
	a, err := s.repos.LeadershipApplications.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update leadership application: %w", err)
	}
	return a, nil
}

func (s *reviewService) SetLeadershipApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.LeadershipApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.repos.LeadershipApplications.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update leadership application status: %w", err)
	}
	return a, nil
}

func (s *reviewService) Promote(ctx context.Context, id string) (*domain.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.repos.LeadershipApplications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Track == domain.TrackSpeaker {
		sp, err := s.repos.LeadershipApplications.PromoteToSpeaker(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("promote to speaker: %w", err)
		}
		return &domain.Promotion{Speaker: sp}, nil
	}
	m, err := s.repos.LeadershipApplications.PromoteToCommittee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("promote to committee: %w", err)
	}
	return &domain.Promotion{CommitteeMember: m}, nil
}

func (s *reviewService) DeleteLeadershipApplication(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.LeadershipApplications.Delete(ctx, id) {
		return notFound("leadership application", id)
	}
	return nil
}

func (s *reviewService) ListSpeakerApplications(ctx context.Context) []*domain.SpeakerApplication {
	return s.repos.SpeakerApplications.GetAll(ctx)
}

// ListRegistrations returns the requested page, newest first, and the total count.
func (s *reviewService) ListRegistrations(ctx context.Context, p domain.PaginationParams) ([]*domain.Registration, int) {
	all := s.repos.Registrations.GetAll(ctx)
	slices.SortStableFunc(all, func(a, b *domain.Registration) int { return b.RegisteredAt.Compare(a.RegisteredAt) })
	return domain.Paginate(all, p), len(all)
}

func (s *reviewService) SetRegistrationStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.repos.Registrations.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update registration status: %w", err)
	}
	return reg, nil
}

func (s *reviewService) ListExitFeedback(ctx context.Context) []*domain.ExitFeedback {
	return s.repos.ExitFeedback.GetAll(ctx)
}

func (s *reviewService) DeleteExitFeedback(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.ExitFeedback.Delete(ctx, id) {
		return notFound("exit feedback", id)
	}
	return nil
}
