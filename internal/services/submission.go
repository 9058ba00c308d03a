package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/social"
)

type submissionService struct {
	repos          domain.Repositories
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSubmissionService creates the service behind the public forms.
// emailService may be nil, in which case no acknowledgements are sent.
func NewSubmissionService(repos domain.Repositories, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.SubmissionService {
	return &submissionService{
		repos:          repos,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *submissionService) SubmitPaper(ctx context.Context, in domain.PaperSubmissionInput) (*domain.PaperSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p, err := s.repos.PaperSubmissions.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create paper submission: %w", err)
	}
	s.acknowledge(ctx, p.Email, p.AuthorName, p.PaperTitle)
	return p, nil
}

func (s *submissionService) SubmitEnquiry(ctx context.Context, in domain.EnquiryInput) (*domain.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.repos.Enquiries.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	s.acknowledge(ctx, e.Email, e.FullName, "your enquiry")
	return e, nil
}

func (s *submissionService) ApplyForLeadership(ctx context.Context, in domain.LeadershipApplicationInput) (*domain.LeadershipApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillApplication(&in)
	a, err := s.repos.LeadershipApplications.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create leadership application: %w", err)
	}
	s.acknowledge(ctx, a.Email, a.FullName, "your "+trackLabel(a.Track)+" application")
	return a, nil
}

func (s *submissionService) ApplyAsSpeaker(ctx context.Context, in domain.SpeakerApplicationInput) (*domain.SpeakerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	a, err := s.repos.SpeakerApplications.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create speaker application: %w", err)
	}
	s.acknowledge(ctx, a.Email, a.FullName, "your speaker application")
	return a, nil
}

func (s *submissionService) SubmitExitFeedback(ctx context.Context, in domain.ExitFeedbackInput) (*domain.ExitFeedback, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	f, err := s.repos.ExitFeedback.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create exit feedback: %w", err)
	}
	return f, nil
}

// acknowledge sends a best-effort receipt; failures are logged and never surface to the caller.
func (s *submissionService) acknowledge(ctx context.Context, email, name, subject string) {
	if s.emailService == nil || email == "" {
		return
	}
	err := s.emailService.SendSubmissionReceived(ctx, &domain.SubmissionReceivedEmailData{
		Email:    email,
		FullName: name,
		Subject:  subject,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "acknowledgement email failed", "to", email, "err", err)
	}
}

func trackLabel(t domain.ApplicationTrack) string {
	switch t {
	case domain.TrackAdvisor:
		return "advisor"
	case domain.TrackOrganizingCommittee:
		return "organizing committee"
	default:
		return "speaker"
	}
}
