package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"agtechsummit/internal/domain"
	"agtechsummit/internal/social"
)

type contentService struct {
	repos          domain.Repositories
	contextTimeout time.Duration
}

// NewContentService creates the service managing speakers, committee, agenda and passes.
func NewContentService(repos domain.Repositories, timeout time.Duration) domain.ContentService {
	return &contentService{repos: repos, contextTimeout: timeout}
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}

func (s *contentService) ListSpeakers(ctx context.Context, t domain.SpeakerType) ([]*domain.Speaker, error) {
	if t == "" {
		return s.repos.Speakers.GetAll(ctx), nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("speaker type %q: %w", t, domain.ErrInvalidInput)
	}
	return s.repos.Speakers.GetByType(ctx, t), nil
}

func (s *contentService) GetSpeaker(ctx context.Context, id string) (*domain.Speaker, error) {
	return s.repos.Speakers.GetByID(ctx, id)
}

func (s *contentService) CreateSpeaker(ctx context.Context, in domain.SpeakerInput) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillProfile(&in.SocialProfile)
	sp, err := s.repos.Speakers.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return sp, nil
}

func (s *contentService) UpdateSpeaker(ctx context.Context, id string, patch domain.SpeakerPatch) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillPatch(&patch.SocialProfilePatch)
	sp, err := s.repos.Speakers.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update speaker: %w", err)
	}
	return sp, nil
}

func (s *contentService) DeleteSpeaker(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.Speakers.Delete(ctx, id) {
		return notFound("speaker", id)
	}
	return nil
}

func (s *contentService) ListCommitteeMembers(ctx context.Context, category domain.CommitteeCategory) ([]*domain.CommitteeMember, error) {
	all := s.repos.CommitteeMembers.GetAll(ctx)
	if category == "" {
		return all, nil
	}
	if !category.Valid() {
		return nil, fmt.Errorf("committee category %q: %w", category, domain.ErrInvalidInput)
	}
	return slices.DeleteFunc(all, func(m *domain.CommitteeMember) bool { return m.Category != category }), nil
}

func (s *contentService) CreateCommitteeMember(ctx context.Context, in domain.CommitteeMemberInput) (*domain.CommitteeMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillProfile(&in.SocialProfile)
	m, err := s.repos.CommitteeMembers.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create committee member: %w", err)
	}
	return m, nil
}

func (s *contentService) UpdateCommitteeMember(ctx context.Context, id string, patch domain.CommitteeMemberPatch) (*domain.CommitteeMember, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	social.FillPatch(&patch.SocialProfilePatch)
	m, err := s.repos.CommitteeMembers.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update committee member: %w", err)
	}
	return m, nil
}

func (s *contentService) DeleteCommitteeMember(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.CommitteeMembers.Delete(ctx, id) {
		return notFound("committee member", id)
	}
	return nil
}

func (s *contentService) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	if filter.Day != "" && !filter.Day.Valid() {
		return nil, fmt.Errorf("session day %q: %w", filter.Day, domain.ErrInvalidInput)
	}
	var out []*domain.Session
	switch {
	case filter.Day != "":
		out = s.repos.Sessions.GetByDay(ctx, filter.Day)
	case filter.Track != "":
		return s.repos.Sessions.GetByTrack(ctx, filter.Track), nil
	default:
		return s.repos.Sessions.GetAll(ctx), nil
	}
	if filter.Track != "" {
		out = slices.DeleteFunc(out, func(sess *domain.Session) bool { return sess.Track != filter.Track })
	}
	return out, nil
}

func (s *contentService) CreateSession(ctx context.Context, in domain.SessionInput) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkSpeaker(ctx, in.SpeakerID); err != nil {
		return nil, err
	}
	sess, err := s.repos.Sessions.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *contentService) UpdateSession(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if patch.SpeakerID != nil {
		if err := s.checkSpeaker(ctx, *patch.SpeakerID); err != nil {
			return nil, err
		}
	}
	sess, err := s.repos.Sessions.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sess, nil
}

// checkSpeaker rejects references to speakers that do not exist. An empty id means no speaker.
func (s *contentService) checkSpeaker(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.repos.Speakers.GetByID(ctx, id); err != nil {
		return fmt.Errorf("session speaker %q: %w", id, domain.ErrInvalidInput)
	}
	return nil
}

func (s *contentService) DeleteSession(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !s.repos.Sessions.Delete(ctx, id) {
		return notFound("session", id)
	}
	return nil
}

func (s *contentService) ListPassTiers(ctx context.Context) ([]*domain.PassTier, error) {
	return s.repos.PassTiers.GetAll(ctx), nil
}

func (s *contentService) UpdatePassPrices(ctx context.Context, id string, prices map[string]int) (*domain.PassTier, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	for code := range prices {
		if !domain.IsSupportedCurrency(code) {
			return nil, fmt.Errorf("currency %q: %w", code, domain.ErrInvalidInput)
		}
	}
	t, err := s.repos.PassTiers.UpdatePrices(ctx, id, prices)
	if err != nil {
		return nil, fmt.Errorf("update pass prices: %w", err)
	}
	return t, nil
}
