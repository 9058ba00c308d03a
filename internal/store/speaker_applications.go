package store

import (
	"context"
	"errors"
	"fmt"

	"agtechsummit/internal/domain"
)

// SpeakerApplicationRepo is the legacy view over speaker-track leadership applications.
type SpeakerApplicationRepo struct {
	apps *LeadershipApplicationRepo
}

var _ domain.SpeakerApplicationRepository = (*SpeakerApplicationRepo)(nil)

func (s *Store) SpeakerApplications() *SpeakerApplicationRepo {
	return &SpeakerApplicationRepo{apps: s.LeadershipApplications()}
}

func onSpeakerTrack(a *domain.LeadershipApplication) bool {
	return a.Track == domain.TrackSpeaker
}

func (r *SpeakerApplicationRepo) GetAll(_ context.Context) []*domain.SpeakerApplication {
	out := []*domain.SpeakerApplication{}
	r.apps.s.read(func(st *State) {
		for i := range st.LeadershipApplications {
			if onSpeakerTrack(&st.LeadershipApplications[i]) {
				out = append(out, domain.SpeakerApplicationFromLeadership(&st.LeadershipApplications[i]))
			}
		}
	})
	return out
}

// Create stores a speaker-track leadership application.
func (r *SpeakerApplicationRepo) Create(ctx context.Context, in domain.SpeakerApplicationInput) (*domain.SpeakerApplication, error) {
	a, err := r.apps.Create(ctx, domain.LeadershipApplicationInput{
		Track:        domain.TrackSpeaker,
		FullName:     in.FullName,
		Email:        in.Email,
		Title:        in.Title,
		Organization: in.Organization,
		Location:     in.Location,
		SpeakerType:  in.Type,
		Bio:          in.Bio,
		ProfileImage: in.ImageFile,
	})
	if err != nil {
		return nil, err
	}
	return domain.SpeakerApplicationFromLeadership(a), nil
}

func (r *SpeakerApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.SpeakerApplication, error) {
	a, err := r.apps.updateStatus(ctx, id, status, onSpeakerTrack)
	if err != nil {
		return nil, err
	}
	return domain.SpeakerApplicationFromLeadership(a), nil
}

func (r *SpeakerApplicationRepo) PromoteToSpeaker(ctx context.Context, id string) (*domain.Speaker, error) {
	sp, err := r.apps.PromoteToSpeaker(ctx, id)
	if errors.Is(err, domain.ErrInvalidPromotion) {
		return nil, fmt.Errorf("speaker application %s: %w", id, domain.ErrNotFound)
	}
	return sp, err
}

func (r *SpeakerApplicationRepo) Delete(ctx context.Context, id string) bool {
	return r.apps.delete(ctx, id, onSpeakerTrack)
}
