package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// LeadershipApplicationRepo manages advisor, organizing committee and speaker applications.
type LeadershipApplicationRepo struct{ s *Store }

var _ domain.LeadershipApplicationRepository = (*LeadershipApplicationRepo)(nil)

func (s *Store) LeadershipApplications() *LeadershipApplicationRepo {
	return &LeadershipApplicationRepo{s: s}
}

func applicationIndex(st *State, id string) int {
	return slices.IndexFunc(st.LeadershipApplications, func(a domain.LeadershipApplication) bool { return a.ID == id })
}

func notFoundApplication(id string) error {
	return fmt.Errorf("leadership application %s: %w", id, domain.ErrNotFound)
}

func (r *LeadershipApplicationRepo) GetAll(_ context.Context) []*domain.LeadershipApplication {
	var out []*domain.LeadershipApplication
	r.s.read(func(st *State) { out = copies(st.LeadershipApplications) })
	return out
}

func (r *LeadershipApplicationRepo) GetByID(_ context.Context, id string) (*domain.LeadershipApplication, error) {
	var out *domain.LeadershipApplication
	r.s.read(func(st *State) {
		if i := applicationIndex(st, id); i >= 0 {
			a := st.LeadershipApplications[i]
			out = &a
		}
	})
	if out == nil {
		return nil, notFoundApplication(id)
	}
	return out, nil
}

// Create stores a new application with status new.
func (r *LeadershipApplicationRepo) Create(ctx context.Context, in domain.LeadershipApplicationInput) (*domain.LeadershipApplication, error) {
	if !in.Track.Valid() {
		return nil, fmt.Errorf("application track %q: %w", in.Track, domain.ErrInvalidInput)
	}
	if in.SpeakerType != "" && !in.SpeakerType.Valid() {
		return nil, fmt.Errorf("speaker type %q: %w", in.SpeakerType, domain.ErrInvalidInput)
	}
	a := domain.LeadershipApplication{
		ID:            r.s.newID(),
		Track:         in.Track,
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		Whatsapp:      in.Whatsapp,
		Title:         in.Title,
		Organization:  in.Organization,
		Location:      in.Location,
		SpeakerType:   in.SpeakerType,
		Bio:           in.Bio,
		ProfileImage:  in.ProfileImage,
		LinkedinURL:   in.LinkedinURL,
		FacebookURL:   in.FacebookURL,
		TwitterURL:    in.TwitterURL,
		LinkedinID:    in.LinkedinID,
		FacebookID:    in.FacebookID,
		TwitterHandle: in.TwitterHandle,
		SubmittedAt:   r.s.now(),
		Status:        domain.ApplicationStatusNew,
	}
	r.s.mutate(ctx, "leadership_applications.create", func(st *State) bool {
		st.LeadershipApplications = append(st.LeadershipApplications, a)
		return true
	})
	return &a, nil
}

func (r *LeadershipApplicationRepo) Update(ctx context.Context, id string, patch domain.LeadershipApplicationPatch) (*domain.LeadershipApplication, error) {
	if patch.Track != nil && !patch.Track.Valid() {
		return nil, fmt.Errorf("application track %q: %w", *patch.Track, domain.ErrInvalidInput)
	}
	if patch.SpeakerType != nil && *patch.SpeakerType != "" && !patch.SpeakerType.Valid() {
		return nil, fmt.Errorf("speaker type %q: %w", *patch.SpeakerType, domain.ErrInvalidInput)
	}
	var out *domain.LeadershipApplication
	r.s.mutate(ctx, "leadership_applications.update", func(st *State) bool {
		i := applicationIndex(st, id)
		if i < 0 {
			return false
		}
		a := &st.LeadershipApplications[i]
		changed := set(&a.Track, patch.Track)
		changed = set(&a.FullName, patch.FullName) || changed
		changed = set(&a.Email, patch.Email) || changed
		changed = set(&a.Phone, patch.Phone) || changed
		changed = set(&a.Whatsapp, patch.Whatsapp) || changed
		changed = set(&a.Title, patch.Title) || changed
		changed = set(&a.Organization, patch.Organization) || changed
		changed = set(&a.Location, patch.Location) || changed
		changed = set(&a.SpeakerType, patch.SpeakerType) || changed
		changed = set(&a.Bio, patch.Bio) || changed
		changed = set(&a.ProfileImage, patch.ProfileImage) || changed
		changed = set(&a.LinkedinURL, patch.LinkedinURL) || changed
		changed = set(&a.FacebookURL, patch.FacebookURL) || changed
		changed = set(&a.TwitterURL, patch.TwitterURL) || changed
		changed = set(&a.LinkedinID, patch.LinkedinID) || changed
		changed = set(&a.FacebookID, patch.FacebookID) || changed
		changed = set(&a.TwitterHandle, patch.TwitterHandle) || changed
		c := *a
		out = &c
		return changed
	})
	if out == nil {
		return nil, notFoundApplication(id)
	}
	return out, nil
}

func (r *LeadershipApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.LeadershipApplication, error) {
	return r.updateStatus(ctx, id, status, nil)
}

// updateStatus changes the status of the application when accept (if given) allows it.
func (r *LeadershipApplicationRepo) updateStatus(ctx context.Context, id string, status domain.ApplicationStatus, accept func(*domain.LeadershipApplication) bool) (*domain.LeadershipApplication, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("application status %q: %w", status, domain.ErrInvalidInput)
	}
	var out *domain.LeadershipApplication
	r.s.mutate(ctx, "leadership_applications.update_status", func(st *State) bool {
		i := applicationIndex(st, id)
		if i < 0 {
			return false
		}
		a := &st.LeadershipApplications[i]
		if accept != nil && !accept(a) {
			return false
		}
		changed := set(&a.Status, &status)
		c := *a
		out = &c
		return changed
	})
	if out == nil {
		return nil, notFoundApplication(id)
	}
	return out, nil
}

// PromoteToSpeaker appends a speaker built from a speaker-track application and marks the
// application approved, in one mutation.
func (r *LeadershipApplicationRepo) PromoteToSpeaker(ctx context.Context, id string) (*domain.Speaker, error) {
	var (
		out *domain.Speaker
		err error
	)
	r.s.mutate(ctx, "leadership_applications.promote_speaker", func(st *State) bool {
		var a *domain.LeadershipApplication
		if a, err = promotable(st, id, domain.TrackSpeaker); err != nil {
			return false
		}
		t := a.SpeakerType
		if t == "" {
			t = domain.SpeakerTypeSession
		}
		sp := domain.Speaker{
			ID:            r.s.newID(),
			Name:          a.FullName,
			Title:         a.Title,
			Company:       a.Organization,
			Location:      a.Location,
			Bio:           a.Bio,
			Type:          t,
			Image:         a.ProfileImage,
			SocialProfile: applicantSocials(a),
			CreatedAt:     r.s.now(),
		}
		st.Speakers = append(st.Speakers, sp)
		a.Status = domain.ApplicationStatusApproved
		out = &sp
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PromoteToCommittee appends a committee member built from an advisor or
// organizing_committee application, ordered after every existing member.
func (r *LeadershipApplicationRepo) PromoteToCommittee(ctx context.Context, id string) (*domain.CommitteeMember, error) {
	var (
		out *domain.CommitteeMember
		err error
	)
	r.s.mutate(ctx, "leadership_applications.promote_committee", func(st *State) bool {
		var a *domain.LeadershipApplication
		if a, err = promotable(st, id, domain.TrackAdvisor, domain.TrackOrganizingCommittee); err != nil {
			return false
		}
		category := domain.CommitteeOrganizing
		if a.Track == domain.TrackAdvisor {
			category = domain.CommitteeAdvisory
		}
		m := domain.CommitteeMember{
			ID:            r.s.newID(),
			Category:      category,
			Name:          a.FullName,
			Role:          a.Title,
			Organization:  a.Organization,
			Location:      a.Location,
			Bio:           a.Bio,
			Image:         a.ProfileImage,
			SocialProfile: applicantSocials(a),
			Order:         maxCommitteeOrder(st) + 1,
			CreatedAt:     r.s.now(),
		}
		st.CommitteeMembers = append(st.CommitteeMembers, m)
		a.Status = domain.ApplicationStatusApproved
		out = &m
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// promotable returns the application if it exists, is on one of tracks and is not yet approved.
func promotable(st *State, id string, tracks ...domain.ApplicationTrack) (*domain.LeadershipApplication, error) {
	i := applicationIndex(st, id)
	if i < 0 {
		return nil, notFoundApplication(id)
	}
	a := &st.LeadershipApplications[i]
	if !slices.Contains(tracks, a.Track) {
		return nil, fmt.Errorf("application %s on track %q: %w", id, a.Track, domain.ErrInvalidPromotion)
	}
	if a.Status == domain.ApplicationStatusApproved {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrAlreadyApproved)
	}
	return a, nil
}

func applicantSocials(a *domain.LeadershipApplication) domain.SocialProfile {
	return domain.SocialProfile{
		Linkedin:      a.LinkedinURL,
		Facebook:      a.FacebookURL,
		Twitter:       a.TwitterURL,
		LinkedinID:    a.LinkedinID,
		FacebookID:    a.FacebookID,
		TwitterHandle: a.TwitterHandle,
	}
}

func (r *LeadershipApplicationRepo) Delete(ctx context.Context, id string) bool {
	return r.delete(ctx, id, nil)
}

func (r *LeadershipApplicationRepo) delete(ctx context.Context, id string, accept func(*domain.LeadershipApplication) bool) bool {
	deleted := false
	r.s.mutate(ctx, "leadership_applications.delete", func(st *State) bool {
		i := applicationIndex(st, id)
		if i < 0 || (accept != nil && !accept(&st.LeadershipApplications[i])) {
			return false
		}
		st.LeadershipApplications = slices.Delete(st.LeadershipApplications, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
