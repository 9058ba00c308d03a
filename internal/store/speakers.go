package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// SpeakerRepo manages the speaker lineup.
type SpeakerRepo struct{ s *Store }

var _ domain.SpeakerRepository = (*SpeakerRepo)(nil)

func (s *Store) Speakers() *SpeakerRepo { return &SpeakerRepo{s: s} }

func speakerIndex(st *State, id string) int {
	return slices.IndexFunc(st.Speakers, func(sp domain.Speaker) bool { return sp.ID == id })
}

func (r *SpeakerRepo) GetAll(_ context.Context) []*domain.Speaker {
	var out []*domain.Speaker
	r.s.read(func(st *State) { out = copies(st.Speakers) })
	return out
}

func (r *SpeakerRepo) GetByID(_ context.Context, id string) (*domain.Speaker, error) {
	var out *domain.Speaker
	r.s.read(func(st *State) {
		if i := speakerIndex(st, id); i >= 0 {
			sp := st.Speakers[i]
			out = &sp
		}
	})
	if out == nil {
		return nil, fmt.Errorf("speaker %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *SpeakerRepo) GetByType(_ context.Context, t domain.SpeakerType) []*domain.Speaker {
	out := []*domain.Speaker{}
	r.s.read(func(st *State) {
		for _, sp := range st.Speakers {
			if sp.Type == t {
				c := sp
				out = append(out, &c)
			}
		}
	})
	return out
}

func (r *SpeakerRepo) Create(ctx context.Context, in domain.SpeakerInput) (*domain.Speaker, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("speaker type %q: %w", in.Type, domain.ErrInvalidInput)
	}
	sp := domain.Speaker{
		ID:            r.s.newID(),
		Name:          in.Name,
		Title:         in.Title,
		Company:       in.Company,
		Location:      in.Location,
		Bio:           in.Bio,
		Type:          in.Type,
		Image:         in.Image,
		SocialProfile: in.SocialProfile,
		CreatedAt:     r.s.now(),
	}
	r.s.mutate(ctx, "speakers.create", func(st *State) bool {
		st.Speakers = append(st.Speakers, sp)
		return true
	})
	return &sp, nil
}

func (r *SpeakerRepo) Update(ctx context.Context, id string, patch domain.SpeakerPatch) (*domain.Speaker, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, fmt.Errorf("speaker type %q: %w", *patch.Type, domain.ErrInvalidInput)
	}
	var out *domain.Speaker
	r.s.mutate(ctx, "speakers.update", func(st *State) bool {
		i := speakerIndex(st, id)
		if i < 0 {
			return false
		}
		sp := &st.Speakers[i]
		changed := set(&sp.Name, patch.Name)
		changed = set(&sp.Title, patch.Title) || changed
		changed = set(&sp.Company, patch.Company) || changed
		changed = set(&sp.Location, patch.Location) || changed
		changed = set(&sp.Bio, patch.Bio) || changed
		changed = set(&sp.Type, patch.Type) || changed
		changed = set(&sp.Image, patch.Image) || changed
		changed = patch.SocialProfilePatch.Apply(&sp.SocialProfile) || changed
		c := *sp
		out = &c
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("speaker %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

// Delete removes the speaker and unassigns it from every session in the same mutation.
func (r *SpeakerRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "speakers.delete", func(st *State) bool {
		i := speakerIndex(st, id)
		if i < 0 {
			return false
		}
		st.Speakers = slices.Delete(st.Speakers, i, i+1)
		for j := range st.Sessions {
			if st.Sessions[j].SpeakerID == id {
				st.Sessions[j].SpeakerID = ""
			}
		}
		deleted = true
		return true
	})
	return deleted
}
