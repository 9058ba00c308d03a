package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// SessionRepo manages the agenda.
type SessionRepo struct{ s *Store }

var _ domain.SessionRepository = (*SessionRepo)(nil)

func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s: s} }

func sessionIndex(st *State, id string) int {
	return slices.IndexFunc(st.Sessions, func(se domain.Session) bool { return se.ID == id })
}

func (r *SessionRepo) GetAll(_ context.Context) []*domain.Session {
	var out []*domain.Session
	r.s.read(func(st *State) { out = copies(st.Sessions) })
	return out
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*domain.Session, error) {
	var out *domain.Session
	r.s.read(func(st *State) {
		if i := sessionIndex(st, id); i >= 0 {
			se := st.Sessions[i]
			out = &se
		}
	})
	if out == nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *SessionRepo) filter(keep func(domain.Session) bool) []*domain.Session {
	out := []*domain.Session{}
	r.s.read(func(st *State) {
		for _, se := range st.Sessions {
			if keep(se) {
				c := se
				out = append(out, &c)
			}
		}
	})
	return out
}

func (r *SessionRepo) GetByDay(_ context.Context, day domain.SessionDay) []*domain.Session {
	return r.filter(func(se domain.Session) bool { return se.Day == day })
}

func (r *SessionRepo) GetByTrack(_ context.Context, track string) []*domain.Session {
	return r.filter(func(se domain.Session) bool { return se.Track == track })
}

func validateSession(day *domain.SessionDay, typ *domain.SessionType) error {
	if day != nil && !day.Valid() {
		return fmt.Errorf("session day %q: %w", *day, domain.ErrInvalidInput)
	}
	if typ != nil && !typ.Valid() {
		return fmt.Errorf("session type %q: %w", *typ, domain.ErrInvalidInput)
	}
	return nil
}

// Create appends a session. The speaker id is stored as given; it is not checked against
// the speaker list.
func (r *SessionRepo) Create(ctx context.Context, in domain.SessionInput) (*domain.Session, error) {
	if err := validateSession(&in.Day, &in.Type); err != nil {
		return nil, err
	}
	se := domain.Session{
		ID:          r.s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Time:        in.Time,
		EndTime:     in.EndTime,
		Day:         in.Day,
		Track:       in.Track,
		SpeakerID:   in.SpeakerID,
		Venue:       in.Venue,
		Type:        in.Type,
	}
	r.s.mutate(ctx, "sessions.create", func(st *State) bool {
		st.Sessions = append(st.Sessions, se)
		return true
	})
	return &se, nil
}

func (r *SessionRepo) Update(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	if err := validateSession(patch.Day, patch.Type); err != nil {
		return nil, err
	}
	var out *domain.Session
	r.s.mutate(ctx, "sessions.update", func(st *State) bool {
		i := sessionIndex(st, id)
		if i < 0 {
			return false
		}
		se := &st.Sessions[i]
		changed := set(&se.Title, patch.Title)
		changed = set(&se.Description, patch.Description) || changed
		changed = set(&se.Time, patch.Time) || changed
		changed = set(&se.EndTime, patch.EndTime) || changed
		changed = set(&se.Day, patch.Day) || changed
		changed = set(&se.Track, patch.Track) || changed
		changed = set(&se.SpeakerID, patch.SpeakerID) || changed
		changed = set(&se.Venue, patch.Venue) || changed
		changed = set(&se.Type, patch.Type) || changed
		c := *se
		out = &c
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "sessions.delete", func(st *State) bool {
		i := sessionIndex(st, id)
		if i < 0 {
			return false
		}
		st.Sessions = slices.Delete(st.Sessions, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
