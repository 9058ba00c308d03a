package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// PaperSubmissionRepo manages paper submissions.
type PaperSubmissionRepo struct{ s *Store }

var _ domain.PaperSubmissionRepository = (*PaperSubmissionRepo)(nil)

func (s *Store) PaperSubmissions() *PaperSubmissionRepo { return &PaperSubmissionRepo{s: s} }

func paperIndex(st *State, id string) int {
	return slices.IndexFunc(st.PaperSubmissions, func(p domain.PaperSubmission) bool { return p.ID == id })
}

func (r *PaperSubmissionRepo) GetAll(_ context.Context) []*domain.PaperSubmission {
	var out []*domain.PaperSubmission
	r.s.read(func(st *State) { out = copies(st.PaperSubmissions) })
	return out
}

func (r *PaperSubmissionRepo) GetByID(_ context.Context, id string) (*domain.PaperSubmission, error) {
	var out *domain.PaperSubmission
	r.s.read(func(st *State) {
		if i := paperIndex(st, id); i >= 0 {
			p := st.PaperSubmissions[i]
			out = &p
		}
	})
	if out == nil {
		return nil, fmt.Errorf("paper submission %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

// Create stores a new submission in pending status.
func (r *PaperSubmissionRepo) Create(ctx context.Context, in domain.PaperSubmissionInput) (*domain.PaperSubmission, error) {
	p := domain.PaperSubmission{
		ID:            r.s.newID(),
		AuthorName:    in.AuthorName,
		Email:         in.Email,
		Phone:         in.Phone,
		Country:       in.Country,
		PaperTitle:    in.PaperTitle,
		Organization:  in.Organization,
		ResearchTrack: in.ResearchTrack,
		CoAuthors:     in.CoAuthors,
		AbstractFile:  in.AbstractFile,
		Status:        domain.PaperStatusPending,
		SubmittedAt:   r.s.now(),
	}
	r.s.mutate(ctx, "paper_submissions.create", func(st *State) bool {
		st.PaperSubmissions = append(st.PaperSubmissions, p)
		return true
	})
	return &p, nil
}

func (r *PaperSubmissionRepo) UpdateStatus(ctx context.Context, id string, status domain.PaperSubmissionStatus) (*domain.PaperSubmission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("paper status %q: %w", status, domain.ErrInvalidInput)
	}
	var out *domain.PaperSubmission
	r.s.mutate(ctx, "paper_submissions.update_status", func(st *State) bool {
		i := paperIndex(st, id)
		if i < 0 {
			return false
		}
		p := &st.PaperSubmissions[i]
		changed := set(&p.Status, &status)
		c := *p
		out = &c
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("paper submission %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *PaperSubmissionRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "paper_submissions.delete", func(st *State) bool {
		i := paperIndex(st, id)
		if i < 0 {
			return false
		}
		st.PaperSubmissions = slices.Delete(st.PaperSubmissions, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
