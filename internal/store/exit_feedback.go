package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// ExitFeedbackRepo manages registration abandonment feedback.
type ExitFeedbackRepo struct{ s *Store }

var _ domain.ExitFeedbackRepository = (*ExitFeedbackRepo)(nil)

func (s *Store) ExitFeedback() *ExitFeedbackRepo { return &ExitFeedbackRepo{s: s} }

func (r *ExitFeedbackRepo) GetAll(_ context.Context) []*domain.ExitFeedback {
	var out []*domain.ExitFeedback
	r.s.read(func(st *State) { out = copies(st.ExitFeedback) })
	return out
}

func (r *ExitFeedbackRepo) Create(ctx context.Context, in domain.ExitFeedbackInput) (*domain.ExitFeedback, error) {
	if in.Step < 0 {
		return nil, fmt.Errorf("exit feedback step %d: %w", in.Step, domain.ErrInvalidInput)
	}
	f := domain.ExitFeedback{
		ID:          r.s.newID(),
		Step:        in.Step,
		Reason:      in.Reason,
		OtherReason: in.OtherReason,
		Email:       in.Email,
		SubmittedAt: r.s.now(),
	}
	r.s.mutate(ctx, "exit_feedback.create", func(st *State) bool {
		st.ExitFeedback = append(st.ExitFeedback, f)
		return true
	})
	return &f, nil
}

func (r *ExitFeedbackRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "exit_feedback.delete", func(st *State) bool {
		i := slices.IndexFunc(st.ExitFeedback, func(f domain.ExitFeedback) bool { return f.ID == id })
		if i < 0 {
			return false
		}
		st.ExitFeedback = slices.Delete(st.ExitFeedback, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
