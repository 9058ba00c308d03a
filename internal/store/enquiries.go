package store

import (
	"context"
	"slices"

	"agtechsummit/internal/domain"
)

// EnquiryRepo manages contact-form enquiries.
type EnquiryRepo struct{ s *Store }

var _ domain.EnquiryRepository = (*EnquiryRepo)(nil)

func (s *Store) Enquiries() *EnquiryRepo { return &EnquiryRepo{s: s} }

func (r *EnquiryRepo) GetAll(_ context.Context) []*domain.Enquiry {
	var out []*domain.Enquiry
	r.s.read(func(st *State) { out = copies(st.Enquiries) })
	return out
}

func (r *EnquiryRepo) Create(ctx context.Context, in domain.EnquiryInput) (*domain.Enquiry, error) {
	e := domain.Enquiry{
		ID:          r.s.newID(),
		FullName:    in.FullName,
		Email:       in.Email,
		Whatsapp:    in.Whatsapp,
		Country:     in.Country,
		Message:     in.Message,
		SubmittedAt: r.s.now(),
	}
	r.s.mutate(ctx, "enquiries.create", func(st *State) bool {
		st.Enquiries = append(st.Enquiries, e)
		return true
	})
	return &e, nil
}

func (r *EnquiryRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "enquiries.delete", func(st *State) bool {
		i := slices.IndexFunc(st.Enquiries, func(e domain.Enquiry) bool { return e.ID == id })
		if i < 0 {
			return false
		}
		st.Enquiries = slices.Delete(st.Enquiries, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
