package store

import (
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// RegistrationRepo manages pass registrations.
type RegistrationRepo struct{ s *Store }

var _ domain.RegistrationRepository = (*RegistrationRepo)(nil)

func (s *Store) Registrations() *RegistrationRepo { return &RegistrationRepo{s: s} }

func (r *RegistrationRepo) GetAll(_ context.Context) []*domain.Registration {
	var out []*domain.Registration
	r.s.read(func(st *State) { out = copies(st.Registrations) })
	return out
}

// Create stores a registration in pending status.
func (r *RegistrationRepo) Create(ctx context.Context, in domain.RegistrationInput) (*domain.Registration, error) {
	if in.Amount < 0 {
		return nil, fmt.Errorf("registration amount %d: %w", in.Amount, domain.ErrInvalidInput)
	}
	reg := domain.Registration{
		ID:                  r.s.newID(),
		PassType:            in.PassType,
		PassID:              in.PassID,
		FullName:            in.FullName,
		Email:               in.Email,
		Phone:               in.Phone,
		Organization:        in.Organization,
		Country:             in.Country,
		DietaryRequirements: in.DietaryRequirements,
		CouponCode:          in.CouponCode,
		Amount:              in.Amount,
		Currency:            in.Currency,
		PaymentReference:    in.PaymentReference,
		Status:              domain.RegistrationPending,
		RegisteredAt:        r.s.now(),
	}
	r.s.mutate(ctx, "registrations.create", func(st *State) bool {
		st.Registrations = append(st.Registrations, reg)
		return true
	})
	return &reg, nil
}

func (r *RegistrationRepo) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("registration status %q: %w", status, domain.ErrInvalidInput)
	}
	var out *domain.Registration
	r.s.mutate(ctx, "registrations.update_status", func(st *State) bool {
		i := slices.IndexFunc(st.Registrations, func(reg domain.Registration) bool { return reg.ID == id })
		if i < 0 {
			return false
		}
		reg := &st.Registrations[i]
		changed := set(&reg.Status, &status)
		c := *reg
		out = &c
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("registration %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}
