package store

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"agtechsummit/internal/domain"
)

// PassTierRepo manages purchasable pass tiers.
type PassTierRepo struct{ s *Store }

var _ domain.PassTierRepository = (*PassTierRepo)(nil)

func (s *Store) PassTiers() *PassTierRepo { return &PassTierRepo{s: s} }

// GetAll returns deep copies; mutating a returned price map never touches the store.
func (r *PassTierRepo) GetAll(_ context.Context) []*domain.PassTier {
	var out []*domain.PassTier
	r.s.read(func(st *State) {
		out = make([]*domain.PassTier, 0, len(st.PassTiers))
		for _, t := range st.PassTiers {
			out = append(out, t.Clone())
		}
	})
	return out
}

func (r *PassTierRepo) GetByID(_ context.Context, id string) (*domain.PassTier, error) {
	var out *domain.PassTier
	r.s.read(func(st *State) {
		if i := slices.IndexFunc(st.PassTiers, func(t domain.PassTier) bool { return t.ID == id }); i >= 0 {
			out = st.PassTiers[i].Clone()
		}
	})
	if out == nil {
		return nil, fmt.Errorf("pass tier %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

// UpdatePrices replaces the tier's price map with prices. Currencies missing from prices
// are dropped from the tier.
func (r *PassTierRepo) UpdatePrices(ctx context.Context, id string, prices map[string]int) (*domain.PassTier, error) {
	for code, p := range prices {
		if p < 0 {
			return nil, fmt.Errorf("price %s %d: %w", code, p, domain.ErrInvalidInput)
		}
	}
	var out *domain.PassTier
	r.s.mutate(ctx, "pass_tiers.update_prices", func(st *State) bool {
		i := slices.IndexFunc(st.PassTiers, func(t domain.PassTier) bool { return t.ID == id })
		if i < 0 {
			return false
		}
		t := &st.PassTiers[i]
		changed := !maps.Equal(t.Prices, prices)
		if changed {
			t.Prices = maps.Clone(prices)
			if t.Prices == nil {
				t.Prices = map[string]int{}
			}
		}
		out = t.Clone()
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("pass tier %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}
