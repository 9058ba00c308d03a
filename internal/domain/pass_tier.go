package domain

import "context"

// PassMode tells whether a pass is for on-site or remote attendance.
type PassMode string

const (
	PassModeInPerson PassMode = "in-person"
	PassModeVirtual  PassMode = "virtual"
)

// PassTier is a purchasable pass with a price per currency code.
// swagger:model PassTier
type PassTier struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Mode        PassMode       `json:"mode"`
	Prices      map[string]int `json:"prices"`
	Badge       string         `json:"badge"`
	BadgeColor  string         `json:"badgeColor"`
	Description string         `json:"description"`
}

// Clone returns a deep copy of the tier.
func (t PassTier) Clone() *PassTier {
	c := t
	c.Prices = make(map[string]int, len(t.Prices))
	for k, v := range t.Prices {
		c.Prices[k] = v
	}
	return &c
}

// PassTierRepository is the mutation surface for pass tiers.
type PassTierRepository interface {
	GetAll(ctx context.Context) []*PassTier
	GetByID(ctx context.Context, id string) (*PassTier, error)
	// UpdatePrices replaces the whole price map of the tier.
	UpdatePrices(ctx context.Context, id string, prices map[string]int) (*PassTier, error)
}
