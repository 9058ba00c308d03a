package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"agtechsummit/internal/domain"
)

// CommitteeMemberRepo manages advisory and organizing committee members.
type CommitteeMemberRepo struct{ s *Store }

var _ domain.CommitteeMemberRepository = (*CommitteeMemberRepo)(nil)

func (s *Store) CommitteeMembers() *CommitteeMemberRepo { return &CommitteeMemberRepo{s: s} }

func committeeIndex(st *State, id string) int {
	return slices.IndexFunc(st.CommitteeMembers, func(m domain.CommitteeMember) bool { return m.ID == id })
}

func maxCommitteeOrder(st *State) int {
	highest := 0
	for _, m := range st.CommitteeMembers {
		highest = max(highest, m.Order)
	}
	return highest
}

// GetAll returns members in display order: by order, then by creation time.
func (r *CommitteeMemberRepo) GetAll(_ context.Context) []*domain.CommitteeMember {
	var out []*domain.CommitteeMember
	r.s.read(func(st *State) { out = copies(st.CommitteeMembers) })
	slices.SortStableFunc(out, func(a, b *domain.CommitteeMember) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (r *CommitteeMemberRepo) GetByID(_ context.Context, id string) (*domain.CommitteeMember, error) {
	var out *domain.CommitteeMember
	r.s.read(func(st *State) {
		if i := committeeIndex(st, id); i >= 0 {
			m := st.CommitteeMembers[i]
			out = &m
		}
	})
	if out == nil {
		return nil, fmt.Errorf("committee member %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

// Create appends a member. A zero order places it after the current highest order.
func (r *CommitteeMemberRepo) Create(ctx context.Context, in domain.CommitteeMemberInput) (*domain.CommitteeMember, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("committee category %q: %w", in.Category, domain.ErrInvalidInput)
	}
	m := domain.CommitteeMember{
		ID:            r.s.newID(),
		Category:      in.Category,
		Name:          in.Name,
		Role:          in.Role,
		Organization:  in.Organization,
		Location:      in.Location,
		Bio:           in.Bio,
		Image:         in.Image,
		SocialProfile: in.SocialProfile,
		Order:         in.Order,
		CreatedAt:     r.s.now(),
	}
	r.s.mutate(ctx, "committee_members.create", func(st *State) bool {
		if m.Order == 0 {
			m.Order = maxCommitteeOrder(st) + 1
		}
		st.CommitteeMembers = append(st.CommitteeMembers, m)
		return true
	})
	return &m, nil
}

func (r *CommitteeMemberRepo) Update(ctx context.Context, id string, patch domain.CommitteeMemberPatch) (*domain.CommitteeMember, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, fmt.Errorf("committee category %q: %w", *patch.Category, domain.ErrInvalidInput)
	}
	var out *domain.CommitteeMember
	r.s.mutate(ctx, "committee_members.update", func(st *State) bool {
		i := committeeIndex(st, id)
		if i < 0 {
			return false
		}
		m := &st.CommitteeMembers[i]
		changed := set(&m.Category, patch.Category)
		changed = set(&m.Name, patch.Name) || changed
		changed = set(&m.Role, patch.Role) || changed
		changed = set(&m.Organization, patch.Organization) || changed
		changed = set(&m.Location, patch.Location) || changed
		changed = set(&m.Bio, patch.Bio) || changed
		changed = set(&m.Image, patch.Image) || changed
		changed = patch.SocialProfilePatch.Apply(&m.SocialProfile) || changed
		changed = set(&m.Order, patch.Order) || changed
		c := *m
		out = &c
		return changed
	})
	if out == nil {
		return nil, fmt.Errorf("committee member %s: %w", id, domain.ErrNotFound)
	}
	return out, nil
}

func (r *CommitteeMemberRepo) Delete(ctx context.Context, id string) bool {
	deleted := false
	r.s.mutate(ctx, "committee_members.delete", func(st *State) bool {
		i := committeeIndex(st, id)
		if i < 0 {
			return false
		}
		st.CommitteeMembers = slices.Delete(st.CommitteeMembers, i, i+1)
		deleted = true
		return true
	})
	return deleted
}
