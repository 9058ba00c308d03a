package domain

import (
	"context"
	"time"
)

// CommitteeCategory groups committee members on the public page.
type CommitteeCategory string

const (
	CommitteeAdvisory   CommitteeCategory = "advisory"
	CommitteeOrganizing CommitteeCategory = "organizing"
)

// Valid reports whether c is a known committee category.
func (c CommitteeCategory) Valid() bool {
	return c == CommitteeAdvisory || c == CommitteeOrganizing
}

// CommitteeMember is a member of the advisory or organizing committee.
// swagger:model CommitteeMember
type CommitteeMember struct {
	ID           string            `json:"id"`
	Category     CommitteeCategory `json:"category"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	Organization string            `json:"organization"`
	Location     string            `json:"location"`
	Bio          string            `json:"bio"`
	Image        string            `json:"image,omitempty"`
	SocialProfile
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommitteeMemberInput holds the fields of a new committee member.
// A zero Order places the member after the current maximum.
type CommitteeMemberInput struct {
	Category     CommitteeCategory `json:"category"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	Organization string            `json:"organization"`
	Location     string            `json:"location"`
	Bio          string            `json:"bio"`
	Image        string            `json:"image"`
	SocialProfile
	Order int `json:"order"`
}

// CommitteeMemberPatch enumerates the mutable fields of a committee member.
type CommitteeMemberPatch struct {
	Category     *CommitteeCategory `json:"category,omitempty"`
	Name         *string            `json:"name,omitempty"`
	Role         *string            `json:"role,omitempty"`
	Organization *string            `json:"organization,omitempty"`
	Location     *string            `json:"location,omitempty"`
	Bio          *string            `json:"bio,omitempty"`
	Image        *string            `json:"image,omitempty"`
	SocialProfilePatch
	Order *int `json:"order,omitempty"`
}

// CommitteeMemberRepository is the mutation surface for committee members.
type CommitteeMemberRepository interface {
	// GetAll returns members sorted by order, then by creation time.
	GetAll(ctx context.Context) []*CommitteeMember
	GetByID(ctx context.Context, id string) (*CommitteeMember, error)
	Create(ctx context.Context, in CommitteeMemberInput) (*CommitteeMember, error)
	Update(ctx context.Context, id string, patch CommitteeMemberPatch) (*CommitteeMember, error)
	Delete(ctx context.Context, id string) bool
}
