package domain

import (
	"context"
	"time"
)

// SpeakerType classifies a speaker on the public lineup.
type SpeakerType string

const (
	SpeakerTypeKeynote  SpeakerType = "keynote"
	SpeakerTypeSession  SpeakerType = "session"
	SpeakerTypePanelist SpeakerType = "panelist"
)

// Valid reports whether t is a known speaker type.
func (t SpeakerType) Valid() bool {
	switch t {
	case SpeakerTypeKeynote, SpeakerTypeSession, SpeakerTypePanelist:
		return true
	}
	return false
}

// SocialProfile groups the optional social links shown for speakers and committee members.
// The *ID and handle fields are derived from the URLs when left empty.
type SocialProfile struct {
	Linkedin      string `json:"linkedin,omitempty"`
	Facebook      string `json:"facebook,omitempty"`
	Twitter       string `json:"twitter,omitempty"`
	LinkedinID    string `json:"linkedinId,omitempty"`
	FacebookID    string `json:"facebookId,omitempty"`
	TwitterHandle string `json:"twitterHandle,omitempty"`
	Website       string `json:"website,omitempty"`
}

// SocialProfilePatch lists the social fields an admin update may change.
type SocialProfilePatch struct {
	Linkedin      *string `json:"linkedin,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Twitter       *string `json:"twitter,omitempty"`
	LinkedinID    *string `json:"linkedinId,omitempty"`
	FacebookID    *string `json:"facebookId,omitempty"`
	TwitterHandle *string `json:"twitterHandle,omitempty"`
	Website       *string `json:"website,omitempty"`
}

// Apply copies the non-nil fields of p onto s and reports whether anything changed.
func (p SocialProfilePatch) Apply(s *SocialProfile) bool {
	changed := false
	set := func(dst *string, v *string) {
		if v != nil && *dst != *v {
			*dst = *v
			changed = true
		}
	}
	set(&s.Linkedin, p.Linkedin)
	set(&s.Facebook, p.Facebook)
	set(&s.Twitter, p.Twitter)
	set(&s.LinkedinID, p.LinkedinID)
	set(&s.FacebookID, p.FacebookID)
	set(&s.TwitterHandle, p.TwitterHandle)
	set(&s.Website, p.Website)
	return changed
}

// Speaker is a person on the public lineup.
// swagger:model Speaker
type Speaker struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	Bio      string      `json:"bio"`
	Type     SpeakerType `json:"type"`
	Image    string      `json:"image,omitempty"`
	SocialProfile
	CreatedAt time.Time `json:"createdAt"`
}

// SpeakerInput holds the fields of a new speaker.
type SpeakerInput struct {
	Name     string      `json:"name"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	Bio      string      `json:"bio"`
	Type     SpeakerType `json:"type"`
	Image    string      `json:"image"`
	SocialProfile
}

// SpeakerPatch enumerates the mutable fields of a speaker. Nil fields are left untouched.
type SpeakerPatch struct {
	Name     *string      `json:"name,omitempty"`
	Title    *string      `json:"title,omitempty"`
	Company  *string      `json:"company,omitempty"`
	Location *string      `json:"location,omitempty"`
	Bio      *string      `json:"bio,omitempty"`
	Type     *SpeakerType `json:"type,omitempty"`
	Image    *string      `json:"image,omitempty"`
	SocialProfilePatch
}

// SpeakerRepository is the mutation surface for speakers.
type SpeakerRepository interface {
	GetAll(ctx context.Context) []*Speaker
	GetByID(ctx context.Context, id string) (*Speaker, error)
	GetByType(ctx context.Context, t SpeakerType) []*Speaker
	Create(ctx context.Context, in SpeakerInput) (*Speaker, error)
	Update(ctx context.Context, id string, patch SpeakerPatch) (*Speaker, error)
	// Delete removes the speaker and clears speakerId on every session that referenced it.
	Delete(ctx context.Context, id string) bool
}
