package domain

import (
	"context"
	"time"
)

// ApplicationTrack is the role a leadership applicant is applying for.
type ApplicationTrack string

const (
	TrackAdvisor             ApplicationTrack = "advisor"
	TrackOrganizingCommittee ApplicationTrack = "organizing_committee"
	TrackSpeaker             ApplicationTrack = "speaker"
)

// Valid reports whether t is a known application track.
func (t ApplicationTrack) Valid() bool {
	switch t {
	case TrackAdvisor, TrackOrganizingCommittee, TrackSpeaker:
		return true
	}
	return false
}

// ApplicationStatus is the review state of a leadership application.
type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "new"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// LeadershipApplication is an application to join as advisor, organizer or speaker.
// swagger:model LeadershipApplication
type LeadershipApplication struct {
	ID            string            `json:"id"`
	Track         ApplicationTrack  `json:"track"`
	FullName      string            `json:"fullName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Whatsapp      string            `json:"whatsapp"`
	Title         string            `json:"title"`
	Organization  string            `json:"organization"`
	Location      string            `json:"location"`
	SpeakerType   SpeakerType       `json:"speakerType,omitempty"`
	Bio           string            `json:"bio"`
	ProfileImage  string            `json:"profileImage"`
	LinkedinURL   string            `json:"linkedinUrl"`
	FacebookURL   string            `json:"facebookUrl"`
	TwitterURL    string            `json:"twitterUrl"`
	LinkedinID    string            `json:"linkedinId"`
	FacebookID    string            `json:"facebookId"`
	TwitterHandle string            `json:"twitterHandle"`
	SubmittedAt   time.Time         `json:"submittedAt"`
	Status        ApplicationStatus `json:"status"`
}

// LeadershipApplicationInput holds the applicant-supplied fields.
type LeadershipApplicationInput struct {
	Track         ApplicationTrack `json:"track"`
	FullName      string           `json:"fullName"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Whatsapp      string           `json:"whatsapp"`
	Title         string           `json:"title"`
	Organization  string           `json:"organization"`
	Location      string           `json:"location"`
	SpeakerType   SpeakerType      `json:"speakerType"`
	Bio           string           `json:"bio"`
	ProfileImage  string           `json:"profileImage"`
	LinkedinURL   string           `json:"linkedinUrl"`
	FacebookURL   string           `json:"facebookUrl"`
	TwitterURL    string           `json:"twitterUrl"`
	LinkedinID    string           `json:"linkedinId"`
	FacebookID    string           `json:"facebookId"`
	TwitterHandle string           `json:"twitterHandle"`
}

// LeadershipApplicationPatch enumerates the fields an admin may edit. Status has its own operation.
type LeadershipApplicationPatch struct {
	Track         *ApplicationTrack `json:"track,omitempty"`
	FullName      *string           `json:"fullName,omitempty"`
	Email         *string           `json:"email,omitempty"`
	Phone         *string           `json:"phone,omitempty"`
	Whatsapp      *string           `json:"whatsapp,omitempty"`
	Title         *string           `json:"title,omitempty"`
	Organization  *string           `json:"organization,omitempty"`
	Location      *string           `json:"location,omitempty"`
	SpeakerType   *SpeakerType      `json:"speakerType,omitempty"`
	Bio           *string           `json:"bio,omitempty"`
	ProfileImage  *string           `json:"profileImage,omitempty"`
	LinkedinURL   *string           `json:"linkedinUrl,omitempty"`
	FacebookURL   *string           `json:"facebookUrl,omitempty"`
	TwitterURL    *string           `json:"twitterUrl,omitempty"`
	LinkedinID    *string           `json:"linkedinId,omitempty"`
	FacebookID    *string           `json:"facebookId,omitempty"`
	TwitterHandle *string           `json:"twitterHandle,omitempty"`
}

// LeadershipApplicationRepository is the mutation surface for leadership applications.
type LeadershipApplicationRepository interface {
	GetAll(ctx context.Context) []*LeadershipApplication
	GetByID(ctx context.Context, id string) (*LeadershipApplication, error)
	Create(ctx context.Context, in LeadershipApplicationInput) (*LeadershipApplication, error)
	Update(ctx context.Context, id string, patch LeadershipApplicationPatch) (*LeadershipApplication, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (*LeadershipApplication, error)
	// PromoteToSpeaker creates a speaker from a speaker-track application and approves it.
	PromoteToSpeaker(ctx context.Context, id string) (*Speaker, error)
	// PromoteToCommittee creates a committee member from an advisor or organizing_committee
	// application and approves it.
	PromoteToCommittee(ctx context.Context, id string) (*CommitteeMember, error)
	Delete(ctx context.Context, id string) bool
}

// SpeakerApplication is the legacy flat view of a speaker-track leadership application.
// swagger:model SpeakerApplication
type SpeakerApplication struct {
	ID           string            `json:"id"`
	FullName     string            `json:"fullName"`
	Email        string            `json:"email"`
	Title        string            `json:"title"`
	Organization string            `json:"organization"`
	Location     string            `json:"location"`
	Type         SpeakerType       `json:"type"`
	Bio          string            `json:"bio"`
	ImageFile    string            `json:"imageFile"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	Status       ApplicationStatus `json:"status"`
}

// SpeakerApplicationInput holds the fields of a legacy speaker application.
type SpeakerApplicationInput struct {
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	Title        string      `json:"title"`
	Organization string      `json:"organization"`
	Location     string      `json:"location"`
	Type         SpeakerType `json:"type"`
	Bio          string      `json:"bio"`
	ImageFile    string      `json:"imageFile"`
}

// SpeakerApplicationFromLeadership projects a leadership application onto the legacy view.
// An empty speaker type reads as "session".
func SpeakerApplicationFromLeadership(a *LeadershipApplication) *SpeakerApplication {
	t := a.SpeakerType
	if t == "" {
		t = SpeakerTypeSession
	}
	return &SpeakerApplication{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		Title:        a.Title,
		Organization: a.Organization,
		Location:     a.Location,
		Type:         t,
		Bio:          a.Bio,
		ImageFile:    a.ProfileImage,
		SubmittedAt:  a.SubmittedAt,
		Status:       a.Status,
	}
}

// SpeakerApplicationRepository views speaker-track leadership applications in the legacy shape.
// Operations on an id whose application is not on the speaker track behave as if it were absent.
type SpeakerApplicationRepository interface {
	GetAll(ctx context.Context) []*SpeakerApplication
	Create(ctx context.Context, in SpeakerApplicationInput) (*SpeakerApplication, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (*SpeakerApplication, error)
	PromoteToSpeaker(ctx context.Context, id string) (*Speaker, error)
	Delete(ctx context.Context, id string) bool
}
