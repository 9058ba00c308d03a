package domain

import "context"

// SubmissionService handles the public forms.
type SubmissionService interface {
	SubmitPaper(ctx context.Context, in PaperSubmissionInput) (*PaperSubmission, error)
	SubmitEnquiry(ctx context.Context, in EnquiryInput) (*Enquiry, error)
	ApplyForLeadership(ctx context.Context, in LeadershipApplicationInput) (*LeadershipApplication, error)
	ApplyAsSpeaker(ctx context.Context, in SpeakerApplicationInput) (*SpeakerApplication, error)
	SubmitExitFeedback(ctx context.Context, in ExitFeedbackInput) (*ExitFeedback, error)
}

// SessionFilter narrows an agenda listing. Empty fields match everything.
type SessionFilter struct {
	Day   SessionDay
	Track string
}

// ContentService manages the public site content: speakers, committee, agenda and passes.
type ContentService interface {
	ListSpeakers(ctx context.Context, t SpeakerType) ([]*Speaker, error)
	GetSpeaker(ctx context.Context, id string) (*Speaker, error)
	CreateSpeaker(ctx context.Context, in SpeakerInput) (*Speaker, error)
	UpdateSpeaker(ctx context.Context, id string, patch SpeakerPatch) (*Speaker, error)
	DeleteSpeaker(ctx context.Context, id string) error

	ListCommitteeMembers(ctx context.Context, category CommitteeCategory) ([]*CommitteeMember, error)
	CreateCommitteeMember(ctx context.Context, in CommitteeMemberInput) (*CommitteeMember, error)
	UpdateCommitteeMember(ctx context.Context, id string, patch CommitteeMemberPatch) (*CommitteeMember, error)
	DeleteCommitteeMember(ctx context.Context, id string) error

	ListSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)
	CreateSession(ctx context.Context, in SessionInput) (*Session, error)
	UpdateSession(ctx context.Context, id string, patch SessionPatch) (*Session, error)
	DeleteSession(ctx context.Context, id string) error

	ListPassTiers(ctx context.Context) ([]*PassTier, error)
	UpdatePassPrices(ctx context.Context, id string, prices map[string]int) (*PassTier, error)
}

// ReviewService is the admin dashboard's view over submitted data.
type ReviewService interface {
	Stats(ctx context.Context) DashboardStats

	ListPaperSubmissions(ctx context.Context) []*PaperSubmission
	SetPaperSubmissionStatus(ctx context.Context, id string, status PaperSubmissionStatus) (*PaperSubmission, error)
	DeletePaperSubmission(ctx context.Context, id string) error

	ListEnquiries(ctx context.Context) []*Enquiry
	DeleteEnquiry(ctx context.Context, id string) error

	ListLeadershipApplications(ctx context.Context, track ApplicationTrack) []*LeadershipApplication
	UpdateLeadershipApplication(ctx context.Context, id string, patch LeadershipApplicationPatch) (*LeadershipApplication, error)
	SetLeadershipApplicationStatus(ctx context.Context, id string, status ApplicationStatus) (*LeadershipApplication, error)
	// Promote turns an application into a speaker or committee member depending on its track.
	Promote(ctx context.Context, id string) (*Promotion, error)
	DeleteLeadershipApplication(ctx context.Context, id string) error

	ListSpeakerApplications(ctx context.Context) []*SpeakerApplication

	ListRegistrations(ctx context.Context, p PaginationParams) ([]*Registration, int)
	SetRegistrationStatus(ctx context.Context, id string, status RegistrationStatus) (*Registration, error)

	ListExitFeedback(ctx context.Context) []*ExitFeedback
	DeleteExitFeedback(ctx context.Context, id string) error
}

// Promotion is the result of promoting an application. Exactly one field is set.
// swagger:model Promotion
type Promotion struct {
	Speaker         *Speaker         `json:"speaker,omitempty"`
	CommitteeMember *CommitteeMember `json:"committeeMember,omitempty"`
}
