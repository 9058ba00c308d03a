package domain

import "context"

// StateBackend is the key-value store the state tree is mirrored into.
// Load returns ErrNotFound when nothing is stored under key.
type StateBackend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// Repositories bundles every entity repository backed by one state tree.
type Repositories struct {
	PaperSubmissions       PaperSubmissionRepository
	Enquiries              EnquiryRepository
	Speakers               SpeakerRepository
	LeadershipApplications LeadershipApplicationRepository
	SpeakerApplications    SpeakerApplicationRepository
	CommitteeMembers       CommitteeMemberRepository
	Sessions               SessionRepository
	Registrations          RegistrationRepository
	ExitFeedback           ExitFeedbackRepository
	PassTiers              PassTierRepository
	Stats                  StatsReader
}
