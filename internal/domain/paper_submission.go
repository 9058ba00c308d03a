package domain

import (
	"context"
	"time"
)

// PaperSubmissionStatus is the review state of a paper. Transitions are free-form.
type PaperSubmissionStatus string

const (
	PaperStatusPending     PaperSubmissionStatus = "pending"
	PaperStatusUnderReview PaperSubmissionStatus = "under_review"
	PaperStatusAccepted    PaperSubmissionStatus = "accepted"
	PaperStatusRejected    PaperSubmissionStatus = "rejected"
)

// Valid reports whether s is a known paper status.
func (s PaperSubmissionStatus) Valid() bool {
	switch s {
	case PaperStatusPending, PaperStatusUnderReview, PaperStatusAccepted, PaperStatusRejected:
		return true
	}
	return false
}

// PaperSubmission is a research paper submitted through the call for papers.
// swagger:model PaperSubmission
type PaperSubmission struct {
	ID            string                `json:"id"`
	AuthorName    string                `json:"authorName"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Country       string                `json:"country"`
	PaperTitle    string                `json:"paperTitle"`
	Organization  string                `json:"organization"`
	ResearchTrack string                `json:"researchTrack"`
	CoAuthors     string                `json:"coAuthors"`
	AbstractFile  string                `json:"abstractFile,omitempty"`
	Status        PaperSubmissionStatus `json:"status"`
	SubmittedAt   time.Time             `json:"submittedAt"`
}

// PaperSubmissionInput holds the caller-supplied fields of a new submission.
// ID, status and submission time are assigned by the store.
type PaperSubmissionInput struct {
	AuthorName    string `json:"authorName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
	PaperTitle    string `json:"paperTitle"`
	Organization  string `json:"organization"`
	ResearchTrack string `json:"researchTrack"`
	CoAuthors     string `json:"coAuthors"`
	AbstractFile  string `json:"abstractFile"`
}

// PaperSubmissionRepository is the mutation surface for paper submissions.
type PaperSubmissionRepository interface {
	GetAll(ctx context.Context) []*PaperSubmission
	GetByID(ctx context.Context, id string) (*PaperSubmission, error)
	Create(ctx context.Context, in PaperSubmissionInput) (*PaperSubmission, error)
	UpdateStatus(ctx context.Context, id string, status PaperSubmissionStatus) (*PaperSubmission, error)
	Delete(ctx context.Context, id string) bool
}
