package domain

import (
	"context"
	"time"
)

// Exit reasons offered by the registration flow.
const (
	ExitReasonPrice     = "price"
	ExitReasonUncertain = "uncertain"
	ExitReasonInfo      = "info"
	ExitReasonCompare   = "compare"
	ExitReasonPayment   = "payment"
	ExitReasonOther     = "other"
)

// ExitFeedback records why a visitor abandoned registration at a given step.
// swagger:model ExitFeedback
type ExitFeedback struct {
	ID          string    `json:"id"`
	Step        int       `json:"step"`
	Reason      string    `json:"reason"`
	OtherReason string    `json:"otherReason,omitempty"`
	Email       string    `json:"email,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ExitFeedbackInput holds the fields of a new exit feedback entry.
type ExitFeedbackInput struct {
	Step        int    `json:"step"`
	Reason      string `json:"reason"`
	OtherReason string `json:"otherReason"`
	Email       string `json:"email"`
}

// ExitFeedbackRepository is the mutation surface for exit feedback.
type ExitFeedbackRepository interface {
	GetAll(ctx context.Context) []*ExitFeedback
	Create(ctx context.Context, in ExitFeedbackInput) (*ExitFeedback, error)
	Delete(ctx context.Context, id string) bool
}
