package domain

import (
	"context"
	"time"
)

// Enquiry is a contact-form message.
// swagger:model Enquiry
type Enquiry struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Whatsapp    string    `json:"whatsapp"`
	Country     string    `json:"country"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// EnquiryInput holds the caller-supplied fields of a new enquiry.
type EnquiryInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	Country  string `json:"country"`
	Message  string `json:"message"`
}

// EnquiryRepository is the mutation surface for enquiries.
type EnquiryRepository interface {
	GetAll(ctx context.Context) []*Enquiry
	Create(ctx context.Context, in EnquiryInput) (*Enquiry, error)
	Delete(ctx context.Context, id string) bool
}
