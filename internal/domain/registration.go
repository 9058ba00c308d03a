package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the payment state of a registration.
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCompleted RegistrationStatus = "completed"
)

// Valid reports whether s is a known registration status.
func (s RegistrationStatus) Valid() bool {
	return s == RegistrationPending || s == RegistrationCompleted
}

// Registration is a purchased conference pass.
// swagger:model Registration
type Registration struct {
	ID                  string             `json:"id"`
	PassType            string             `json:"passType"`
	PassID              string             `json:"passId"`
	FullName            string             `json:"fullName"`
	Email               string             `json:"email"`
	Phone               string             `json:"phone"`
	Organization        string             `json:"organization"`
	Country             string             `json:"country"`
	DietaryRequirements string             `json:"dietaryRequirements,omitempty"`
	CouponCode          string             `json:"couponCode,omitempty"`
	Amount              int                `json:"amount"`
	Currency            string             `json:"currency"`
	PaymentReference    string             `json:"paymentReference,omitempty"`
	Status              RegistrationStatus `json:"status"`
	RegisteredAt        time.Time          `json:"registeredAt"`
}

// RegistrationInput holds the fields of a new registration.
type RegistrationInput struct {
	PassType            string `json:"passType"`
	PassID              string `json:"passId"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Organization        string `json:"organization"`
	Country             string `json:"country"`
	DietaryRequirements string `json:"dietaryRequirements"`
	CouponCode          string `json:"couponCode"`
	Amount              int    `json:"amount"`
	Currency            string `json:"currency"`
	PaymentReference    string `json:"paymentReference"`
}

// RegistrationRepository is the mutation surface for registrations.
type RegistrationRepository interface {
	GetAll(ctx context.Context) []*Registration
	Create(ctx context.Context, in RegistrationInput) (*Registration, error)
	UpdateStatus(ctx context.Context, id string, status RegistrationStatus) (*Registration, error)
}
