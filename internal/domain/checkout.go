package domain

import (
	"context"
	"time"
)

// GeoLocator resolves the caller's country from an external geo-IP service.
type GeoLocator interface {
	LookupCountry(ctx context.Context) (string, error)
}

// PaymentIntent describes a charge for a pass.
type PaymentIntent struct {
	PassID   string
	Email    string
	Amount   int
	Currency string
}

// PaymentReceipt is returned by a successful charge.
type PaymentReceipt struct {
	Reference string
	ChargedAt time.Time
}

// PaymentProcessor charges a payment intent. Failure is opaque.
type PaymentProcessor interface {
	Charge(ctx context.Context, intent PaymentIntent) (*PaymentReceipt, error)
}

// Quote is the priced breakdown of a pass in one currency.
// swagger:model Quote
type Quote struct {
	PassID         string `json:"passId"`
	PassName       string `json:"passName"`
	Currency       string `json:"currency"`
	Price          int    `json:"price"`
	PlatformFee    int    `json:"platformFee"`
	Total          int    `json:"total"`
	FormattedPrice string `json:"formattedPrice"`
	FormattedTotal string `json:"formattedTotal"`
}

// CheckoutRequest is the registration form submitted at the end of checkout.
type CheckoutRequest struct {
	PassID              string `json:"passId"`
	Currency            string `json:"currency"`
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Organization        string `json:"organization"`
	Country             string `json:"country"`
	DietaryRequirements string `json:"dietaryRequirements"`
	CouponCode          string `json:"couponCode"`
}

// CheckoutResult pairs the created registration with the quote it was charged at.
type CheckoutResult struct {
	Registration *Registration `json:"registration"`
	Quote        *Quote        `json:"quote"`
}

// CheckoutService prices passes and turns a paid checkout into a registration.
type CheckoutService interface {
	DetectCurrency(ctx context.Context) string
	Quote(ctx context.Context, passID, currency string) (*Quote, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}
