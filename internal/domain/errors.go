package domain

import "errors"

// Sentinel errors shared by repositories and services. Expected conditions are
// returned as values; callers match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPromotion = errors.New("application track does not allow this promotion")
	ErrAlreadyApproved  = errors.New("application already approved")
	ErrUnauthorized     = errors.New("invalid credentials")
	ErrPaymentFailed    = errors.New("payment failed")
)
