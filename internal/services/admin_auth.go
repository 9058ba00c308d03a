package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"agtechsummit/internal/domain"
)

type adminAuthService struct {
	email        string
	passwordHash string
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	expiry       time.Duration
	now          func() time.Time
}

// NewAdminAuthService hashes the configured admin password once and returns a service
// that checks logins against it.
func NewAdminAuthService(email, password string, hasher domain.PasswordHasher, issuer domain.TokenIssuer, expiry time.Duration) (domain.AdminAuthService, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("admin credentials are required: %w", domain.ErrInvalidInput)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &adminAuthService{
		email:        email,
		passwordHash: hash,
		hasher:       hasher,
		issuer:       issuer,
		expiry:       expiry,
		now:          time.Now,
	}, nil
}

func (s *adminAuthService) Login(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	// The hash is compared even when the email does not match.
	passErr := s.hasher.Compare(s.passwordHash, password)
	if !emailOK || passErr != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	expiresAt := s.now().Add(s.expiry)
	token, err := s.issuer.Issue(s.email, s.email, []string{domain.AdminRole}, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AdminSession{Token: token, Email: s.email, ExpiresAt: expiresAt}, nil
}
