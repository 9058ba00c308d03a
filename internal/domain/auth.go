package domain

import (
	"context"
	"time"
)

// AdminRole is the only role carried by dashboard tokens.
const AdminRole = "admin"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed tokens for an authenticated subject.
type TokenIssuer interface {
	Issue(subject, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AdminSession is returned by a successful admin login.
// swagger:model AdminSession
type AdminSession struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminAuthService authenticates dashboard users.
type AdminAuthService interface {
	Login(ctx context.Context, email, password string) (*AdminSession, error)
}
