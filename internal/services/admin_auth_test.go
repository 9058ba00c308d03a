package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/adapters/auth"
	"agtechsummit/internal/domain"
)

func TestAdminAuthService_Login(t *testing.T) {
	jwt := auth.NewJWT("secret")
	svc, err := NewAdminAuthService("Admin@AgTechSummit.in", "admin123", auth.NewBcryptHasher(4), jwt, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid", email: "admin@agtechsummit.in", password: "admin123"},
		{name: "case and space insensitive email", email: "  ADMIN@agtechsummit.in ", password: "admin123"},
		{name: "wrong password", email: "admin@agtechsummit.in", password: "nope", wantErr: true},
		{name: "wrong email", email: "root@agtechsummit.in", password: "admin123", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin@agtechsummit.in", session.Email)
			assert.True(t, session.ExpiresAt.After(time.Now()))

			subject, err := jwt.Verify(session.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin@agtechsummit.in", subject)
		})
	}
}

func TestNewAdminAuthService_requiresCredentials(t *testing.T) {
	_, err := NewAdminAuthService("", "x", auth.NewBcryptHasher(4), auth.NewJWT("s"), time.Hour)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
