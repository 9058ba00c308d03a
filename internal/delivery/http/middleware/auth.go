package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

type contextKey string

const adminKey contextKey = "admin"

var (
	errNoCredentials = errors.New("missing authorization header")
	errBadScheme     = errors.New("authorization must use the Bearer scheme")
	errEmptyToken    = errors.New("missing token")
)

// SetAdmin returns a context carrying the authenticated admin subject.
func SetAdmin(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminKey, subject)
}

// AdminFromContext returns the admin subject set by RequireAdmin.
func AdminFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminKey).(string)
	return subject, ok && subject != ""
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errNoCredentials
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", errBadScheme
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireAdmin wraps admin handlers. Requests without a token the verifier accepts get a
// 401 with a Bearer challenge; accepted requests carry the subject in their context.
func RequireAdmin(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	reject := func(w http.ResponseWriter, msg string) {
		w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				reject(w, err.Error())
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				reject(w, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetAdmin(r.Context(), subject)))
		}
	}
}
