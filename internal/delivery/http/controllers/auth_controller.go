package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "agtechsummit/internal/delivery/http/helpers"
	"agtechsummit/internal/domain"
)

// LoginRequest is the request body for POST /admin/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /admin/login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AdminAuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AdminAuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Admin log in
// @Description Authenticate with the configured admin email and password. Returns a JWT for the admin routes.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		writeError(c.Logger, w, r, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
