package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "agtechsummit/internal/delivery/http/helpers"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// writeError maps err onto the response envelope. Unexpected errors are logged.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code, known := h.StatusForError(err)
	if !known {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, status, code, "internal server error")
		return
	}
	h.WriteJSONError(w, status, code, err.Error())
}

func validEmail(errs []string, field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, field+" is required")
	}
	if !emailRegexp.MatchString(value) {
		return append(errs, "invalid "+field+" format")
	}
	return errs
}
