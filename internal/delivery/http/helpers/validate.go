package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps JSON request bodies. Image uploads go through multipart and have their own limit.
const MaxBodyBytes = 1 << 20

// Validator is implemented by request bodies that check themselves after decoding.
// A nil or empty result means valid.
type Validator interface {
	Validate() []string
}

var (
	errEmptyBody    = errors.New("request body is empty")
	errTrailingData = errors.New("request body must contain a single JSON object")
)

func decodeStrict(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// DecodeAndValidate fills dest from the JSON body, rejecting unknown fields, then runs
// Validate when dest is a Validator. On failure the error response is already written and
// the caller must return.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := decodeStrict(w, r, dest); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large")
			return false
		}
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	if problems := v.Validate(); len(problems) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
		return false
	}
	return true
}

// Required appends "<field> is required" to errs when value is blank.
func Required(errs []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(errs, field+" is required")
	}
	return errs
}
