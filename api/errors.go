package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khizarrao/folio/auth"
	"github.com/khizarrao/folio/content"
)

// maxAuthBodySize bounds auth request bodies; maxContentBodySize bounds the
// content document, which legitimately carries the full site copy.
const (
	maxAuthBodySize    = 4 << 10
	maxContentBodySize = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, StatusResponse{Success: false, Message: msg})
}

// decodeJSON decodes a bounded JSON request body. On failure it writes a 400
// response and returns false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return v, false
	}
	return v, true
}

// mapError converts auth and content errors into status codes and user-facing
// messages. Each OTP denial keeps a distinct message so the admin can tell a
// wrong code from an expired or already-spent one.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrStorageNotConfigured), errors.Is(err, content.ErrStorageNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Database not configured")
	case errors.Is(err, auth.ErrMailerNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Email service not configured")
	case errors.Is(err, auth.ErrMalformedOTP):
		writeError(w, http.StatusBadRequest, "Invalid OTP format")
	case errors.Is(err, auth.ErrNoOTPRequested):
		writeError(w, http.StatusBadRequest, "No OTP was requested")
	case errors.Is(err, auth.ErrOTPExpired):
		writeError(w, http.StatusBadRequest, "OTP has expired")
	case errors.Is(err, auth.ErrOTPAlreadyUsed):
		writeError(w, http.StatusBadRequest, "OTP has already been used")
	case errors.Is(err, auth.ErrOTPIncorrect):
		writeError(w, http.StatusBadRequest, "Incorrect OTP")
	case errors.Is(err, auth.ErrDelivery):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
