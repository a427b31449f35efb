package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/khizarrao/folio/content"
)

// CheckAuth handles GET /auth/check.
//
// It answers 200 unconditionally: any internal failure degrades to
// "not authenticated" rather than surfacing an error, so the editor UI can
// always poll it.
func (a *API) CheckAuth(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	writeJSON(w, http.StatusOK, CheckResponse{
		Authenticated: a.auth.IsAuthenticated(token),
	})
}

// SendOTP handles POST /auth/send-otp.
//
// Issuing always overwrites any outstanding code. If the email send fails
// after the code was stored, the error is surfaced and the stored code stays
// valid — the admin can retry, which mints a fresh code.
func (a *API) SendOTP(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.RequestOTP(r.Context()); err != nil {
		a.audit.logFailure(AuditOTPRequestFailure, r, err.Error())
		mapError(w, err)
		return
	}
	a.audit.logEvent(AuditOTPRequested, r)
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "OTP sent to your email"})
}

// VerifyOTP handles POST /auth/verify-otp.
//
// On success the minted session token is set as an HTTP-only cookie; it is
// never returned in the response body.
func (a *API) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[VerifyOTPRequest](w, r, maxAuthBodySize)
	if !ok {
		return
	}

	session, err := a.auth.VerifyOTP(r.Context(), req.OTP)
	if err != nil {
		a.audit.logFailure(AuditOTPVerifyFailure, r, err.Error())
		mapError(w, err)
		return
	}

	writeSessionCookie(w, r, session.Token)
	a.audit.logEvent(AuditOTPVerifySuccess, r)
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "OTP verified"})
}

// Logout handles POST /auth/logout.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	a.auth.Logout(sessionTokenFromRequest(r))
	clearSessionCookie(w, r)
	a.audit.logEvent(AuditLogout, r)
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Logged out"})
}

// GetContent handles GET /content. Public; never fails — falls back to the
// built-in default document when storage is unreachable.
func (a *API) GetContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(a.content.Get())
}

// PutContent handles PUT /content. Requires a valid session; the payload is
// merged into the stored document so omitted fields are preserved.
func (a *API) PutContent(w http.ResponseWriter, r *http.Request) {
	token := sessionTokenFromRequest(r)
	if !a.auth.IsAuthenticated(token) {
		a.audit.logFailure(AuditContentUpdateDenied, r, "no valid session")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	patch, ok := decodeJSON[json.RawMessage](w, r, maxContentBodySize)
	if !ok {
		return
	}
	var obj map[string]any
	if err := json.Unmarshal(patch, &obj); err != nil {
		writeError(w, http.StatusBadRequest, "content document must be a JSON object")
		return
	}

	if err := a.content.Save(patch); err != nil {
		if errors.Is(err, content.ErrStorageNotConfigured) {
			mapError(w, err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save")
		return
	}
	a.audit.logEvent(AuditContentUpdated, r)
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Content saved"})
}
