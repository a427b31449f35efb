package api

import (
	"log/slog"
	"net/http"
	"time"
)

// AuditEvent identifies the type of security-relevant action being logged.
type AuditEvent string

const (
	AuditOTPRequested        AuditEvent = "otp_requested"
	AuditOTPRequestFailure   AuditEvent = "otp_request_failure"
	AuditOTPVerifySuccess    AuditEvent = "otp_verify_success"
	AuditOTPVerifyFailure    AuditEvent = "otp_verify_failure"
	AuditLogout              AuditEvent = "logout"
	AuditContentUpdated      AuditEvent = "content_updated"
	AuditContentUpdateDenied AuditEvent = "content_update_denied"
)

// auditLogger wraps slog.Logger for structured security audit logging.
type auditLogger struct {
	logger *slog.Logger
}

func newAuditLogger(logger *slog.Logger) *auditLogger {
	return &auditLogger{
		logger: logger.With("component", "audit"),
	}
}

func (al *auditLogger) log(event AuditEvent, r *http.Request, attrs ...slog.Attr) {
	baseAttrs := []slog.Attr{
		slog.String("event", string(event)),
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
	}
	baseAttrs = append(baseAttrs, attrs...)
	al.logger.LogAttrs(r.Context(), slog.LevelInfo, "audit", baseAttrs...)
}

// logEvent records a successful security-relevant action.
func (al *auditLogger) logEvent(event AuditEvent, r *http.Request, extra ...slog.Attr) {
	al.log(event, r, extra...)
}

// logFailure records a denied or failed action with its reason.
func (al *auditLogger) logFailure(event AuditEvent, r *http.Request, reason string, extra ...slog.Attr) {
	attrs := []slog.Attr{
		slog.String("reason", reason),
	}
	attrs = append(attrs, extra...)
	al.log(event, r, attrs...)
}
