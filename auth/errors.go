package auth

import "errors"

// Sentinel errors returned by the OTP and session operations. The HTTP layer
// maps each to a status code and user-facing message; the distinct OTP
// failures let the admin tell a wrong code from an expired or spent one.
var (
	ErrStorageNotConfigured = errors.New("database not configured")
	ErrMailerNotConfigured  = errors.New("email service not configured")
	ErrMalformedOTP         = errors.New("invalid OTP format")
	ErrNoOTPRequested       = errors.New("no OTP was requested")
	ErrOTPExpired           = errors.New("OTP has expired")
	ErrOTPAlreadyUsed       = errors.New("OTP has already been used")
	ErrOTPIncorrect         = errors.New("incorrect OTP")
	ErrDelivery             = errors.New("failed to send OTP email")
)
