package api

// VerifyOTPRequest is the JSON body for POST /auth/verify-otp.
type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

// StatusResponse is the common success/failure envelope.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CheckResponse is returned from GET /auth/check.
type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}
