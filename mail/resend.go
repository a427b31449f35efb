// Package mail delivers one-time codes to the administrator's email address.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"
)

const (
	defaultEndpoint = "https://api.resend.com/emails"
	fromAddress     = "Portfolio Admin <onboarding@resend.dev>"
	subject         = "Your Portfolio Edit OTP"
)

// Resend sends OTP emails through the Resend HTTP API. The API key is held
// in a memguard enclave and only decrypted for the duration of a send.
type Resend struct {
	apiKey   *memguard.Enclave
	to       string
	endpoint string
	client   *http.Client
}

// NewResend creates a mailer that delivers codes to the given address.
func NewResend(apiKey, to string) *Resend {
	return &Resend{
		apiKey:   memguard.NewEnclave([]byte(apiKey)),
		to:       to,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type apiError struct {
	Message string `json:"message"`
}

// Send emails the code to the registered administrator address.
func (m *Resend) Send(ctx context.Context, code string) error {
	body, err := json.Marshal(sendRequest{
		From:    fromAddress,
		To:      []string{m.to},
		Subject: subject,
		HTML:    renderOTPEmail(code),
	})
	if err != nil {
		return fmt.Errorf("encoding email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Resend deduplicates retried requests on this key.
	req.Header.Set("Idempotency-Key", uuid.NewString())

	keyBuf, err := m.apiKey.Open()
	if err != nil {
		return fmt.Errorf("opening API key enclave: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+keyBuf.String())
	resp, err := m.client.Do(req)
	keyBuf.Destroy()
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("email error: %s", apiErr.Message)
		}
		return fmt.Errorf("email error: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func renderOTPEmail(code string) string {
	return `
        <div style="font-family: sans-serif; max-width: 400px; margin: 0 auto; padding: 40px 20px;">
            <h2 style="color: #D4AF37; margin-bottom: 8px;">Portfolio Access Code</h2>
            <p style="color: #666; font-size: 14px; margin-bottom: 24px;">Your one-time code to edit your portfolio:</p>
            <div style="background: #0f1110; color: #fff; padding: 20px; border-radius: 12px; text-align: center; font-size: 32px; letter-spacing: 8px; font-weight: bold;">
                ` + code + `
            </div>
            <p style="color: #999; font-size: 12px; margin-top: 16px;">This code expires in 10 minutes.</p>
        </div>
    `
}
