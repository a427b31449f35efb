// Package auth implements the one-time-password login flow and the session
// lifecycle for the single site administrator.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/khizarrao/folio/internal/random"
	"github.com/khizarrao/folio/storage"
)

const (
	otpCollection     = "otps"
	sessionCollection = "sessions"

	// otpKey is the fixed document key for the OTP record. Only one
	// administrator exists, so a single singleton record suffices.
	otpKey = "admin"

	// OTPTTL is how long an issued code stays valid.
	OTPTTL = 10 * time.Minute
	// SessionTTL is how long a minted session stays valid.
	SessionTTL = time.Hour

	sessionTokenBytes = 32
)

// Mailer dispatches a one-time code to the registered administrator address.
type Mailer interface {
	Send(ctx context.Context, code string) error
}

// otpRecord is the stored form of an issued one-time code.
type otpRecord struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}

// sessionRecord is the stored form of an authenticated session, keyed by its token.
type sessionRecord struct {
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session is a minted credential returned to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service implements OTP issuance and verification plus session minting and
// validation on top of an injected document repository and mailer. Either
// dependency may be nil, in which case the operations needing it fail with
// the corresponding not-configured error.
type Service struct {
	repo   storage.Repository
	mailer Mailer
	now    func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the time source, for tests exercising expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates an auth Service.
func New(repo storage.Repository, mailer Mailer, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		mailer: mailer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestOTP issues a fresh 6-digit code, overwriting any outstanding one,
// and emails it to the administrator. A new request always invalidates the
// prior code — there is no cooldown; last writer wins.
//
// If the email send fails after the code was stored, ErrDelivery is returned
// and the stored code remains valid; no rollback is attempted.
func (s *Service) RequestOTP(ctx context.Context) error {
	if s.repo == nil {
		return ErrStorageNotConfigured
	}
	if s.mailer == nil {
		return ErrMailerNotConfigured
	}

	code, err := random.Code()
	if err != nil {
		return fmt.Errorf("generating OTP: %w", err)
	}
	now := s.now()
	doc, err := json.Marshal(otpRecord{
		Code:      code,
		ExpiresAt: now.Add(OTPTTL),
		Used:      false,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("encoding OTP record: %w", err)
	}
	if err := s.repo.Put(otpCollection, otpKey, doc); err != nil {
		return fmt.Errorf("storing OTP: %w", err)
	}

	if err := s.mailer.Send(ctx, code); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}

// VerifyOTP checks a submitted code against the stored record and, on
// success, consumes it and mints a session.
//
// The checks run in a fixed order so the failure reason is deterministic:
// missing record, then expiry, then the used flag, then equality. An expired
// and used code therefore reports "expired", not "already used". The check
// and the used-flag write happen inside one atomic update on the OTP key, so
// two concurrent submissions of the same code cannot both mint a session.
func (s *Service) VerifyOTP(ctx context.Context, submitted string) (Session, error) {
	if s.repo == nil {
		return Session{}, ErrStorageNotConfigured
	}
	if !isSixDigits(submitted) {
		return Session{}, ErrMalformedOTP
	}

	now := s.now()
	err := s.repo.Update(otpCollection, otpKey, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrNoOTPRequested
		}
		var rec otpRecord
		if err := json.Unmarshal(current, &rec); err != nil {
			return nil, fmt.Errorf("decoding OTP record: %w", err)
		}
		if now.After(rec.ExpiresAt) {
			return nil, ErrOTPExpired
		}
		if rec.Used {
			return nil, ErrOTPAlreadyUsed
		}
		if rec.Code != submitted {
			return nil, ErrOTPIncorrect
		}
		rec.Used = true
		return json.Marshal(rec)
	})
	if err != nil {
		return Session{}, err
	}

	return s.IssueSession(ctx)
}

// IssueSession mints an unguessable session token, persists its expiry, and
// returns both. The token carries 256 bits of entropy, hex-encoded.
func (s *Service) IssueSession(ctx context.Context) (Session, error) {
	if s.repo == nil {
		return Session{}, ErrStorageNotConfigured
	}
	token, err := random.Token(sessionTokenBytes)
	if err != nil {
		return Session{}, fmt.Errorf("generating session token: %w", err)
	}
	now := s.now()
	rec := sessionRecord{
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	doc, err := json.Marshal(rec)
	if err != nil {
		return Session{}, fmt.Errorf("encoding session record: %w", err)
	}
	if err := s.repo.Put(sessionCollection, token, doc); err != nil {
		return Session{}, fmt.Errorf("storing session: %w", err)
	}
	return Session{Token: token, ExpiresAt: rec.ExpiresAt}, nil
}

// IsAuthenticated reports whether the given token names a live session.
// Expired sessions are deleted the first time they are observed; the delete
// is best-effort. Any storage failure degrades to "not authenticated" —
// this never returns an error so every calling site stays simple.
func (s *Service) IsAuthenticated(token string) bool {
	if s.repo == nil || token == "" {
		return false
	}
	doc, err := s.repo.Get(sessionCollection, token)
	if err != nil {
		return false
	}
	var rec sessionRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return false
	}
	if s.now().After(rec.ExpiresAt) {
		_ = s.repo.Delete(sessionCollection, token)
		return false
	}
	return true
}

// Logout deletes the session record for the given token, if any.
func (s *Service) Logout(token string) {
	if s.repo == nil || token == "" {
		return
	}
	_ = s.repo.Delete(sessionCollection, token)
}

func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
