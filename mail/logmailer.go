package mail

import (
	"context"
	"log/slog"
)

// LogMailer writes the code to the log instead of sending email. For local
// development only — anyone who can read the log can log in.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs codes via the given logger.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, code string) error {
	m.logger.InfoContext(ctx, "OTP issued (dev mailer)", slog.String("code", code))
	return nil
}
