package mail

import (
	"context"
	"log/slog"
)

// LogMailer is a Mailer that only logs what would have been sent.
// It is wired when no SMTP host is configured, so the invite and confirmation
// flows stay exercisable in local development without a relay.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer constructs a LogMailer writing through the given logger.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send logs the message envelope and reports success.
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.InfoContext(ctx, "mail delivery skipped (no SMTP configured)",
		"to", msg.ToAddr,
		"subject", msg.Subject,
	)
	return nil
}
