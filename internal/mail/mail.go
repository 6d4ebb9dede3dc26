// Package mail defines the outbound email contract and its implementations.
// Services depend on the Mailer interface only; the SMTP client and the
// log-only development fallback both live here.
package mail

import "context"

// Message is a single outbound email. Only HTML bodies are supported — every
// mail this system sends is a rendered template.
type Message struct {
	FromName string
	FromAddr string
	ToName   string
	ToAddr   string
	Subject  string
	HTML     string
}

// Mailer delivers a message or returns an error.
// Implementations must respect ctx cancellation; callers treat any returned
// error as a failed delivery.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
