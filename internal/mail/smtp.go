package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/sethvargo/go-retry"
)

const (
	// sendTimeout bounds a single delivery attempt, dial included.
	sendTimeout = 10 * time.Second

	// maxRetries is the number of re-attempts after the first failure.
	maxRetries = 2

	retryBase = 500 * time.Millisecond
)

// SMTPMailer delivers messages through an SMTP relay using wneessen/go-mail.
// Transient failures are retried with fibonacci backoff; each attempt has its
// own timeout so a hung relay cannot stall a request indefinitely.
type SMTPMailer struct {
	client *gomail.Client
}

// NewSMTPMailer constructs an SMTPMailer for the given relay.
// Credentials are optional; when user is empty no authentication is attempted.
func NewSMTPMailer(host string, port int, user, pass string) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	}
	if user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(pass),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSMTPMailer: %w", err)
	}
	return &SMTPMailer{client: client}, nil
}

// Send delivers msg, retrying transient failures up to maxRetries times.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := gomail.NewMsg()
	if err := out.FromFormat(msg.FromName, msg.FromAddr); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: from: %w", err)
	}
	if err := out.AddToFormat(msg.ToName, msg.ToAddr); err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: to: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	backoff := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()

		if err := m.client.DialAndSendWithContext(attemptCtx, out); err != nil {
			if isPermanent(err) {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mail.SMTPMailer.Send: %w", err)
	}
	return nil
}

// isPermanent reports whether err is a definitive SMTP reject that retrying
// cannot fix, such as an authentication failure or a 5xx recipient refusal.
// go-mail marks 4xx server responses as temporary; everything else it reports
// (and anything outside its error type, like a dial timeout) stays retryable
// only when it is not a classified permanent failure.
func isPermanent(err error) bool {
	var sendErr *gomail.SendError
	return errors.As(err, &sendErr) && !sendErr.IsTemp()
}
