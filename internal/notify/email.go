package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/healthmate/platform/pkg/logging"
)

// EmailSender sends a single plain-text email. Implementations can be
// swapped (SendGrid, SES, SMTP) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// NewSendGridSender creates a SendGrid-backed sender. Returns nil when no
// API key is configured, which callers treat as email disabled.
func NewSendGridSender(apiKey, fromEmail, fromName string, logger *logging.Logger) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if fromName == "" {
		fromName = "HealthMate"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// Send delivers one email. A nil receiver is a no-op so wiring can pass the
// constructor result through unconditionally.
func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	if s == nil || s.client == nil {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("notify: sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: sendgrid returned status %d", resp.StatusCode)
	}

	s.logger.Info("confirmation email sent", "to", to, "subject", subject, "status", resp.StatusCode)
	return nil
}
