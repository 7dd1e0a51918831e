package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers notification emails. Sends are best effort: callers
// log failures and never fail the request over them.
type EmailSender interface {
	Send(toEmail, subject, body string) error
}

// SendGridSender implements EmailSender using SendGrid.
type SendGridSender struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridSender builds a sender with the given API key and from address.
func NewSendGridSender(apiKey, from string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

func (s *SendGridSender) Send(toEmail, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", toEmail),
		body,
		body,
	)
	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send email: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}
