// Package mail sends order confirmation messages.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "AutoParts EG"

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type sendGridMailer struct {
	client *sendgrid.Client
	from   string
	logger *log.Logger
}

// NewSendGrid sends through the SendGrid v3 API.
func NewSendGrid(apiKey, from string, logger *log.Logger) (Mailer, error) {
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is empty")
	}
	if from == "" {
		return nil, errors.New("from address is empty")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &sendGridMailer{client: sendgrid.NewSendClient(apiKey), from: from, logger: logger}, nil
}

func (m *sendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errors.New("to address is empty")
	}
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(senderName, m.from),
		subject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", html.EscapeString(body)),
	)
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, resp.Body)
	}
	m.logger.Printf("mail: sent status=%d to=%s subject=%q", resp.StatusCode, to, subject)
	return nil
}

type logMailer struct {
	logger *log.Logger
}

// NewLog writes messages to the log instead of sending them.
func NewLog(logger *log.Logger) Mailer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Printf("mail: to=%s subject=%q bytes=%d", to, subject, len(body))
	return nil
}
