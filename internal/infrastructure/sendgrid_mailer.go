package infrastructure

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendgridMailer sends the welcome email at registration. Mail is
// best-effort: a missing key or a provider failure is logged and swallowed
// by the caller, never surfaced to the registering user.
type SendgridMailer struct {
	apiKey string
	from   string
	log    *zap.Logger
}

func NewSendgridMailer(apiKey, from string, log *zap.Logger) *SendgridMailer {
	return &SendgridMailer{apiKey: apiKey, from: from, log: log}
}

func (m *SendgridMailer) SendWelcome(toEmail, toName string) error {
	if m.apiKey == "" {
		m.log.Debug("sendgrid not configured, skipping welcome email")
		return nil
	}

	from := mail.NewEmail("WEAVER.ai", m.from)
	to := mail.NewEmail(toName, toEmail)
	subject := "Welcome to WEAVER.ai"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account is ready and comes with 50 free credits.\nHappy writing!\n\nThe WEAVER.ai team",
		toName,
	)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := sendgrid.NewSendClient(m.apiKey).Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}
