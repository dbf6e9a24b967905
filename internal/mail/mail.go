// Package mail sends notification and report mails over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings for outgoing mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends mails through one SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New returns a mailer for the given SMTP configuration.
func New(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// Send delivers a mail to the configured recipient. The HTML body is
// optional, when it is empty only the text part is sent.
func (m *Mailer) Send(subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)

	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail failed: %w", err)
	}

	return nil
}

// Notify implements the alerts.Notifier interface.
func (m *Mailer) Notify(subject, body string) error {
	return m.Send(subject, body, "")
}

// Dispatch implements the reports.Dispatcher interface.
func (m *Mailer) Dispatch(subject, text, html string) error {
	return m.Send(subject, text, html)
}
