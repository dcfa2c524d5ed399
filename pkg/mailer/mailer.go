// Package mailer delivers owner notifications for contact form submissions
// over SMTP.
package mailer

import (
	"fmt"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"gopkg.in/gomail.v2"
)

// Config holds the SMTP transport settings and the notification addresses.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the sender address; OwnerEmail receives the notifications.
	From       string
	OwnerEmail string
	// LogoURL, when set, is embedded in the HTML body header.
	LogoURL string
}

// Mailer sends the owner a notification for a stored contact message.
type Mailer interface {
	SendContactNotification(msg *model.ContactMessage) error
}

// SMTPMailer is the production Mailer backed by gomail.
type SMTPMailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

// New creates an SMTPMailer for the given transport config.
func New(cfg Config) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

var _ Mailer = (*SMTPMailer)(nil)

// SendContactNotification composes a plain-text body with an HTML alternative
// and delivers it to the configured owner address. The send is synchronous;
// the caller decides what a delivery failure means. Without an SMTP host the
// notification is skipped entirely.
func (m *SMTPMailer) SendContactNotification(msg *model.ContactMessage) error {
	if m.cfg.Host == "" {
		slog.Warn("smtp host not configured, skipping contact notification",
			slog.Int("message_id", msg.ID))
		return nil
	}
	html, err := htmlBody(msg, m.cfg.LogoURL)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.From)
	gm.SetHeader("To", m.cfg.OwnerEmail)
	gm.SetHeader("Reply-To", msg.Email)
	gm.SetHeader("Subject", fmt.Sprintf("[Portfolio] New message from %s: %s", msg.Name, msg.Subject))
	gm.SetBody("text/plain", textBody(msg))
	gm.AddAlternative("text/html", html)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
