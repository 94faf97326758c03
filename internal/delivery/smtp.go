// Package delivery provides the contact message senders: SMTP mail to the
// site owner, or an SQLite inbox the owner reads from the command line.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/Zachkp/portfolio/internal/contact"
)

var ErrNotConfigured = errors.New("SMTP credentials not configured")

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// SMTP mails each message to the owner with the visitor as Reply-To.
type SMTP struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTP) Send(ctx context.Context, msg contact.Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := s.sendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.Info("Contact email sent", "from_name", msg.FromName, "from_email", msg.FromEmail)
	return nil
}

func (s *SMTP) compose(msg contact.Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.FromName)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.FromName, msg.FromEmail, msg.Message)

	return []byte("To: " + s.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + msg.FromEmail + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
