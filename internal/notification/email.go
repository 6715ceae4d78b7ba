package notification

import (
	"fmt"
	"net/smtp"

	"bugbounty-platform-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// Sender delivers report lifecycle notifications. Delivery is
// fire-and-forget: callers log failures and never propagate them.
type Sender interface {
	Send(to, subject, body string) error
}

// NewFromConfig returns an SMTP-backed sender when a host is
// configured, otherwise a sender that only logs
func NewFromConfig(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		return &LogSender{}
	}
	return &SMTPSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

// SMTPSender sends mail through a plain-auth SMTP relay
type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

// Send delivers one message
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, subject, body))

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}

// LogSender records notifications in the log instead of sending them.
// Used in development and tests.
type LogSender struct{}

// Send logs the message
func (s *LogSender) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("notification suppressed: no SMTP host configured")
	return nil
}
