// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"backoffice/config"
	"backoffice/internal/domain/service"
)

// smtpMailer implements service.Mailer on top of net/smtp. It authenticates
// with PLAIN when credentials are configured and upgrades to TLS when the
// server offers STARTTLS.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp sender address must be provided")
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		logger:   logger,
	}, nil
}

// Send delivers a single HTML email to one recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return errors.New("recipient address must not be empty")
	}

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail delivery canceled")
	default:
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	msg := m.buildMessage(to, subject, htmlBody)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	// smtp.SendMail negotiates STARTTLS on its own when the server
	// advertises it.
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	m.logger.InfoContext(ctx, "email sent",
		slog.String("to", to),
		slog.String("subject", subject))

	return nil
}

func (m *smtpMailer) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	return []byte(b.String())
}
