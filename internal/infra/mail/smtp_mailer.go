// Package mail delivers transactional email for the account service.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"net/url"

	"accounts/config"
	"accounts/internal/domain/service"

	"github.com/pkg/errors"
)

// verificationTemplate renders the email-verification message body.
var verificationTemplate = template.Must(template.New("verification").Parse(`<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Hello {{.Name}},</h2>
  <p>Please confirm your email address by clicking the link below. The link is valid for 24 hours.</p>
  <p><a href="{{.Link}}">Verify my email</a></p>
  <p>If the link does not work, open this address in your browser:</p>
  <p>{{.Link}}</p>
  <p>If you did not create an account, you can safely ignore this message.</p>
</body>
</html>`))

// smtpMailer sends verification email through an SMTP relay.
type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
	logger   *slog.Logger
}

// logMailer is the fallback when no SMTP relay is configured. It logs the
// verification link instead of delivering it, which keeps local development
// working without a mail server.
type logMailer struct {
	logger *slog.Logger
}

// NewMailer returns an SMTP-backed mailer when mail configuration is present,
// otherwise a logging fallback.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("No SMTP relay configured; verification emails will be logged only")

		return &logMailer{logger: logger}
	}

	return &smtpMailer{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		from:     cfg.Mail.From,
		baseURL:  cfg.Mail.BaseURL,
		logger:   logger,
	}
}

// SendVerificationEmail delivers the verification link to the recipient.
func (m *smtpMailer) SendVerificationEmail(ctx context.Context, toEmail, displayName, token string) error {
	link := verificationLink(m.baseURL, token)

	var body bytes.Buffer
	if err := verificationTemplate.Execute(&body, map[string]string{
		"Name": displayName,
		"Link": link,
	}); err != nil {
		return errors.Wrap(err, "failed to render verification email")
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: Verify your email address\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{toEmail}, msg.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to send verification email via %s", addr)
	}

	m.logger.Info("Verification email sent", slog.String("to", toEmail))

	return nil
}

// SendVerificationEmail logs the verification link instead of sending it.
func (m *logMailer) SendVerificationEmail(ctx context.Context, toEmail, displayName, token string) error {
	m.logger.Info("Verification email (log only)",
		slog.String("to", toEmail),
		slog.String("link", verificationLink("", token)))

	return nil
}

// verificationLink builds the externally reachable confirmation URL.
func verificationLink(baseURL, token string) string {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return baseURL + "/auth/verify-email?token=" + url.QueryEscape(token)
}
