package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/logger"
)

// ErrNotConfigured is returned by Send when the SMTP settings are incomplete.
// Startup tolerates missing settings; only send attempts fail.
var ErrNotConfigured = errors.New("smtp transport is not configured")

// DispatchError wraps an SMTP transport or auth failure. Clients never see
// the underlying error; the handler boundary logs it and reports a generic
// failure message.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch email: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Mailer is the long-lived transporter: one dialer configured at boot and
// reused for every send. The dialer itself is immutable configuration, so the
// Mailer is safe for concurrent use; each Send runs its own SMTP conversation.
// gomail bounds the connection with a 10 second dial timeout, so a hung relay
// cannot stall a request indefinitely.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	configured bool
}

// NewMailer builds the transporter from configuration. It never fails:
// incomplete SMTP settings are logged at startup and every Send returns
// ErrNotConfigured until the deployment is fixed.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:       cfg.SenderEmail,
		configured: cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPassword != "",
	}
}

// IsConfigured checks if the mailer has complete SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.configured
}

// Verify dials and closes one SMTP session to surface credential or
// reachability problems at startup. Diagnostic only: outcomes are logged and
// the server keeps running either way. Intended to be called in a goroutine.
func (m *Mailer) Verify(ctx context.Context) {
	if !m.configured {
		logger.Log.Warn("Skipping SMTP verification: configuration is incomplete")
		return
	}

	done := make(chan error, 1)
	go func() {
		conn, err := m.dialer.Dial()
		if err == nil {
			_ = conn.Close()
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Log.Warn("SMTP verification failed", "host", m.dialer.Host, "port", m.dialer.Port, "error", err)
			if strings.Contains(strings.ToLower(err.Error()), "auth") {
				logger.Log.Warn("SMTP authentication was rejected. For Gmail, use an App Password (2FA required), not the account password.")
			}
			return
		}
		logger.Log.Info("SMTP server is ready to send emails", "host", m.dialer.Host, "port", m.dialer.Port)
	case <-ctx.Done():
		logger.Log.Warn("SMTP verification did not complete", "host", m.dialer.Host, "error", ctx.Err())
	}
}

// Send delivers one message through the relay. One attempt, no retry; retries
// are the caller's responsibility and this system has none.
func (m *Mailer) Send(mail domain.OutboundEmail) error {
	if !m.configured {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Text)
	msg.AddAlternative("text/html", mail.HTML)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return &DispatchError{Err: err}
	}
	return nil
}
