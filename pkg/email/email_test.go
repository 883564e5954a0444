package email_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestNewMailerConfigured(t *testing.T) {
	m := email.NewMailer(&config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "user@example.com",
		SMTPPassword: "secret",
		SenderEmail:  "noreply@example.com",
	})

	assert.True(t, m.IsConfigured())
}

func TestNewMailerIncompleteConfig(t *testing.T) {
	cases := []config.Config{
		{SMTPPort: 587, SMTPUser: "u", SMTPPassword: "p"}, // host missing
		{SMTPHost: "h", SMTPPort: 587, SMTPPassword: "p"}, // user missing
		{SMTPHost: "h", SMTPPort: 587, SMTPUser: "u"},     // password missing
	}

	for _, cfg := range cases {
		m := email.NewMailer(&cfg)
		assert.False(t, m.IsConfigured())
	}
}

func TestSendUnconfiguredFailsWithoutDialing(t *testing.T) {
	m := email.NewMailer(&config.Config{})

	err := m.Send(domain.OutboundEmail{
		To:      "someone@example.com",
		Subject: "subject",
		Text:    "text",
		HTML:    "<p>html</p>",
	})

	assert.ErrorIs(t, err, email.ErrNotConfigured)
}

func TestVerifyUnconfiguredReturnsImmediately(t *testing.T) {
	m := email.NewMailer(&config.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		m.Verify(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Verify blocked on an unconfigured mailer")
	}
}

func TestDispatchErrorUnwrap(t *testing.T) {
	cause := errors.New("535 authentication failed")
	err := &email.DispatchError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "authentication failed")
}
