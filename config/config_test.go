package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SENDER_EMAIL", "RECEIVER_EMAIL", "CLIENT_ORIGIN", "WEB_DIR"} {
		// t.Setenv registers the restore; unset so defaults apply
		t.Setenv(key, "placeholder")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
}

func TestLoadConfigSenderFallsBackToUser(t *testing.T) {
	t.Setenv("SMTP_USER", "login@example.com")
	t.Setenv("SENDER_EMAIL", "")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "login@example.com", cfg.SenderEmail)
}

func TestLoadConfigExplicitSender(t *testing.T) {
	t.Setenv("SMTP_USER", "login@example.com")
	t.Setenv("SENDER_EMAIL", "noreply@example.com")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "noreply@example.com", cfg.SenderEmail)
}

func TestLoadConfigTrimsOriginSlash(t *testing.T) {
	t.Setenv("CLIENT_ORIGIN", "https://example.com/")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.ClientOrigin)
}

func TestLoadConfigInvalidPortFallsBack(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 587, cfg.SMTPPort)
}
