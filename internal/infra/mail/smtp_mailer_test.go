package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationLink(t *testing.T) {
	link := verificationLink("https://accounts.example.com", "abc 123")

	assert.Equal(t, "https://accounts.example.com/auth/verify-email?token=abc+123", link)
}

func TestVerificationLink_DefaultBaseURL(t *testing.T) {
	link := verificationLink("", "tok")

	assert.Equal(t, "http://localhost:8080/auth/verify-email?token=tok", link)
}

func TestVerificationTemplate_RendersLink(t *testing.T) {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, map[string]string{
		"Name": "Test User",
		"Link": "http://localhost:8080/auth/verify-email?token=tok",
	})

	require.NoError(t, err)
	assert.Contains(t, body.String(), "Test User")
	assert.Contains(t, body.String(), "verify-email?token=tok")
}

func TestNewMailer_FallsBackToLogMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := NewMailer(&config.Config{}, logger)

	_, ok := mailer.(*logMailer)
	require.True(t, ok)

	// The log-only mailer never fails.
	assert.NoError(t, mailer.SendVerificationEmail(context.Background(), "user@example.com", "Test User", "tok"))
}
