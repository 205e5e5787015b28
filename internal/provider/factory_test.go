package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func TestNewProvider(t *testing.T) {
	log := logger.NewLoggerWithLevel("disabled")

	t.Run("smtp", func(t *testing.T) {
		cfg := &domain.ProviderConfig{
			Kind: domain.ProviderKindSMTP,
			SMTP: &domain.SMTPAccountConfig{
				Host: "mail.example.com", Port: 587, FromEmail: "news@example.com",
			},
		}
		p, err := NewProvider(domain.ProviderKindSMTP, cfg, log)
		require.NoError(t, err)
		assert.IsType(t, &SMTPProvider{}, p)
	})

	t.Run("ses", func(t *testing.T) {
		cfg := &domain.ProviderConfig{
			Kind: domain.ProviderKindSES,
			SES: &domain.SESAccountConfig{
				Region: "eu-west-1", AccessKey: "k", SecretKey: "s", FromEmail: "news@example.com",
			},
		}
		p, err := NewProvider(domain.ProviderKindSES, cfg, log)
		require.NoError(t, err)
		assert.IsType(t, &SESProvider{}, p)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewProvider(domain.ProviderKindSMTP, nil, log)
		assert.Error(t, err)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := NewProvider("sendgrid", &domain.ProviderConfig{}, log)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider kind")
	})
}

func TestBuildMessage(t *testing.T) {
	msg := &domain.Message{
		To:      "ada@example.com",
		Subject: "Hi",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
	}

	raw, err := rawMessage("news@example.com", "Example News", msg)
	require.NoError(t, err)

	rendered := string(raw)
	assert.Contains(t, rendered, "From: \"Example News\" <news@example.com>")
	assert.Contains(t, rendered, "To: <ada@example.com>")
	assert.Contains(t, rendered, "multipart/alternative")
	assert.True(t, strings.Contains(rendered, "text/plain") && strings.Contains(rendered, "text/html"))
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage("news@example.com", "", &domain.Message{To: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient")
}
