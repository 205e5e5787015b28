package provider

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// GmailProvider submits mail through the Gmail API using an OAuth2
// refresh-token grant. The access token is refreshed automatically by the
// oauth2 transport.
type GmailProvider struct {
	cfg     *domain.GmailAccountConfig
	service *gmail.Service
	logger  logger.Logger
}

// NewGmailProvider creates a Gmail provider from a decrypted account config.
func NewGmailProvider(ctx context.Context, cfg *domain.GmailAccountConfig, log logger.Logger) (*GmailProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gmail config is required")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
		TokenType:    "Bearer",
	}

	service, err := gmail.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailProvider{cfg: cfg, service: service, logger: log}, nil
}

// Send renders the message to raw MIME and submits it as the account user.
func (p *GmailProvider) Send(ctx context.Context, msg *domain.Message) error {
	raw, err := rawMessage(p.cfg.FromEmail, p.cfg.FromName, msg)
	if err != nil {
		return err
	}

	gmsg := &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString(raw),
	}
	if _, err := p.service.Users.Messages.Send("me", gmsg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	return nil
}

// Verify fetches the account profile, exercising the refresh-token grant.
func (p *GmailProvider) Verify(ctx context.Context) error {
	if _, err := p.service.Users.GetProfile("me").Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail verification failed: %w", err)
	}
	return nil
}

// Close is a no-op; the API client holds no persistent connection.
func (p *GmailProvider) Close() error {
	return nil
}
