package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// SESProvider submits mail through Amazon SES as raw MIME, so attachments and
// the text alternative survive intact.
type SESProvider struct {
	cfg    *domain.SESAccountConfig
	client sesiface.SESAPI
	logger logger.Logger
}

// NewSESProvider creates an SES provider from a decrypted account config.
func NewSESProvider(cfg *domain.SESAccountConfig, log logger.Logger) (*SESProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("ses config is required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &SESProvider{cfg: cfg, client: ses.New(sess), logger: log}, nil
}

// NewSESProviderWithClient wires a custom SES client, used in tests.
func NewSESProviderWithClient(cfg *domain.SESAccountConfig, client sesiface.SESAPI, log logger.Logger) *SESProvider {
	return &SESProvider{cfg: cfg, client: client, logger: log}
}

// Send delivers one message via SendRawEmail.
func (p *SESProvider) Send(ctx context.Context, msg *domain.Message) error {
	raw, err := rawMessage(p.cfg.FromEmail, p.cfg.FromName, msg)
	if err != nil {
		return err
	}

	destinations := []*string{aws.String(msg.To)}
	for _, cc := range msg.CC {
		destinations = append(destinations, aws.String(cc))
	}
	for _, bcc := range msg.BCC {
		destinations = append(destinations, aws.String(bcc))
	}

	input := &ses.SendRawEmailInput{
		Source:       aws.String(p.cfg.FromEmail),
		Destinations: destinations,
		RawMessage:   &ses.RawMessage{Data: raw},
	}
	if _, err := p.client.SendRawEmailWithContext(ctx, input); err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}
	return nil
}

// Verify checks the credentials by fetching the account send quota.
func (p *SESProvider) Verify(ctx context.Context) error {
	if _, err := p.client.GetSendQuotaWithContext(ctx, &ses.GetSendQuotaInput{}); err != nil {
		return fmt.Errorf("ses verification failed: %w", err)
	}
	return nil
}

// Close is a no-op; the SDK client holds no persistent connection.
func (p *SESProvider) Close() error {
	return nil
}
