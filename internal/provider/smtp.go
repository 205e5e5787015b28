package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// SMTPProvider submits mail over authenticated SMTP using go-mail.
type SMTPProvider struct {
	cfg    *domain.SMTPAccountConfig
	logger logger.Logger
}

// NewSMTPProvider creates an SMTP provider from a decrypted account config.
func NewSMTPProvider(cfg *domain.SMTPAccountConfig, log logger.Logger) (*SMTPProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("smtp config is required")
	}
	return &SMTPProvider{cfg: cfg, logger: log}, nil
}

func (p *SMTPProvider) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(p.cfg.Port),
		mail.WithTimeout(30 * time.Second),
	}
	if p.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(p.cfg.Username),
			mail.WithPassword(p.cfg.Password),
		)
	}
	if p.cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(p.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

// Send delivers one message over a fresh SMTP session.
func (p *SMTPProvider) Send(ctx context.Context, msg *domain.Message) error {
	m, err := buildMessage(p.cfg.FromEmail, p.cfg.FromName, msg)
	if err != nil {
		return err
	}

	client, err := p.client()
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Verify dials the server and authenticates without sending anything.
func (p *SMTPProvider) Verify(ctx context.Context) error {
	client, err := p.client()
	if err != nil {
		return err
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp verification failed: %w", err)
	}
	return client.Close()
}

// Close is a no-op; sessions are per-send.
func (p *SMTPProvider) Close() error {
	return nil
}
