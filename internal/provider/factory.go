// Package provider implements the email transports behind sender accounts:
// authenticated SMTP, the Gmail API and Amazon SES.
package provider

import (
	"context"
	"fmt"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// NewProvider maps a provider kind plus its decrypted config to a live
// transport. It satisfies domain.ProviderFactory.
func NewProvider(kind domain.ProviderKind, cfg *domain.ProviderConfig, log logger.Logger) (domain.Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("provider config is required")
	}

	switch kind {
	case domain.ProviderKindSMTP:
		return NewSMTPProvider(cfg.SMTP, log)
	case domain.ProviderKindGmail:
		return NewGmailProvider(context.Background(), cfg.Gmail, log)
	case domain.ProviderKindSES:
		return NewSESProvider(cfg.SES, log)
	default:
		return nil, fmt.Errorf("unsupported provider kind: %s", kind)
	}
}
