package domain

import (
	"context"

	"github.com/mailfleet/mailfleet/pkg/logger"
)

// Message is a fully compiled email ready for a provider.
type Message struct {
	To          string
	CC          []string
	BCC         []string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Attachment is an inline file attached to an outgoing message.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks github.com/mailfleet/mailfleet/internal/domain Provider

// Provider is the transport capability behind a sender account. One instance
// owns one live transport resource; Close must be called on every exit path
// and is idempotent.
type Provider interface {
	Send(ctx context.Context, msg *Message) error
	Verify(ctx context.Context) error
	Close() error
}

// ProviderFactory maps a provider kind plus its decrypted config to a live
// Provider instance. It is the only place the variants are named.
type ProviderFactory func(kind ProviderKind, cfg *ProviderConfig, log logger.Logger) (Provider, error)
