package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// ProviderKind identifies the transport behind a sender account.
type ProviderKind string

const (
	ProviderKindSMTP  ProviderKind = "smtp"
	ProviderKindGmail ProviderKind = "gmail"
	ProviderKindSES   ProviderKind = "ses"
)

// IsValid reports whether the kind is one of the supported providers.
func (k ProviderKind) IsValid() bool {
	switch k {
	case ProviderKindSMTP, ProviderKindGmail, ProviderKindSES:
		return true
	}
	return false
}

// SenderAccount is a configured outbound channel with its throughput budget.
// EncryptedConfig holds the provider settings AES-GCM sealed at rest; Config
// is the decrypted form, materialized only on accounts returned by the
// selection pass and never serialized or logged.
type SenderAccount struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	ProviderKind        ProviderKind    `json:"provider_kind"`
	EncryptedConfig     string          `json:"-"`
	Config              *ProviderConfig `json:"-"`
	DailyCap            int             `json:"daily_cap"`
	CampaignCap         int             `json:"campaign_cap"`
	Priority            int             `json:"priority"`
	Enabled             bool            `json:"enabled"`
	CircuitBreakerUntil *time.Time      `json:"circuit_breaker_until,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Validate checks the account invariants before persisting.
func (a *SenderAccount) Validate() error {
	if a.Name == "" {
		return NewValidationError("account name is required")
	}
	if !a.ProviderKind.IsValid() {
		return NewValidationError(fmt.Sprintf("unsupported provider kind: %s", a.ProviderKind))
	}
	if a.DailyCap < 1 {
		return NewValidationError("daily cap must be at least 1")
	}
	if a.CampaignCap < 1 {
		return NewValidationError("campaign cap must be at least 1")
	}
	return nil
}

// ProviderConfig is the per-kind envelope stored (encrypted) on the account
// row. Exactly one of the variant fields is set, matching Kind.
type ProviderConfig struct {
	Kind  ProviderKind        `json:"kind"`
	SMTP  *SMTPAccountConfig  `json:"smtp,omitempty"`
	Gmail *GmailAccountConfig `json:"gmail,omitempty"`
	SES   *SESAccountConfig   `json:"ses,omitempty"`
}

// SMTPAccountConfig carries credentials for a plain SMTP submission account.
type SMTPAccountConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name,omitempty"`
	UseTLS    bool   `json:"use_tls"`
}

// GmailAccountConfig carries an OAuth2 refresh-token grant for the Gmail API.
type GmailAccountConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
	FromEmail    string `json:"from_email"`
	FromName     string `json:"from_name,omitempty"`
}

// SESAccountConfig carries static AWS credentials for SES.
type SESAccountConfig struct {
	Region    string `json:"region"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name,omitempty"`
}

// Validate checks that the envelope carries the variant its kind announces
// and that the sender address is a valid email.
func (c *ProviderConfig) Validate() error {
	switch c.Kind {
	case ProviderKindSMTP:
		if c.SMTP == nil {
			return NewValidationError("smtp config is required")
		}
		if c.SMTP.Host == "" {
			return NewValidationError("smtp host is required")
		}
		if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
			return NewValidationError("smtp port is out of range")
		}
		return validateFromEmail(c.SMTP.FromEmail)
	case ProviderKindGmail:
		if c.Gmail == nil {
			return NewValidationError("gmail config is required")
		}
		if c.Gmail.ClientID == "" || c.Gmail.ClientSecret == "" || c.Gmail.RefreshToken == "" {
			return NewValidationError("gmail config requires client_id, client_secret and refresh_token")
		}
		return validateFromEmail(c.Gmail.FromEmail)
	case ProviderKindSES:
		if c.SES == nil {
			return NewValidationError("ses config is required")
		}
		if c.SES.Region == "" || c.SES.AccessKey == "" || c.SES.SecretKey == "" {
			return NewValidationError("ses config requires region, access_key and secret_key")
		}
		return validateFromEmail(c.SES.FromEmail)
	default:
		return NewValidationError(fmt.Sprintf("unsupported provider kind: %s", c.Kind))
	}
}

func validateFromEmail(email string) error {
	if email == "" {
		return NewValidationError("from_email is required")
	}
	if !govalidator.IsEmail(email) {
		return NewValidationError(fmt.Sprintf("invalid from_email: %s", email))
	}
	return nil
}

// FromAddress returns the sender address and display name of the variant.
func (c *ProviderConfig) FromAddress() (email, name string) {
	switch c.Kind {
	case ProviderKindSMTP:
		if c.SMTP != nil {
			return c.SMTP.FromEmail, c.SMTP.FromName
		}
	case ProviderKindGmail:
		if c.Gmail != nil {
			return c.Gmail.FromEmail, c.Gmail.FromName
		}
	case ProviderKindSES:
		if c.SES != nil {
			return c.SES.FromEmail, c.SES.FromName
		}
	}
	return "", ""
}

// ParseProviderConfig decodes a decrypted config envelope.
func ParseProviderConfig(raw []byte) (*ProviderConfig, error) {
	var cfg ProviderConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse provider config: %w", err)
	}
	return &cfg, nil
}

// RedactedAccount is the API representation of a sender account: the caps,
// the provider kind and the non-secret sender identity, never the credentials.
type RedactedAccount struct {
	ID                  int64        `json:"id"`
	Name                string       `json:"name"`
	ProviderKind        ProviderKind `json:"provider_kind"`
	FromEmail           string       `json:"from_email,omitempty"`
	FromName            string       `json:"from_name,omitempty"`
	DailyCap            int          `json:"daily_cap"`
	CampaignCap         int          `json:"campaign_cap"`
	Priority            int          `json:"priority"`
	Enabled             bool         `json:"enabled"`
	CircuitBreakerUntil *time.Time   `json:"circuit_breaker_until,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// Redacted converts the account into its API representation. The decrypted
// config is consulted only for the sender identity when it is present.
func (a *SenderAccount) Redacted() *RedactedAccount {
	r := &RedactedAccount{
		ID:                  a.ID,
		Name:                a.Name,
		ProviderKind:        a.ProviderKind,
		DailyCap:            a.DailyCap,
		CampaignCap:         a.CampaignCap,
		Priority:            a.Priority,
		Enabled:             a.Enabled,
		CircuitBreakerUntil: a.CircuitBreakerUntil,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if a.Config != nil {
		r.FromEmail, r.FromName = a.Config.FromAddress()
	}
	return r
}

// UTCDate formats a time as the ISO date used by daily send counts and the
// deferred-send queue.
func UTCDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
