package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSenderAccountValidate(t *testing.T) {
	valid := func() *SenderAccount {
		return &SenderAccount{
			Name:         "primary",
			ProviderKind: ProviderKindSMTP,
			DailyCap:     100,
			CampaignCap:  50,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		a := valid()
		a.Name = ""
		assert.Error(t, a.Validate())
	})

	t.Run("unknown provider kind", func(t *testing.T) {
		a := valid()
		a.ProviderKind = "pigeon"
		assert.Error(t, a.Validate())
	})

	t.Run("zero caps", func(t *testing.T) {
		a := valid()
		a.DailyCap = 0
		assert.Error(t, a.Validate())

		a = valid()
		a.CampaignCap = 0
		assert.Error(t, a.Validate())
	})
}

func TestProviderConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProviderConfig
		wantErr bool
	}{
		{
			name: "valid smtp",
			cfg: ProviderConfig{
				Kind: ProviderKindSMTP,
				SMTP: &SMTPAccountConfig{Host: "smtp.example.com", Port: 587, FromEmail: "no-reply@example.com"},
			},
		},
		{
			name:    "smtp kind without smtp config",
			cfg:     ProviderConfig{Kind: ProviderKindSMTP},
			wantErr: true,
		},
		{
			name: "smtp port out of range",
			cfg: ProviderConfig{
				Kind: ProviderKindSMTP,
				SMTP: &SMTPAccountConfig{Host: "smtp.example.com", Port: 70000, FromEmail: "a@b.co"},
			},
			wantErr: true,
		},
		{
			name: "valid gmail",
			cfg: ProviderConfig{
				Kind:  ProviderKindGmail,
				Gmail: &GmailAccountConfig{ClientID: "id", ClientSecret: "secret", RefreshToken: "tok", FromEmail: "me@gmail.com"},
			},
		},
		{
			name: "gmail missing refresh token",
			cfg: ProviderConfig{
				Kind:  ProviderKindGmail,
				Gmail: &GmailAccountConfig{ClientID: "id", ClientSecret: "secret", FromEmail: "me@gmail.com"},
			},
			wantErr: true,
		},
		{
			name: "valid ses",
			cfg: ProviderConfig{
				Kind: ProviderKindSES,
				SES:  &SESAccountConfig{Region: "eu-west-1", AccessKey: "AK", SecretKey: "SK", FromEmail: "no-reply@example.com"},
			},
		},
		{
			name: "invalid from email",
			cfg: ProviderConfig{
				Kind: ProviderKindSMTP,
				SMTP: &SMTPAccountConfig{Host: "h", Port: 25, FromEmail: "not-an-email"},
			},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			cfg:     ProviderConfig{Kind: "carrier-pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSenderAccountRedacted(t *testing.T) {
	account := &SenderAccount{
		ID:              7,
		Name:            "primary",
		ProviderKind:    ProviderKindSMTP,
		EncryptedConfig: "deadbeef",
		Config: &ProviderConfig{
			Kind: ProviderKindSMTP,
			SMTP: &SMTPAccountConfig{
				Host:      "smtp.example.com",
				Port:      587,
				Username:  "user",
				Password:  "hunter2",
				FromEmail: "no-reply@example.com",
				FromName:  "Example",
			},
		},
		DailyCap:    100,
		CampaignCap: 50,
		Priority:    1,
		Enabled:     true,
	}

	redacted := account.Redacted()
	assert.Equal(t, int64(7), redacted.ID)
	assert.Equal(t, "no-reply@example.com", redacted.FromEmail)
	assert.Equal(t, "Example", redacted.FromName)

	// Neither the redacted form nor the account itself may leak credentials
	// through JSON serialization.
	for _, v := range []interface{}{redacted, account} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "hunter2")
		assert.NotContains(t, string(raw), "deadbeef")
	}
}

func TestParseProviderConfig(t *testing.T) {
	raw := []byte(`{"kind":"ses","ses":{"region":"us-east-1","access_key":"AK","secret_key":"SK","from_email":"x@y.co"}}`)
	cfg, err := ParseProviderConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, ProviderKindSES, cfg.Kind)
	require.NotNil(t, cfg.SES)
	assert.Equal(t, "us-east-1", cfg.SES.Region)

	_, err = ParseProviderConfig([]byte("{broken"))
	assert.Error(t, err)
}

func TestUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 01:30 on the 2nd in UTC+10 is still the 1st in UTC.
	assert.Equal(t, "2026-03-01", UTCDate(time.Date(2026, 3, 2, 1, 30, 0, 0, loc)))
}
