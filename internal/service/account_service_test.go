package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/crypto"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func newTestAccountService(repo *mockAccountRepo, factory domain.ProviderFactory) *AccountService {
	return NewAccountService(repo, factory, logger.NewLoggerWithLevel("disabled"), testSecretKey)
}

func smtpProviderConfig() *domain.ProviderConfig {
	return &domain.ProviderConfig{
		Kind: domain.ProviderKindSMTP,
		SMTP: &domain.SMTPAccountConfig{
			Host: "mail.example.com", Port: 587,
			Username: "sender", Password: "hunter2",
			FromEmail: "news@example.com", FromName: "News",
		},
	}
}

func TestAccountService_CreateSealsCredentials(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestAccountService(repo, nil)
	ctx := context.Background()

	var persisted *domain.SenderAccount
	repo.On("Create", ctx, mock.AnythingOfType("*domain.SenderAccount")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.SenderAccount)
			persisted.ID = 7
		}).Return(nil)

	account := testAccount(0)
	redacted, err := svc.Create(ctx, account, smtpProviderConfig())
	require.NoError(t, err)

	// The stored config is ciphertext, not JSON.
	require.NotNil(t, persisted)
	assert.NotEmpty(t, persisted.EncryptedConfig)
	assert.NotContains(t, persisted.EncryptedConfig, "hunter2")

	// It round-trips back to the original config.
	raw, err := crypto.DecryptFromHexString(persisted.EncryptedConfig, testSecretKey)
	require.NoError(t, err)
	var cfg domain.ProviderConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, "hunter2", cfg.SMTP.Password)

	// The caller only ever sees the redacted view.
	assert.Equal(t, int64(7), redacted.ID)
	assert.Equal(t, "news@example.com", redacted.FromEmail)
	out, err := json.Marshal(redacted)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hunter2")
}

func TestAccountService_CreateValidation(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestAccountService(repo, nil)
	ctx := context.Background()

	t.Run("rejects invalid account", func(t *testing.T) {
		account := testAccount(0)
		account.DailyCap = 0
		_, err := svc.Create(ctx, account, smtpProviderConfig())
		assert.Error(t, err)
	})

	t.Run("rejects kind mismatch", func(t *testing.T) {
		account := testAccount(0)
		account.ProviderKind = domain.ProviderKindSES
		_, err := svc.Create(ctx, account, smtpProviderConfig())
		assert.ErrorContains(t, err, "does not match")
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := smtpProviderConfig()
		cfg.SMTP.FromEmail = "not-an-email"
		_, err := svc.Create(ctx, testAccount(0), cfg)
		assert.Error(t, err)
	})

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_ListRedactsAndSurvivesBadConfig(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestAccountService(repo, nil)
	ctx := context.Background()

	good := eligibleAccount(t, 1, 1)
	corrupt := testAccount(2)
	corrupt.EncryptedConfig = "garbage"

	repo.On("List", ctx).Return([]*domain.SenderAccount{good, corrupt}, nil)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "news@example.com", listed[0].FromEmail)
	// The undecryptable account still lists, just without its identity.
	assert.Equal(t, int64(2), listed[1].ID)
	assert.Empty(t, listed[1].FromEmail)
}

func TestAccountService_Verify(t *testing.T) {
	repo := &mockAccountRepo{}
	provider := &mockProvider{}
	factory := func(kind domain.ProviderKind, cfg *domain.ProviderConfig, log logger.Logger) (domain.Provider, error) {
		return provider, nil
	}
	svc := newTestAccountService(repo, factory)
	ctx := context.Background()

	account := eligibleAccount(t, 1, 1)
	repo.On("GetByID", ctx, int64(1)).Return(account, nil)
	provider.On("Verify", ctx).Return(nil)
	provider.On("Close").Return(nil)

	require.NoError(t, svc.Verify(ctx, 1))
	provider.AssertExpectations(t)
}

func TestAccountService_VerifyUnknownAccount(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestAccountService(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrAccountNotFound)
	assert.ErrorIs(t, svc.Verify(ctx, 404), domain.ErrAccountNotFound)
}

func TestAccountService_Delete(t *testing.T) {
	repo := &mockAccountRepo{}
	svc := newTestAccountService(repo, nil)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 1))
	repo.AssertExpectations(t)
}
