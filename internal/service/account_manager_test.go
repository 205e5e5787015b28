package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/crypto"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

const testSecretKey = "test-secret-key"

func encryptedSMTPConfig(t *testing.T) string {
	t.Helper()
	cfg := &domain.ProviderConfig{
		Kind: domain.ProviderKindSMTP,
		SMTP: &domain.SMTPAccountConfig{
			Host: "mail.example.com", Port: 587,
			Username: "sender", Password: "hunter2",
			FromEmail: "news@example.com",
		},
	}
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	sealed, err := crypto.EncryptString(string(raw), testSecretKey)
	require.NoError(t, err)
	return sealed
}

func eligibleAccount(t *testing.T, id int64, priority int) *domain.SenderAccount {
	account := testAccount(id)
	account.Priority = priority
	account.EncryptedConfig = encryptedSMTPConfig(t)
	return account
}

func newTestAccountManager(accounts *mockAccountRepo, counts *mockSendCountRepo, logs *mockSendLogRepo, breaker *mockBreaker) *AccountManagerService {
	return NewAccountManagerService(accounts, counts, logs, breaker,
		logger.NewLoggerWithLevel("disabled"), testSecretKey)
}

func TestAccountManager_SelectsByPriority(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()

	first := eligibleAccount(t, 1, 1)
	second := eligibleAccount(t, 2, 2)
	accounts.On("ListEnabled", ctx).Return([]*domain.SenderAccount{first, second}, nil)
	breaker.On("IsOpen", ctx, int64(1)).Return(false)
	counts.On("Count", ctx, int64(1), domain.UTCDate(time.Now())).Return(10, nil)

	account, err := mgr.GetNextAvailableAccount(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	require.NotNil(t, account.Config, "selected account must carry its decrypted config")
	assert.Equal(t, "news@example.com", account.Config.SMTP.FromEmail)
	assert.Equal(t, "hunter2", account.Config.SMTP.Password)
}

func TestAccountManager_SkipsCappedAndBrokenAccounts(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()
	today := domain.UTCDate(time.Now())

	broken := eligibleAccount(t, 1, 1)
	capped := eligibleAccount(t, 2, 2)
	capped.DailyCap = 100
	available := eligibleAccount(t, 3, 3)

	accounts.On("ListEnabled", ctx).Return([]*domain.SenderAccount{broken, capped, available}, nil)
	breaker.On("IsOpen", ctx, int64(1)).Return(true)
	breaker.On("IsOpen", ctx, int64(2)).Return(false)
	breaker.On("IsOpen", ctx, int64(3)).Return(false)
	counts.On("Count", ctx, int64(2), today).Return(100, nil)
	counts.On("Count", ctx, int64(3), today).Return(0, nil)

	account, err := mgr.GetNextAvailableAccount(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
}

func TestAccountManager_CampaignCapCountsAllStatuses(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()
	campaignID := int64(11)

	exhausted := eligibleAccount(t, 1, 1)
	exhausted.CampaignCap = 50
	fresh := eligibleAccount(t, 2, 2)

	accounts.On("ListEnabled", ctx).Return([]*domain.SenderAccount{exhausted, fresh}, nil)
	breaker.On("IsOpen", ctx, mock.AnythingOfType("int64")).Return(false)
	counts.On("Count", ctx, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).Return(0, nil)
	// 50 log rows of any status exhaust a cap of 50.
	logs.On("CountByCampaignAndAccount", ctx, campaignID, int64(1)).Return(50, nil)
	logs.On("CountByCampaignAndAccount", ctx, campaignID, int64(2)).Return(0, nil)

	account, err := mgr.GetNextAvailableAccount(ctx, &campaignID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), account.ID)
}

func TestAccountManager_NoEligibleAccount(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()

	capped := eligibleAccount(t, 1, 1)
	capped.DailyCap = 10
	accounts.On("ListEnabled", ctx).Return([]*domain.SenderAccount{capped}, nil)
	breaker.On("IsOpen", ctx, int64(1)).Return(false)
	counts.On("Count", ctx, int64(1), domain.UTCDate(time.Now())).Return(10, nil)

	_, err := mgr.GetNextAvailableAccount(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrNoEligibleAccount)
}

func TestAccountManager_SkipsUndecryptableConfig(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()

	corrupt := testAccount(1)
	corrupt.EncryptedConfig = "not-hex-ciphertext"
	good := eligibleAccount(t, 2, 2)

	accounts.On("ListEnabled", ctx).Return([]*domain.SenderAccount{corrupt, good}, nil)
	breaker.On("IsOpen", ctx, mock.AnythingOfType("int64")).Return(false)
	counts.On("Count", ctx, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).Return(0, nil)

	account, err := mgr.GetNextAvailableAccount(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), account.ID)
}

func TestAccountManager_IncrementSendCount(t *testing.T) {
	accounts := &mockAccountRepo{}
	counts := &mockSendCountRepo{}
	logs := &mockSendLogRepo{}
	breaker := &mockBreaker{}
	mgr := newTestAccountManager(accounts, counts, logs, breaker)
	ctx := context.Background()

	counts.On("Increment", ctx, int64(1), domain.UTCDate(time.Now())).Return(nil)
	require.NoError(t, mgr.IncrementSendCount(ctx, 1))
	counts.AssertExpectations(t)
}
