package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/crypto"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// AccountManagerService selects the next sender account and maintains the
// daily counters. Selection walks the enabled accounts in priority order and
// returns the first one under its caps with a closed circuit.
//
// There is deliberately no lock across the count-read, send and increment:
// the daily cap is a soft cap, and parallel campaigns may overshoot it by a
// few sends rather than serialize all deliveries.
type AccountManagerService struct {
	accountRepo   domain.AccountRepository
	sendCountRepo domain.SendCountRepository
	sendLogRepo   domain.SendLogRepository
	breaker       domain.CircuitBreakerService
	logger        logger.Logger
	secretKey     string
}

// NewAccountManagerService creates an account manager. secretKey decrypts the
// provider configs at selection time.
func NewAccountManagerService(
	accountRepo domain.AccountRepository,
	sendCountRepo domain.SendCountRepository,
	sendLogRepo domain.SendLogRepository,
	breaker domain.CircuitBreakerService,
	log logger.Logger,
	secretKey string,
) *AccountManagerService {
	return &AccountManagerService{
		accountRepo:   accountRepo,
		sendCountRepo: sendCountRepo,
		sendLogRepo:   sendLogRepo,
		breaker:       breaker,
		logger:        log,
		secretKey:     secretKey,
	}
}

// GetNextAvailableAccount returns the highest-priority eligible account with
// its config decrypted, or ErrNoEligibleAccount when every account is capped,
// broken or disabled.
func (s *AccountManagerService) GetNextAvailableAccount(ctx context.Context, campaignID *int64) (*domain.SenderAccount, error) {
	accounts, err := s.accountRepo.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	today := domain.UTCDate(time.Now())
	for _, account := range accounts {
		if s.breaker.IsOpen(ctx, account.ID) {
			continue
		}

		count, err := s.sendCountRepo.Count(ctx, account.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to read send count: %w", err)
		}
		if count >= account.DailyCap {
			continue
		}

		if campaignID != nil {
			used, err := s.sendLogRepo.CountByCampaignAndAccount(ctx, *campaignID, account.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to read campaign usage: %w", err)
			}
			if used >= account.CampaignCap {
				continue
			}
		}

		cfg, err := s.decryptConfig(account)
		if err != nil {
			// A corrupt config makes the account unusable, not the pass.
			s.logger.WithField("account_id", account.ID).
				Error(fmt.Sprintf("Failed to decrypt account config: %v", err))
			continue
		}
		account.Config = cfg
		return account, nil
	}

	return nil, domain.ErrNoEligibleAccount
}

func (s *AccountManagerService) decryptConfig(account *domain.SenderAccount) (*domain.ProviderConfig, error) {
	raw, err := crypto.DecryptFromHexString(account.EncryptedConfig, s.secretKey)
	if err != nil {
		return nil, err
	}
	return domain.ParseProviderConfig([]byte(raw))
}

// IncrementSendCount bumps the account's counter for today.
func (s *AccountManagerService) IncrementSendCount(ctx context.Context, accountID int64) error {
	return s.sendCountRepo.Increment(ctx, accountID, domain.UTCDate(time.Now()))
}

// TodayCount returns the account's counter for today.
func (s *AccountManagerService) TodayCount(ctx context.Context, accountID int64) (int, error) {
	return s.sendCountRepo.Count(ctx, accountID, domain.UTCDate(time.Now()))
}
