package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/crypto"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// AccountService manages sender accounts. Provider credentials are sealed
// with AES-GCM before they touch the database and only redacted views ever
// leave this service.
type AccountService struct {
	accountRepo domain.AccountRepository
	factory     domain.ProviderFactory
	logger      logger.Logger
	secretKey   string
}

// NewAccountService creates an account service.
func NewAccountService(accountRepo domain.AccountRepository, factory domain.ProviderFactory, log logger.Logger, secretKey string) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		factory:     factory,
		logger:      log,
		secretKey:   secretKey,
	}
}

func (s *AccountService) seal(account *domain.SenderAccount, cfg *domain.ProviderConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize provider config: %w", err)
	}
	sealed, err := crypto.EncryptString(string(raw), s.secretKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt provider config: %w", err)
	}
	account.EncryptedConfig = sealed
	account.Config = cfg
	return nil
}

// Create validates, seals and persists a new account.
func (s *AccountService) Create(ctx context.Context, account *domain.SenderAccount, cfg *domain.ProviderConfig) (*domain.RedactedAccount, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if account.ProviderKind != cfg.Kind {
		return nil, domain.NewValidationError("provider kind does not match config")
	}

	if err := s.seal(account, cfg); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": account.ID,
		"provider":   account.ProviderKind,
	}).Info("Sender account created")
	return account.Redacted(), nil
}

// Update validates, reseals and persists an existing account.
func (s *AccountService) Update(ctx context.Context, account *domain.SenderAccount, cfg *domain.ProviderConfig) (*domain.RedactedAccount, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if account.ProviderKind != cfg.Kind {
		return nil, domain.NewValidationError("provider kind does not match config")
	}

	if err := s.seal(account, cfg); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account.Redacted(), nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.accountRepo.Delete(ctx, id)
}

// List returns every account redacted. Configs that no longer decrypt leave
// the sender identity blank rather than failing the listing.
func (s *AccountService) List(ctx context.Context) ([]*domain.RedactedAccount, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	redacted := make([]*domain.RedactedAccount, 0, len(accounts))
	for _, account := range accounts {
		if cfg, err := s.decrypt(account); err == nil {
			account.Config = cfg
		} else {
			s.logger.WithField("account_id", account.ID).
				Warn(fmt.Sprintf("Failed to decrypt account config for listing: %v", err))
		}
		redacted = append(redacted, account.Redacted())
	}
	return redacted, nil
}

// Verify decrypts the account config, builds its provider and verifies the
// credentials against the live service.
func (s *AccountService) Verify(ctx context.Context, id int64) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	cfg, err := s.decrypt(account)
	if err != nil {
		return fmt.Errorf("failed to decrypt account config: %w", err)
	}

	provider, err := s.factory(account.ProviderKind, cfg, s.logger)
	if err != nil {
		return fmt.Errorf("failed to build provider: %w", err)
	}
	defer provider.Close()

	return provider.Verify(ctx)
}

func (s *AccountService) decrypt(account *domain.SenderAccount) (*domain.ProviderConfig, error) {
	raw, err := crypto.DecryptFromHexString(account.EncryptedConfig, s.secretKey)
	if err != nil {
		return nil, err
	}
	return domain.ParseProviderConfig([]byte(raw))
}
