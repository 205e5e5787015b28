package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/alerts"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// breakerState is the per-account failure tracker. failures is never
// persisted; openUntil mirrors the account row so cooldowns survive restarts
// while counts do not.
type breakerState struct {
	mu        sync.Mutex
	failures  int
	openUntil time.Time
	hydrated  bool
}

// CircuitBreakerService opens a per-account cooldown after a run of
// consecutive delivery failures.
type CircuitBreakerService struct {
	accountRepo domain.AccountRepository
	mailer      alerts.Mailer
	logger      logger.Logger
	threshold   int
	cooldown    time.Duration

	states sync.Map // accountID -> *breakerState
}

// NewCircuitBreakerService creates a circuit breaker with the given failure
// threshold and cooldown window.
func NewCircuitBreakerService(
	accountRepo domain.AccountRepository,
	mailer alerts.Mailer,
	log logger.Logger,
	threshold int,
	cooldown time.Duration,
) *CircuitBreakerService {
	return &CircuitBreakerService{
		accountRepo: accountRepo,
		mailer:      mailer,
		logger:      log,
		threshold:   threshold,
		cooldown:    cooldown,
	}
}

func (s *CircuitBreakerService) state(accountID int64) *breakerState {
	if st, ok := s.states.Load(accountID); ok {
		return st.(*breakerState)
	}
	st, _ := s.states.LoadOrStore(accountID, &breakerState{})
	return st.(*breakerState)
}

// hydrate loads the persisted cooldown expiry on first contact with an
// account, so a restart keeps circuits open. Caller holds st.mu.
func (s *CircuitBreakerService) hydrate(ctx context.Context, accountID int64, st *breakerState) {
	if st.hydrated {
		return
	}
	st.hydrated = true

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		s.logger.WithField("account_id", accountID).
			Error(fmt.Sprintf("Failed to hydrate circuit breaker state: %v", err))
		return
	}
	if account.CircuitBreakerUntil != nil {
		st.openUntil = *account.CircuitBreakerUntil
	}
}

// IsOpen reports whether the account is in cooldown.
func (s *CircuitBreakerService) IsOpen(ctx context.Context, accountID int64) bool {
	st := s.state(accountID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.hydrate(ctx, accountID, st)
	return time.Now().UTC().Before(st.openUntil)
}

// RecordSuccess resets the failure streak and closes the circuit. A delivery
// can land on an account whose circuit opened mid-flight; the provider just
// proved the account healthy, so the cooldown does not outlive the success.
func (s *CircuitBreakerService) RecordSuccess(ctx context.Context, accountID int64) {
	st := s.state(accountID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.hydrate(ctx, accountID, st)
	st.failures = 0

	if !st.openUntil.IsZero() {
		st.openUntil = time.Time{}
		if err := s.accountRepo.SetCircuitBreakerUntil(ctx, accountID, nil); err != nil {
			s.logger.WithField("account_id", accountID).
				Error(fmt.Sprintf("Failed to clear circuit breaker state: %v", err))
		}
	}
}

// RecordFailure extends the failure streak and opens the circuit once the
// threshold is reached. The open state is kept in memory even when the
// persist fails, so a flapping database never silently closes a circuit.
func (s *CircuitBreakerService) RecordFailure(ctx context.Context, accountID int64) {
	st := s.state(accountID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.hydrate(ctx, accountID, st)
	st.failures++
	if st.failures < s.threshold {
		return
	}

	openUntil := time.Now().UTC().Add(s.cooldown)
	failures := st.failures
	st.openUntil = openUntil
	st.failures = 0

	s.logger.WithFields(map[string]interface{}{
		"account_id": accountID,
		"failures":   failures,
		"open_until": openUntil,
	}).Warn("Circuit breaker opened")

	if err := s.accountRepo.SetCircuitBreakerUntil(ctx, accountID, &openUntil); err != nil {
		s.logger.WithField("account_id", accountID).
			Error(fmt.Sprintf("Failed to persist circuit breaker state: %v", err))
	}

	accountName := fmt.Sprintf("account %d", accountID)
	if account, err := s.accountRepo.GetByID(ctx, accountID); err == nil {
		accountName = account.Name
	}
	if err := s.mailer.SendCircuitBreakerAlert(accountName, accountID, failures, openUntil); err != nil {
		s.logger.WithField("account_id", accountID).
			Error(fmt.Sprintf("Failed to send circuit breaker alert: %v", err))
	}
}

// OpenCircuits returns the ids of every account currently in cooldown,
// merging in-memory state with cooldowns persisted before this process
// started.
func (s *CircuitBreakerService) OpenCircuits(ctx context.Context) []int64 {
	now := time.Now().UTC()
	open := map[int64]bool{}

	s.states.Range(func(key, value interface{}) bool {
		st := value.(*breakerState)
		st.mu.Lock()
		if now.Before(st.openUntil) {
			open[key.(int64)] = true
		}
		st.mu.Unlock()
		return true
	})

	persisted, err := s.accountRepo.ListCircuitBroken(ctx, now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list persisted circuit breakers: %v", err))
	}
	for _, id := range persisted {
		open[id] = true
	}

	ids := make([]int64, 0, len(open))
	for id := range open {
		ids = append(ids, id)
	}
	return ids
}
