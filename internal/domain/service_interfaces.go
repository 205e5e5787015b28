package domain

import (
	"context"
	"time"

	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks -source=service_interfaces.go

// CircuitBreakerService tracks per-account consecutive delivery failures
// and opens a cooldown once the threshold is reached. Failure counts are
// in-memory only; the cooldown expiry is persisted on the account row so a
// restart forgives counts but not cooldowns.
type CircuitBreakerService interface {
	IsOpen(ctx context.Context, accountID int64) bool
	RecordSuccess(ctx context.Context, accountID int64)
	RecordFailure(ctx context.Context, accountID int64)
	OpenCircuits(ctx context.Context) []int64
}

// AccountManagerService selects sender accounts and maintains daily counts.
// There is no lock across the count-read → send → increment window; the
// daily cap is a soft cap under parallel campaigns.
type AccountManagerService interface {
	// GetNextAvailableAccount returns the highest-priority eligible account
	// with its config decrypted, or ErrNoEligibleAccount. A non-nil
	// campaignID additionally applies the per-campaign cap.
	GetNextAvailableAccount(ctx context.Context, campaignID *int64) (*SenderAccount, error)
	IncrementSendCount(ctx context.Context, accountID int64) error
	TodayCount(ctx context.Context, accountID int64) (int, error)
}

// TrackingTokenService mints and resolves tracking tokens.
type TrackingTokenService interface {
	// GetOrCreateToken is idempotent: concurrent calls for the same
	// (campaignID, recipientEmail) return the same token.
	GetOrCreateToken(ctx context.Context, campaignID int64, recipientEmail string) (string, error)
	GetTokenDetails(ctx context.Context, token string) (*TrackingToken, error)
	RecordEvent(ctx context.Context, event *TrackingEvent) error
}

// CampaignParams is the input of a one-shot campaign run.
type CampaignParams struct {
	Name        string                    `json:"name"`
	Blocks      emailbuilder.Blocks       `json:"blocks"`
	Subject     string                    `json:"subject"`
	Recipients  []Recipient               `json:"recipients"`
	CC          []string                  `json:"cc,omitempty"`
	BCC         []string                  `json:"bcc,omitempty"`
	Tracking    emailbuilder.TrackingConfig `json:"tracking"`
	Attachments []Attachment              `json:"attachments,omitempty"`
}

// RecipientRun is the single-recipient delivery request used by the queue
// drain and sequence dispatch. CampaignID scopes the per-campaign cap and
// is nil for sequence sends; TrackingID scopes tracking tokens and send
// logs (negative for sequences).
type RecipientRun struct {
	CampaignID  *int64
	TrackingID  int64
	Blocks      emailbuilder.Blocks
	Subject     string
	Recipient   Recipient
	CC          []string
	BCC         []string
	Tracking    emailbuilder.TrackingConfig
	Attachments []Attachment
}

// ExecutorService runs campaigns. Run drives the full per-recipient loop
// and reports through emit; RunForRecipient performs one delivery with the
// same primitives and leaves campaign bookkeeping to the caller.
type ExecutorService interface {
	Run(ctx context.Context, params *CampaignParams, emit func(ProgressEvent))
	RunScheduled(ctx context.Context, campaign *Campaign, blocks emailbuilder.Blocks)
	RunForRecipient(ctx context.Context, run *RecipientRun) (accountID int64, err error)
}

// QueueProcessorService drains due deferred recipients, one attempt per
// entry per pass.
type QueueProcessorService interface {
	Drain(ctx context.Context) (processed, failed int, err error)
}

// SchedulerService owns the cron wheel driving the dispatchers.
type SchedulerService interface {
	Start() error
	Stop()
	IsRunning() bool
}

// AccountService manages sender accounts over their encrypted configs.
type AccountService interface {
	Create(ctx context.Context, account *SenderAccount, cfg *ProviderConfig) (*RedactedAccount, error)
	Update(ctx context.Context, account *SenderAccount, cfg *ProviderConfig) (*RedactedAccount, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*RedactedAccount, error)
	// Verify decrypts the account config, builds its provider and calls
	// Verify on it.
	Verify(ctx context.Context, id int64) error
}

// CampaignService exposes campaign reads and scheduling to the HTTP surface.
type CampaignService interface {
	Schedule(ctx context.Context, params *CampaignParams, scheduledFor time.Time) (*Campaign, error)
	Get(ctx context.Context, id int64) (*Campaign, error)
	List(ctx context.Context) ([]*Campaign, error)
}
