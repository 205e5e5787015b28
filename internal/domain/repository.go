package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks -source=repository.go

// AccountRepository persists sender accounts. ListEnabled returns enabled
// accounts ordered by priority ASC, id ASC — the selection order of the
// account manager.
type AccountRepository interface {
	Create(ctx context.Context, account *SenderAccount) error
	Update(ctx context.Context, account *SenderAccount) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*SenderAccount, error)
	List(ctx context.Context) ([]*SenderAccount, error)
	ListEnabled(ctx context.Context) ([]*SenderAccount, error)
	// SetCircuitBreakerUntil persists the breaker cooldown expiry; nil clears it.
	SetCircuitBreakerUntil(ctx context.Context, id int64, until *time.Time) error
	// ListCircuitBroken returns ids of accounts whose persisted cooldown is
	// still in the future.
	ListCircuitBroken(ctx context.Context, now time.Time) ([]int64, error)
}

// SendCountRepository maintains the per-account per-UTC-date tallies.
// Increment is an atomic upsert (insert 1, on conflict count+1) and is the
// sole writer of the row.
type SendCountRepository interface {
	Increment(ctx context.Context, accountID int64, date string) error
	Count(ctx context.Context, accountID int64, date string) (int, error)
}

// CampaignRepository persists campaigns. Counter mutations are SQL-level
// x = x + n increments so concurrent writers (executor and queue drain)
// stay correct.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id int64) (*Campaign, error)
	List(ctx context.Context) ([]*Campaign, error)
	ListByStatus(ctx context.Context, status CampaignStatus) ([]*Campaign, error)
	// ListScheduledDue returns scheduled campaigns whose scheduled_for has passed.
	ListScheduledDue(ctx context.Context, now time.Time) ([]*Campaign, error)
	// MarkSending promotes a scheduled campaign; returns false when another
	// tick already won the status-guarded update.
	MarkSending(ctx context.Context, id int64, startedAt time.Time) (bool, error)
	// IncrementCounters adds the deltas to the successful/failed/queued columns.
	IncrementCounters(ctx context.Context, id int64, successful, failed, queued int) error
	// Complete marks the campaign completed with the given timestamp.
	Complete(ctx context.Context, id int64, completedAt time.Time) error
	// CompleteIfDrained sets completed_at (and status) once
	// successful + failed have caught up with total_recipients; returns
	// whether the row transitioned.
	CompleteIfDrained(ctx context.Context, id int64, completedAt time.Time) (bool, error)
}

// SendLogRepository appends delivery attempt rows; logs are never updated
// or deleted.
type SendLogRepository interface {
	Create(ctx context.Context, log *SendLog) error
	// CountByCampaignAndAccount counts attempts of any status — failed
	// attempts burn campaign quota too.
	CountByCampaignAndAccount(ctx context.Context, campaignID, accountID int64) (int, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]*SendLog, error)
}

// QueueRepository persists deferred recipients.
type QueueRepository interface {
	Create(ctx context.Context, entry *QueueEntry) error
	// ListDue returns pending entries with scheduled_for ≤ date, ordered by id.
	ListDue(ctx context.Context, date string) ([]*QueueEntry, error)
	ListByStatus(ctx context.Context, status QueueStatus) ([]*QueueEntry, error)
	UpdateStatus(ctx context.Context, id int64, status QueueStatus, processedAt time.Time) error
}

// TrackingRepository persists tokens and their open/click events.
type TrackingRepository interface {
	GetToken(ctx context.Context, campaignID int64, recipientEmail string) (*TrackingToken, error)
	// InsertToken inserts with ON CONFLICT DO NOTHING semantics; inserted is
	// false when the (campaign, recipient) pair already holds a token.
	InsertToken(ctx context.Context, token *TrackingToken) (inserted bool, err error)
	GetByToken(ctx context.Context, token string) (*TrackingToken, error)
	RecordEvent(ctx context.Context, event *TrackingEvent) error
}

// TemplateRepository persists block-based templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *Template) error
	Update(ctx context.Context, template *Template) error
	GetByID(ctx context.Context, id int64) (*Template, error)
	List(ctx context.Context) ([]*Template, error)
}

// RecurringRepository persists recurring campaigns.
type RecurringRepository interface {
	Create(ctx context.Context, rc *RecurringCampaign) error
	Update(ctx context.Context, rc *RecurringCampaign) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*RecurringCampaign, error)
	List(ctx context.Context) ([]*RecurringCampaign, error)
	// ListDue returns enabled rows with next_run_at ≤ now.
	ListDue(ctx context.Context, now time.Time) ([]*RecurringCampaign, error)
	// MarkRun records a fire and schedules the next one.
	MarkRun(ctx context.Context, id int64, lastRunAt, nextRunAt time.Time) error
}

// SequenceRepository persists sequences, their steps and enrollments.
type SequenceRepository interface {
	CreateSequence(ctx context.Context, seq *Sequence, steps []*SequenceStep) error
	GetSequence(ctx context.Context, id int64) (*Sequence, error)
	ListSequences(ctx context.Context) ([]*Sequence, error)
	// GetStep returns the step at the given order, or ErrSequenceNotFound
	// when the sequence has no such step.
	GetStep(ctx context.Context, sequenceID int64, order int) (*SequenceStep, error)
	Enroll(ctx context.Context, enrollment *SequenceEnrollment) error
	// ListDueEnrollments returns active enrollments of enabled sequences with
	// next_send_at ≤ now.
	ListDueEnrollments(ctx context.Context, now time.Time) ([]*SequenceEnrollment, error)
	// AdvanceEnrollment moves the enrollment to the next step.
	AdvanceEnrollment(ctx context.Context, id int64, currentStep int, nextSendAt time.Time) error
	// CompleteEnrollment marks the enrollment completed and clears next_send_at.
	CompleteEnrollment(ctx context.Context, id int64, completedAt time.Time) error
}
