package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/alerts"
	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
)

// Hand-written testify mocks for the repository and service interfaces the
// service tests exercise.

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) Create(ctx context.Context, account *domain.SenderAccount) error {
	return m.Called(ctx, account).Error(0)
}
func (m *mockAccountRepo) Update(ctx context.Context, account *domain.SenderAccount) error {
	return m.Called(ctx, account).Error(0)
}
func (m *mockAccountRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.SenderAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SenderAccount), args.Error(1)
}
func (m *mockAccountRepo) List(ctx context.Context) ([]*domain.SenderAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SenderAccount), args.Error(1)
}
func (m *mockAccountRepo) ListEnabled(ctx context.Context) ([]*domain.SenderAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SenderAccount), args.Error(1)
}
func (m *mockAccountRepo) SetCircuitBreakerUntil(ctx context.Context, id int64, until *time.Time) error {
	return m.Called(ctx, id, until).Error(0)
}
func (m *mockAccountRepo) ListCircuitBroken(ctx context.Context, now time.Time) ([]int64, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockSendCountRepo struct{ mock.Mock }

func (m *mockSendCountRepo) Increment(ctx context.Context, accountID int64, date string) error {
	return m.Called(ctx, accountID, date).Error(0)
}
func (m *mockSendCountRepo) Count(ctx context.Context, accountID int64, date string) (int, error) {
	args := m.Called(ctx, accountID, date)
	return args.Int(0), args.Error(1)
}

type mockSendLogRepo struct{ mock.Mock }

func (m *mockSendLogRepo) Create(ctx context.Context, log *domain.SendLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *mockSendLogRepo) CountByCampaignAndAccount(ctx context.Context, campaignID, accountID int64) (int, error) {
	args := m.Called(ctx, campaignID, accountID)
	return args.Int(0), args.Error(1)
}
func (m *mockSendLogRepo) ListByCampaign(ctx context.Context, campaignID int64) ([]*domain.SendLog, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SendLog), args.Error(1)
}

type mockCampaignRepo struct{ mock.Mock }

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}
func (m *mockCampaignRepo) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}
func (m *mockCampaignRepo) List(ctx context.Context) ([]*domain.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Campaign), args.Error(1)
}
func (m *mockCampaignRepo) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]*domain.Campaign, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Campaign), args.Error(1)
}
func (m *mockCampaignRepo) ListScheduledDue(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Campaign), args.Error(1)
}
func (m *mockCampaignRepo) MarkSending(ctx context.Context, id int64, startedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, startedAt)
	return args.Bool(0), args.Error(1)
}
func (m *mockCampaignRepo) IncrementCounters(ctx context.Context, id int64, successful, failed, queued int) error {
	return m.Called(ctx, id, successful, failed, queued).Error(0)
}
func (m *mockCampaignRepo) Complete(ctx context.Context, id int64, completedAt time.Time) error {
	return m.Called(ctx, id, completedAt).Error(0)
}
func (m *mockCampaignRepo) CompleteIfDrained(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, completedAt)
	return args.Bool(0), args.Error(1)
}

type mockQueueRepo struct{ mock.Mock }

func (m *mockQueueRepo) Create(ctx context.Context, entry *domain.QueueEntry) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *mockQueueRepo) ListDue(ctx context.Context, date string) ([]*domain.QueueEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QueueEntry), args.Error(1)
}
func (m *mockQueueRepo) ListByStatus(ctx context.Context, status domain.QueueStatus) ([]*domain.QueueEntry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QueueEntry), args.Error(1)
}
func (m *mockQueueRepo) UpdateStatus(ctx context.Context, id int64, status domain.QueueStatus, processedAt time.Time) error {
	return m.Called(ctx, id, status, processedAt).Error(0)
}

type mockTrackingRepo struct{ mock.Mock }

func (m *mockTrackingRepo) GetToken(ctx context.Context, campaignID int64, email string) (*domain.TrackingToken, error) {
	args := m.Called(ctx, campaignID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingToken), args.Error(1)
}
func (m *mockTrackingRepo) InsertToken(ctx context.Context, token *domain.TrackingToken) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
func (m *mockTrackingRepo) GetByToken(ctx context.Context, token string) (*domain.TrackingToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingToken), args.Error(1)
}
func (m *mockTrackingRepo) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockTemplateRepo struct{ mock.Mock }

func (m *mockTemplateRepo) Create(ctx context.Context, template *domain.Template) error {
	return m.Called(ctx, template).Error(0)
}
func (m *mockTemplateRepo) Update(ctx context.Context, template *domain.Template) error {
	return m.Called(ctx, template).Error(0)
}
func (m *mockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}
func (m *mockTemplateRepo) List(ctx context.Context) ([]*domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Template), args.Error(1)
}

type mockRecurringRepo struct{ mock.Mock }

func (m *mockRecurringRepo) Create(ctx context.Context, rc *domain.RecurringCampaign) error {
	return m.Called(ctx, rc).Error(0)
}
func (m *mockRecurringRepo) Update(ctx context.Context, rc *domain.RecurringCampaign) error {
	return m.Called(ctx, rc).Error(0)
}
func (m *mockRecurringRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockRecurringRepo) GetByID(ctx context.Context, id int64) (*domain.RecurringCampaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringCampaign), args.Error(1)
}
func (m *mockRecurringRepo) List(ctx context.Context) ([]*domain.RecurringCampaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RecurringCampaign), args.Error(1)
}
func (m *mockRecurringRepo) ListDue(ctx context.Context, now time.Time) ([]*domain.RecurringCampaign, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RecurringCampaign), args.Error(1)
}
func (m *mockRecurringRepo) MarkRun(ctx context.Context, id int64, lastRunAt, nextRunAt time.Time) error {
	return m.Called(ctx, id, lastRunAt, nextRunAt).Error(0)
}

type mockSequenceRepo struct{ mock.Mock }

func (m *mockSequenceRepo) CreateSequence(ctx context.Context, seq *domain.Sequence, steps []*domain.SequenceStep) error {
	return m.Called(ctx, seq, steps).Error(0)
}
func (m *mockSequenceRepo) GetSequence(ctx context.Context, id int64) (*domain.Sequence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sequence), args.Error(1)
}
func (m *mockSequenceRepo) ListSequences(ctx context.Context) ([]*domain.Sequence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Sequence), args.Error(1)
}
func (m *mockSequenceRepo) GetStep(ctx context.Context, sequenceID int64, order int) (*domain.SequenceStep, error) {
	args := m.Called(ctx, sequenceID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SequenceStep), args.Error(1)
}
func (m *mockSequenceRepo) Enroll(ctx context.Context, enrollment *domain.SequenceEnrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}
func (m *mockSequenceRepo) ListDueEnrollments(ctx context.Context, now time.Time) ([]*domain.SequenceEnrollment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SequenceEnrollment), args.Error(1)
}
func (m *mockSequenceRepo) AdvanceEnrollment(ctx context.Context, id int64, currentStep int, nextSendAt time.Time) error {
	return m.Called(ctx, id, currentStep, nextSendAt).Error(0)
}
func (m *mockSequenceRepo) CompleteEnrollment(ctx context.Context, id int64, completedAt time.Time) error {
	return m.Called(ctx, id, completedAt).Error(0)
}

type mockAccountManager struct{ mock.Mock }

func (m *mockAccountManager) GetNextAvailableAccount(ctx context.Context, campaignID *int64) (*domain.SenderAccount, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SenderAccount), args.Error(1)
}
func (m *mockAccountManager) IncrementSendCount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}
func (m *mockAccountManager) TodayCount(ctx context.Context, accountID int64) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

type mockBreaker struct{ mock.Mock }

func (m *mockBreaker) IsOpen(ctx context.Context, accountID int64) bool {
	return m.Called(ctx, accountID).Bool(0)
}
func (m *mockBreaker) RecordSuccess(ctx context.Context, accountID int64) {
	m.Called(ctx, accountID)
}
func (m *mockBreaker) RecordFailure(ctx context.Context, accountID int64) {
	m.Called(ctx, accountID)
}
func (m *mockBreaker) OpenCircuits(ctx context.Context) []int64 {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int64)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GetOrCreateToken(ctx context.Context, campaignID int64, recipientEmail string) (string, error) {
	args := m.Called(ctx, campaignID, recipientEmail)
	return args.String(0), args.Error(1)
}
func (m *mockTokenService) GetTokenDetails(ctx context.Context, token string) (*domain.TrackingToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackingToken), args.Error(1)
}
func (m *mockTokenService) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockExecutor struct{ mock.Mock }

func (m *mockExecutor) Run(ctx context.Context, params *domain.CampaignParams, emit func(domain.ProgressEvent)) {
	m.Called(ctx, params, emit)
}
func (m *mockExecutor) RunScheduled(ctx context.Context, campaign *domain.Campaign, blocks emailbuilder.Blocks) {
	m.Called(ctx, campaign, blocks)
}
func (m *mockExecutor) RunForRecipient(ctx context.Context, run *domain.RecipientRun) (int64, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(int64), args.Error(1)
}

type mockProvider struct{ mock.Mock }

func (m *mockProvider) Send(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *mockProvider) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *mockProvider) Close() error {
	return m.Called().Error(0)
}

type mockAlertMailer struct{ mock.Mock }

func (m *mockAlertMailer) SendCircuitBreakerAlert(accountName string, accountID int64, failures int, openUntil time.Time) error {
	return m.Called(accountName, accountID, failures, openUntil).Error(0)
}
func (m *mockAlertMailer) SendInterruptedCampaignsAlert(campaigns []alerts.InterruptedCampaign) error {
	return m.Called(campaigns).Error(0)
}
