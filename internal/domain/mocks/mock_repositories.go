package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/mailfleet/mailfleet/internal/domain"
	gomock "github.com/golang/mock/gomock"
)

// MockAccountRepository is a mock of AccountRepository interface.
type MockAccountRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAccountRepositoryMockRecorder
}

// MockAccountRepositoryMockRecorder is the mock recorder for MockAccountRepository.
type MockAccountRepositoryMockRecorder struct {
	mock *MockAccountRepository
}

// NewMockAccountRepository creates a new mock instance.
func NewMockAccountRepository(ctrl *gomock.Controller) *MockAccountRepository {
	mock := &MockAccountRepository{ctrl: ctrl}
	mock.recorder = &MockAccountRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountRepository) EXPECT() *MockAccountRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.SenderAccount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAccountRepositoryMockRecorder) Create(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountRepository)(nil).Create), ctx, account)
}

// Update mocks base method.
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.SenderAccount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, account)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockAccountRepositoryMockRecorder) Update(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountRepository)(nil).Update), ctx, account)
}

// Delete mocks base method.
func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockAccountRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAccountRepository)(nil).Delete), ctx, id)
}

// GetByID mocks base method.
func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.SenderAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.SenderAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAccountRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAccountRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.SenderAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.SenderAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockAccountRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAccountRepository)(nil).List), ctx)
}

// ListEnabled mocks base method.
func (m *MockAccountRepository) ListEnabled(ctx context.Context) ([]*domain.SenderAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListEnabled", ctx)
	ret0, _ := ret[0].([]*domain.SenderAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListEnabled indicates an expected call of ListEnabled.
func (mr *MockAccountRepositoryMockRecorder) ListEnabled(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListEnabled", reflect.TypeOf((*MockAccountRepository)(nil).ListEnabled), ctx)
}

// SetCircuitBreakerUntil mocks base method.
func (m *MockAccountRepository) SetCircuitBreakerUntil(ctx context.Context, id int64, until *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCircuitBreakerUntil", ctx, id, until)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCircuitBreakerUntil indicates an expected call of SetCircuitBreakerUntil.
func (mr *MockAccountRepositoryMockRecorder) SetCircuitBreakerUntil(ctx, id, until interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCircuitBreakerUntil", reflect.TypeOf((*MockAccountRepository)(nil).SetCircuitBreakerUntil), ctx, id, until)
}

// ListCircuitBroken mocks base method.
func (m *MockAccountRepository) ListCircuitBroken(ctx context.Context, now time.Time) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCircuitBroken", ctx, now)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCircuitBroken indicates an expected call of ListCircuitBroken.
func (mr *MockAccountRepositoryMockRecorder) ListCircuitBroken(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCircuitBroken", reflect.TypeOf((*MockAccountRepository)(nil).ListCircuitBroken), ctx, now)
}

// MockSendCountRepository is a mock of SendCountRepository interface.
type MockSendCountRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSendCountRepositoryMockRecorder
}

// MockSendCountRepositoryMockRecorder is the mock recorder for MockSendCountRepository.
type MockSendCountRepositoryMockRecorder struct {
	mock *MockSendCountRepository
}

// NewMockSendCountRepository creates a new mock instance.
func NewMockSendCountRepository(ctrl *gomock.Controller) *MockSendCountRepository {
	mock := &MockSendCountRepository{ctrl: ctrl}
	mock.recorder = &MockSendCountRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSendCountRepository) EXPECT() *MockSendCountRepositoryMockRecorder {
	return m.recorder
}

// Increment mocks base method.
func (m *MockSendCountRepository) Increment(ctx context.Context, accountID int64, date string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Increment", ctx, accountID, date)
	ret0, _ := ret[0].(error)
	return ret0
}

// Increment indicates an expected call of Increment.
func (mr *MockSendCountRepositoryMockRecorder) Increment(ctx, accountID, date interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Increment", reflect.TypeOf((*MockSendCountRepository)(nil).Increment), ctx, accountID, date)
}

// Count mocks base method.
func (m *MockSendCountRepository) Count(ctx context.Context, accountID int64, date string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count", ctx, accountID, date)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockSendCountRepositoryMockRecorder) Count(ctx, accountID, date interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockSendCountRepository)(nil).Count), ctx, accountID, date)
}

// MockCampaignRepository is a mock of CampaignRepository interface.
type MockCampaignRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCampaignRepositoryMockRecorder
}

// MockCampaignRepositoryMockRecorder is the mock recorder for MockCampaignRepository.
type MockCampaignRepositoryMockRecorder struct {
	mock *MockCampaignRepository
}

// NewMockCampaignRepository creates a new mock instance.
func NewMockCampaignRepository(ctrl *gomock.Controller) *MockCampaignRepository {
	mock := &MockCampaignRepository{ctrl: ctrl}
	mock.recorder = &MockCampaignRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCampaignRepository) EXPECT() *MockCampaignRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockCampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, campaign)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCampaignRepositoryMockRecorder) Create(ctx, campaign interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCampaignRepository)(nil).Create), ctx, campaign)
}

// GetByID mocks base method.
func (m *MockCampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCampaignRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCampaignRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockCampaignRepository) List(ctx context.Context) ([]*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCampaignRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCampaignRepository)(nil).List), ctx)
}

// ListByStatus mocks base method.
func (m *MockCampaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStatus", ctx, status)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByStatus indicates an expected call of ListByStatus.
func (mr *MockCampaignRepositoryMockRecorder) ListByStatus(ctx, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStatus", reflect.TypeOf((*MockCampaignRepository)(nil).ListByStatus), ctx, status)
}

// ListScheduledDue mocks base method.
func (m *MockCampaignRepository) ListScheduledDue(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListScheduledDue", ctx, now)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListScheduledDue indicates an expected call of ListScheduledDue.
func (mr *MockCampaignRepositoryMockRecorder) ListScheduledDue(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListScheduledDue", reflect.TypeOf((*MockCampaignRepository)(nil).ListScheduledDue), ctx, now)
}

// MarkSending mocks base method.
func (m *MockCampaignRepository) MarkSending(ctx context.Context, id int64, startedAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkSending", ctx, id, startedAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkSending indicates an expected call of MarkSending.
func (mr *MockCampaignRepositoryMockRecorder) MarkSending(ctx, id, startedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkSending", reflect.TypeOf((*MockCampaignRepository)(nil).MarkSending), ctx, id, startedAt)
}

// IncrementCounters mocks base method.
func (m *MockCampaignRepository) IncrementCounters(ctx context.Context, id int64, successful, failed, queued int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCounters", ctx, id, successful, failed, queued)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementCounters indicates an expected call of IncrementCounters.
func (mr *MockCampaignRepositoryMockRecorder) IncrementCounters(ctx, id, successful, failed, queued interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounters", reflect.TypeOf((*MockCampaignRepository)(nil).IncrementCounters), ctx, id, successful, failed, queued)
}

// Complete mocks base method.
func (m *MockCampaignRepository) Complete(ctx context.Context, id int64, completedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Complete", ctx, id, completedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// Complete indicates an expected call of Complete.
func (mr *MockCampaignRepositoryMockRecorder) Complete(ctx, id, completedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Complete", reflect.TypeOf((*MockCampaignRepository)(nil).Complete), ctx, id, completedAt)
}

// CompleteIfDrained mocks base method.
func (m *MockCampaignRepository) CompleteIfDrained(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteIfDrained", ctx, id, completedAt)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompleteIfDrained indicates an expected call of CompleteIfDrained.
func (mr *MockCampaignRepositoryMockRecorder) CompleteIfDrained(ctx, id, completedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteIfDrained", reflect.TypeOf((*MockCampaignRepository)(nil).CompleteIfDrained), ctx, id, completedAt)
}

// MockSendLogRepository is a mock of SendLogRepository interface.
type MockSendLogRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSendLogRepositoryMockRecorder
}

// MockSendLogRepositoryMockRecorder is the mock recorder for MockSendLogRepository.
type MockSendLogRepositoryMockRecorder struct {
	mock *MockSendLogRepository
}

// NewMockSendLogRepository creates a new mock instance.
func NewMockSendLogRepository(ctrl *gomock.Controller) *MockSendLogRepository {
	mock := &MockSendLogRepository{ctrl: ctrl}
	mock.recorder = &MockSendLogRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSendLogRepository) EXPECT() *MockSendLogRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSendLogRepository) Create(ctx context.Context, log *domain.SendLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockSendLogRepositoryMockRecorder) Create(ctx, log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSendLogRepository)(nil).Create), ctx, log)
}

// CountByCampaignAndAccount mocks base method.
func (m *MockSendLogRepository) CountByCampaignAndAccount(ctx context.Context, campaignID, accountID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByCampaignAndAccount", ctx, campaignID, accountID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByCampaignAndAccount indicates an expected call of CountByCampaignAndAccount.
func (mr *MockSendLogRepositoryMockRecorder) CountByCampaignAndAccount(ctx, campaignID, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByCampaignAndAccount", reflect.TypeOf((*MockSendLogRepository)(nil).CountByCampaignAndAccount), ctx, campaignID, accountID)
}

// ListByCampaign mocks base method.
func (m *MockSendLogRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]*domain.SendLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByCampaign", ctx, campaignID)
	ret0, _ := ret[0].([]*domain.SendLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByCampaign indicates an expected call of ListByCampaign.
func (mr *MockSendLogRepositoryMockRecorder) ListByCampaign(ctx, campaignID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByCampaign", reflect.TypeOf((*MockSendLogRepository)(nil).ListByCampaign), ctx, campaignID)
}

// MockQueueRepository is a mock of QueueRepository interface.
type MockQueueRepository struct {
	ctrl     *gomock.Controller
	recorder *MockQueueRepositoryMockRecorder
}

// MockQueueRepositoryMockRecorder is the mock recorder for MockQueueRepository.
type MockQueueRepositoryMockRecorder struct {
	mock *MockQueueRepository
}

// NewMockQueueRepository creates a new mock instance.
func NewMockQueueRepository(ctrl *gomock.Controller) *MockQueueRepository {
	mock := &MockQueueRepository{ctrl: ctrl}
	mock.recorder = &MockQueueRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQueueRepository) EXPECT() *MockQueueRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockQueueRepository) Create(ctx context.Context, entry *domain.QueueEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockQueueRepositoryMockRecorder) Create(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockQueueRepository)(nil).Create), ctx, entry)
}

// ListDue mocks base method.
func (m *MockQueueRepository) ListDue(ctx context.Context, date string) ([]*domain.QueueEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListDue", ctx, date)
	ret0, _ := ret[0].([]*domain.QueueEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListDue indicates an expected call of ListDue.
func (mr *MockQueueRepositoryMockRecorder) ListDue(ctx, date interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDue", reflect.TypeOf((*MockQueueRepository)(nil).ListDue), ctx, date)
}

// ListByStatus mocks base method.
func (m *MockQueueRepository) ListByStatus(ctx context.Context, status domain.QueueStatus) ([]*domain.QueueEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStatus", ctx, status)
	ret0, _ := ret[0].([]*domain.QueueEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByStatus indicates an expected call of ListByStatus.
func (mr *MockQueueRepositoryMockRecorder) ListByStatus(ctx, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStatus", reflect.TypeOf((*MockQueueRepository)(nil).ListByStatus), ctx, status)
}

// UpdateStatus mocks base method.
func (m *MockQueueRepository) UpdateStatus(ctx context.Context, id int64, status domain.QueueStatus, processedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status, processedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockQueueRepositoryMockRecorder) UpdateStatus(ctx, id, status, processedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockQueueRepository)(nil).UpdateStatus), ctx, id, status, processedAt)
}

// MockTrackingRepository is a mock of TrackingRepository interface.
type MockTrackingRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTrackingRepositoryMockRecorder
}

// MockTrackingRepositoryMockRecorder is the mock recorder for MockTrackingRepository.
type MockTrackingRepositoryMockRecorder struct {
	mock *MockTrackingRepository
}

// NewMockTrackingRepository creates a new mock instance.
func NewMockTrackingRepository(ctrl *gomock.Controller) *MockTrackingRepository {
	mock := &MockTrackingRepository{ctrl: ctrl}
	mock.recorder = &MockTrackingRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrackingRepository) EXPECT() *MockTrackingRepositoryMockRecorder {
	return m.recorder
}

// GetToken mocks base method.
func (m *MockTrackingRepository) GetToken(ctx context.Context, campaignID int64, recipientEmail string) (*domain.TrackingToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetToken", ctx, campaignID, recipientEmail)
	ret0, _ := ret[0].(*domain.TrackingToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetToken indicates an expected call of GetToken.
func (mr *MockTrackingRepositoryMockRecorder) GetToken(ctx, campaignID, recipientEmail interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetToken", reflect.TypeOf((*MockTrackingRepository)(nil).GetToken), ctx, campaignID, recipientEmail)
}

// InsertToken mocks base method.
func (m *MockTrackingRepository) InsertToken(ctx context.Context, token *domain.TrackingToken) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertToken", ctx, token)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// InsertToken indicates an expected call of InsertToken.
func (mr *MockTrackingRepositoryMockRecorder) InsertToken(ctx, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertToken", reflect.TypeOf((*MockTrackingRepository)(nil).InsertToken), ctx, token)
}

// GetByToken mocks base method.
func (m *MockTrackingRepository) GetByToken(ctx context.Context, token string) (*domain.TrackingToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByToken", ctx, token)
	ret0, _ := ret[0].(*domain.TrackingToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByToken indicates an expected call of GetByToken.
func (mr *MockTrackingRepositoryMockRecorder) GetByToken(ctx, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByToken", reflect.TypeOf((*MockTrackingRepository)(nil).GetByToken), ctx, token)
}

// RecordEvent mocks base method.
func (m *MockTrackingRepository) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordEvent indicates an expected call of RecordEvent.
func (mr *MockTrackingRepositoryMockRecorder) RecordEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordEvent", reflect.TypeOf((*MockTrackingRepository)(nil).RecordEvent), ctx, event)
}

// MockTemplateRepository is a mock of TemplateRepository interface.
type MockTemplateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTemplateRepositoryMockRecorder
}

// MockTemplateRepositoryMockRecorder is the mock recorder for MockTemplateRepository.
type MockTemplateRepositoryMockRecorder struct {
	mock *MockTemplateRepository
}

// NewMockTemplateRepository creates a new mock instance.
func NewMockTemplateRepository(ctrl *gomock.Controller) *MockTemplateRepository {
	mock := &MockTemplateRepository{ctrl: ctrl}
	mock.recorder = &MockTemplateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTemplateRepository) EXPECT() *MockTemplateRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, template)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTemplateRepositoryMockRecorder) Create(ctx, template interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTemplateRepository)(nil).Create), ctx, template)
}

// Update mocks base method.
func (m *MockTemplateRepository) Update(ctx context.Context, template *domain.Template) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, template)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockTemplateRepositoryMockRecorder) Update(ctx, template interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockTemplateRepository)(nil).Update), ctx, template)
}

// GetByID mocks base method.
func (m *MockTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTemplateRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTemplateRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockTemplateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.Template)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockTemplateRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockTemplateRepository)(nil).List), ctx)
}

// MockRecurringRepository is a mock of RecurringRepository interface.
type MockRecurringRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRecurringRepositoryMockRecorder
}

// MockRecurringRepositoryMockRecorder is the mock recorder for MockRecurringRepository.
type MockRecurringRepositoryMockRecorder struct {
	mock *MockRecurringRepository
}

// NewMockRecurringRepository creates a new mock instance.
func NewMockRecurringRepository(ctrl *gomock.Controller) *MockRecurringRepository {
	mock := &MockRecurringRepository{ctrl: ctrl}
	mock.recorder = &MockRecurringRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecurringRepository) EXPECT() *MockRecurringRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRecurringRepository) Create(ctx context.Context, rc *domain.RecurringCampaign) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, rc)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRecurringRepositoryMockRecorder) Create(ctx, rc interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRecurringRepository)(nil).Create), ctx, rc)
}

// Update mocks base method.
func (m *MockRecurringRepository) Update(ctx context.Context, rc *domain.RecurringCampaign) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, rc)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRecurringRepositoryMockRecorder) Update(ctx, rc interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRecurringRepository)(nil).Update), ctx, rc)
}

// Delete mocks base method.
func (m *MockRecurringRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRecurringRepositoryMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRecurringRepository)(nil).Delete), ctx, id)
}

// GetByID mocks base method.
func (m *MockRecurringRepository) GetByID(ctx context.Context, id int64) (*domain.RecurringCampaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*domain.RecurringCampaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRecurringRepositoryMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRecurringRepository)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockRecurringRepository) List(ctx context.Context) ([]*domain.RecurringCampaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.RecurringCampaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRecurringRepositoryMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRecurringRepository)(nil).List), ctx)
}

// ListDue mocks base method.
func (m *MockRecurringRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.RecurringCampaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListDue", ctx, now)
	ret0, _ := ret[0].([]*domain.RecurringCampaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListDue indicates an expected call of ListDue.
func (mr *MockRecurringRepositoryMockRecorder) ListDue(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDue", reflect.TypeOf((*MockRecurringRepository)(nil).ListDue), ctx, now)
}

// MarkRun mocks base method.
func (m *MockRecurringRepository) MarkRun(ctx context.Context, id int64, lastRunAt, nextRunAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRun", ctx, id, lastRunAt, nextRunAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRun indicates an expected call of MarkRun.
func (mr *MockRecurringRepositoryMockRecorder) MarkRun(ctx, id, lastRunAt, nextRunAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRun", reflect.TypeOf((*MockRecurringRepository)(nil).MarkRun), ctx, id, lastRunAt, nextRunAt)
}

// MockSequenceRepository is a mock of SequenceRepository interface.
type MockSequenceRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceRepositoryMockRecorder
}

// MockSequenceRepositoryMockRecorder is the mock recorder for MockSequenceRepository.
type MockSequenceRepositoryMockRecorder struct {
	mock *MockSequenceRepository
}

// NewMockSequenceRepository creates a new mock instance.
func NewMockSequenceRepository(ctrl *gomock.Controller) *MockSequenceRepository {
	mock := &MockSequenceRepository{ctrl: ctrl}
	mock.recorder = &MockSequenceRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequenceRepository) EXPECT() *MockSequenceRepositoryMockRecorder {
	return m.recorder
}

// CreateSequence mocks base method.
func (m *MockSequenceRepository) CreateSequence(ctx context.Context, seq *domain.Sequence, steps []*domain.SequenceStep) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSequence", ctx, seq, steps)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSequence indicates an expected call of CreateSequence.
func (mr *MockSequenceRepositoryMockRecorder) CreateSequence(ctx, seq, steps interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSequence", reflect.TypeOf((*MockSequenceRepository)(nil).CreateSequence), ctx, seq, steps)
}

// GetSequence mocks base method.
func (m *MockSequenceRepository) GetSequence(ctx context.Context, id int64) (*domain.Sequence, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSequence", ctx, id)
	ret0, _ := ret[0].(*domain.Sequence)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSequence indicates an expected call of GetSequence.
func (mr *MockSequenceRepositoryMockRecorder) GetSequence(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSequence", reflect.TypeOf((*MockSequenceRepository)(nil).GetSequence), ctx, id)
}

// ListSequences mocks base method.
func (m *MockSequenceRepository) ListSequences(ctx context.Context) ([]*domain.Sequence, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListSequences", ctx)
	ret0, _ := ret[0].([]*domain.Sequence)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListSequences indicates an expected call of ListSequences.
func (mr *MockSequenceRepositoryMockRecorder) ListSequences(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListSequences", reflect.TypeOf((*MockSequenceRepository)(nil).ListSequences), ctx)
}

// GetStep mocks base method.
func (m *MockSequenceRepository) GetStep(ctx context.Context, sequenceID int64, order int) (*domain.SequenceStep, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStep", ctx, sequenceID, order)
	ret0, _ := ret[0].(*domain.SequenceStep)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStep indicates an expected call of GetStep.
func (mr *MockSequenceRepositoryMockRecorder) GetStep(ctx, sequenceID, order interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStep", reflect.TypeOf((*MockSequenceRepository)(nil).GetStep), ctx, sequenceID, order)
}

// Enroll mocks base method.
func (m *MockSequenceRepository) Enroll(ctx context.Context, enrollment *domain.SequenceEnrollment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enroll", ctx, enrollment)
	ret0, _ := ret[0].(error)
	return ret0
}

// Enroll indicates an expected call of Enroll.
func (mr *MockSequenceRepositoryMockRecorder) Enroll(ctx, enrollment interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enroll", reflect.TypeOf((*MockSequenceRepository)(nil).Enroll), ctx, enrollment)
}

// ListDueEnrollments mocks base method.
func (m *MockSequenceRepository) ListDueEnrollments(ctx context.Context, now time.Time) ([]*domain.SequenceEnrollment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListDueEnrollments", ctx, now)
	ret0, _ := ret[0].([]*domain.SequenceEnrollment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListDueEnrollments indicates an expected call of ListDueEnrollments.
func (mr *MockSequenceRepositoryMockRecorder) ListDueEnrollments(ctx, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDueEnrollments", reflect.TypeOf((*MockSequenceRepository)(nil).ListDueEnrollments), ctx, now)
}

// AdvanceEnrollment mocks base method.
func (m *MockSequenceRepository) AdvanceEnrollment(ctx context.Context, id int64, currentStep int, nextSendAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdvanceEnrollment", ctx, id, currentStep, nextSendAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// AdvanceEnrollment indicates an expected call of AdvanceEnrollment.
func (mr *MockSequenceRepositoryMockRecorder) AdvanceEnrollment(ctx, id, currentStep, nextSendAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdvanceEnrollment", reflect.TypeOf((*MockSequenceRepository)(nil).AdvanceEnrollment), ctx, id, currentStep, nextSendAt)
}

// CompleteEnrollment mocks base method.
func (m *MockSequenceRepository) CompleteEnrollment(ctx context.Context, id int64, completedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteEnrollment", ctx, id, completedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// CompleteEnrollment indicates an expected call of CompleteEnrollment.
func (mr *MockSequenceRepositoryMockRecorder) CompleteEnrollment(ctx, id, completedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteEnrollment", reflect.TypeOf((*MockSequenceRepository)(nil).CompleteEnrollment), ctx, id, completedAt)
}
