package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/mailfleet/mailfleet/internal/domain"
	emailbuilder "github.com/mailfleet/mailfleet/pkg/emailbuilder"
	gomock "github.com/golang/mock/gomock"
)

// MockCircuitBreakerService is a mock of CircuitBreakerService interface.
type MockCircuitBreakerService struct {
	ctrl     *gomock.Controller
	recorder *MockCircuitBreakerServiceMockRecorder
}

// MockCircuitBreakerServiceMockRecorder is the mock recorder for MockCircuitBreakerService.
type MockCircuitBreakerServiceMockRecorder struct {
	mock *MockCircuitBreakerService
}

// NewMockCircuitBreakerService creates a new mock instance.
func NewMockCircuitBreakerService(ctrl *gomock.Controller) *MockCircuitBreakerService {
	mock := &MockCircuitBreakerService{ctrl: ctrl}
	mock.recorder = &MockCircuitBreakerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCircuitBreakerService) EXPECT() *MockCircuitBreakerServiceMockRecorder {
	return m.recorder
}

// IsOpen mocks base method.
func (m *MockCircuitBreakerService) IsOpen(ctx context.Context, accountID int64) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOpen", ctx, accountID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOpen indicates an expected call of IsOpen.
func (mr *MockCircuitBreakerServiceMockRecorder) IsOpen(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOpen", reflect.TypeOf((*MockCircuitBreakerService)(nil).IsOpen), ctx, accountID)
}

// RecordSuccess mocks base method.
func (m *MockCircuitBreakerService) RecordSuccess(ctx context.Context, accountID int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordSuccess", ctx, accountID)
}

// RecordSuccess indicates an expected call of RecordSuccess.
func (mr *MockCircuitBreakerServiceMockRecorder) RecordSuccess(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordSuccess", reflect.TypeOf((*MockCircuitBreakerService)(nil).RecordSuccess), ctx, accountID)
}

// RecordFailure mocks base method.
func (m *MockCircuitBreakerService) RecordFailure(ctx context.Context, accountID int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordFailure", ctx, accountID)
}

// RecordFailure indicates an expected call of RecordFailure.
func (mr *MockCircuitBreakerServiceMockRecorder) RecordFailure(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordFailure", reflect.TypeOf((*MockCircuitBreakerService)(nil).RecordFailure), ctx, accountID)
}

// OpenCircuits mocks base method.
func (m *MockCircuitBreakerService) OpenCircuits(ctx context.Context) []int64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OpenCircuits", ctx)
	ret0, _ := ret[0].([]int64)
	return ret0
}

// OpenCircuits indicates an expected call of OpenCircuits.
func (mr *MockCircuitBreakerServiceMockRecorder) OpenCircuits(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OpenCircuits", reflect.TypeOf((*MockCircuitBreakerService)(nil).OpenCircuits), ctx)
}

// MockAccountManagerService is a mock of AccountManagerService interface.
type MockAccountManagerService struct {
	ctrl     *gomock.Controller
	recorder *MockAccountManagerServiceMockRecorder
}

// MockAccountManagerServiceMockRecorder is the mock recorder for MockAccountManagerService.
type MockAccountManagerServiceMockRecorder struct {
	mock *MockAccountManagerService
}

// NewMockAccountManagerService creates a new mock instance.
func NewMockAccountManagerService(ctrl *gomock.Controller) *MockAccountManagerService {
	mock := &MockAccountManagerService{ctrl: ctrl}
	mock.recorder = &MockAccountManagerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountManagerService) EXPECT() *MockAccountManagerServiceMockRecorder {
	return m.recorder
}

// GetNextAvailableAccount mocks base method.
func (m *MockAccountManagerService) GetNextAvailableAccount(ctx context.Context, campaignID *int64) (*domain.SenderAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNextAvailableAccount", ctx, campaignID)
	ret0, _ := ret[0].(*domain.SenderAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNextAvailableAccount indicates an expected call of GetNextAvailableAccount.
func (mr *MockAccountManagerServiceMockRecorder) GetNextAvailableAccount(ctx, campaignID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNextAvailableAccount", reflect.TypeOf((*MockAccountManagerService)(nil).GetNextAvailableAccount), ctx, campaignID)
}

// IncrementSendCount mocks base method.
func (m *MockAccountManagerService) IncrementSendCount(ctx context.Context, accountID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementSendCount", ctx, accountID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementSendCount indicates an expected call of IncrementSendCount.
func (mr *MockAccountManagerServiceMockRecorder) IncrementSendCount(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementSendCount", reflect.TypeOf((*MockAccountManagerService)(nil).IncrementSendCount), ctx, accountID)
}

// TodayCount mocks base method.
func (m *MockAccountManagerService) TodayCount(ctx context.Context, accountID int64) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TodayCount", ctx, accountID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TodayCount indicates an expected call of TodayCount.
func (mr *MockAccountManagerServiceMockRecorder) TodayCount(ctx, accountID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TodayCount", reflect.TypeOf((*MockAccountManagerService)(nil).TodayCount), ctx, accountID)
}

// MockTrackingTokenService is a mock of TrackingTokenService interface.
type MockTrackingTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockTrackingTokenServiceMockRecorder
}

// MockTrackingTokenServiceMockRecorder is the mock recorder for MockTrackingTokenService.
type MockTrackingTokenServiceMockRecorder struct {
	mock *MockTrackingTokenService
}

// NewMockTrackingTokenService creates a new mock instance.
func NewMockTrackingTokenService(ctrl *gomock.Controller) *MockTrackingTokenService {
	mock := &MockTrackingTokenService{ctrl: ctrl}
	mock.recorder = &MockTrackingTokenServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrackingTokenService) EXPECT() *MockTrackingTokenServiceMockRecorder {
	return m.recorder
}

// GetOrCreateToken mocks base method.
func (m *MockTrackingTokenService) GetOrCreateToken(ctx context.Context, campaignID int64, recipientEmail string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreateToken", ctx, campaignID, recipientEmail)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreateToken indicates an expected call of GetOrCreateToken.
func (mr *MockTrackingTokenServiceMockRecorder) GetOrCreateToken(ctx, campaignID, recipientEmail interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreateToken", reflect.TypeOf((*MockTrackingTokenService)(nil).GetOrCreateToken), ctx, campaignID, recipientEmail)
}

// GetTokenDetails mocks base method.
func (m *MockTrackingTokenService) GetTokenDetails(ctx context.Context, token string) (*domain.TrackingToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTokenDetails", ctx, token)
	ret0, _ := ret[0].(*domain.TrackingToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTokenDetails indicates an expected call of GetTokenDetails.
func (mr *MockTrackingTokenServiceMockRecorder) GetTokenDetails(ctx, token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTokenDetails", reflect.TypeOf((*MockTrackingTokenService)(nil).GetTokenDetails), ctx, token)
}

// RecordEvent mocks base method.
func (m *MockTrackingTokenService) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordEvent indicates an expected call of RecordEvent.
func (mr *MockTrackingTokenServiceMockRecorder) RecordEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordEvent", reflect.TypeOf((*MockTrackingTokenService)(nil).RecordEvent), ctx, event)
}

// MockExecutorService is a mock of ExecutorService interface.
type MockExecutorService struct {
	ctrl     *gomock.Controller
	recorder *MockExecutorServiceMockRecorder
}

// MockExecutorServiceMockRecorder is the mock recorder for MockExecutorService.
type MockExecutorServiceMockRecorder struct {
	mock *MockExecutorService
}

// NewMockExecutorService creates a new mock instance.
func NewMockExecutorService(ctrl *gomock.Controller) *MockExecutorService {
	mock := &MockExecutorService{ctrl: ctrl}
	mock.recorder = &MockExecutorServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExecutorService) EXPECT() *MockExecutorServiceMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockExecutorService) Run(ctx context.Context, params *domain.CampaignParams, emit func(domain.ProgressEvent)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx, params, emit)
}

// Run indicates an expected call of Run.
func (mr *MockExecutorServiceMockRecorder) Run(ctx, params, emit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockExecutorService)(nil).Run), ctx, params, emit)
}

// RunScheduled mocks base method.
func (m *MockExecutorService) RunScheduled(ctx context.Context, campaign *domain.Campaign, blocks emailbuilder.Blocks) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RunScheduled", ctx, campaign, blocks)
}

// RunScheduled indicates an expected call of RunScheduled.
func (mr *MockExecutorServiceMockRecorder) RunScheduled(ctx, campaign, blocks interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunScheduled", reflect.TypeOf((*MockExecutorService)(nil).RunScheduled), ctx, campaign, blocks)
}

// RunForRecipient mocks base method.
func (m *MockExecutorService) RunForRecipient(ctx context.Context, run *domain.RecipientRun) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunForRecipient", ctx, run)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RunForRecipient indicates an expected call of RunForRecipient.
func (mr *MockExecutorServiceMockRecorder) RunForRecipient(ctx, run interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunForRecipient", reflect.TypeOf((*MockExecutorService)(nil).RunForRecipient), ctx, run)
}

// MockQueueProcessorService is a mock of QueueProcessorService interface.
type MockQueueProcessorService struct {
	ctrl     *gomock.Controller
	recorder *MockQueueProcessorServiceMockRecorder
}

// MockQueueProcessorServiceMockRecorder is the mock recorder for MockQueueProcessorService.
type MockQueueProcessorServiceMockRecorder struct {
	mock *MockQueueProcessorService
}

// NewMockQueueProcessorService creates a new mock instance.
func NewMockQueueProcessorService(ctrl *gomock.Controller) *MockQueueProcessorService {
	mock := &MockQueueProcessorService{ctrl: ctrl}
	mock.recorder = &MockQueueProcessorServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQueueProcessorService) EXPECT() *MockQueueProcessorServiceMockRecorder {
	return m.recorder
}

// Drain mocks base method.
func (m *MockQueueProcessorService) Drain(ctx context.Context) (int, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Drain", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Drain indicates an expected call of Drain.
func (mr *MockQueueProcessorServiceMockRecorder) Drain(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Drain", reflect.TypeOf((*MockQueueProcessorService)(nil).Drain), ctx)
}

// MockSchedulerService is a mock of SchedulerService interface.
type MockSchedulerService struct {
	ctrl     *gomock.Controller
	recorder *MockSchedulerServiceMockRecorder
}

// MockSchedulerServiceMockRecorder is the mock recorder for MockSchedulerService.
type MockSchedulerServiceMockRecorder struct {
	mock *MockSchedulerService
}

// NewMockSchedulerService creates a new mock instance.
func NewMockSchedulerService(ctrl *gomock.Controller) *MockSchedulerService {
	mock := &MockSchedulerService{ctrl: ctrl}
	mock.recorder = &MockSchedulerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSchedulerService) EXPECT() *MockSchedulerServiceMockRecorder {
	return m.recorder
}

// Start mocks base method.
func (m *MockSchedulerService) Start() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start")
	ret0, _ := ret[0].(error)
	return ret0
}

// Start indicates an expected call of Start.
func (mr *MockSchedulerServiceMockRecorder) Start() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockSchedulerService)(nil).Start))
}

// Stop mocks base method.
func (m *MockSchedulerService) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockSchedulerServiceMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockSchedulerService)(nil).Stop))
}

// IsRunning mocks base method.
func (m *MockSchedulerService) IsRunning() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsRunning")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsRunning indicates an expected call of IsRunning.
func (mr *MockSchedulerServiceMockRecorder) IsRunning() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsRunning", reflect.TypeOf((*MockSchedulerService)(nil).IsRunning))
}

// MockAccountService is a mock of AccountService interface.
type MockAccountService struct {
	ctrl     *gomock.Controller
	recorder *MockAccountServiceMockRecorder
}

// MockAccountServiceMockRecorder is the mock recorder for MockAccountService.
type MockAccountServiceMockRecorder struct {
	mock *MockAccountService
}

// NewMockAccountService creates a new mock instance.
func NewMockAccountService(ctrl *gomock.Controller) *MockAccountService {
	mock := &MockAccountService{ctrl: ctrl}
	mock.recorder = &MockAccountServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountService) EXPECT() *MockAccountServiceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAccountService) Create(ctx context.Context, account *domain.SenderAccount, cfg *domain.ProviderConfig) (*domain.RedactedAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, account, cfg)
	ret0, _ := ret[0].(*domain.RedactedAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockAccountServiceMockRecorder) Create(ctx, account, cfg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAccountService)(nil).Create), ctx, account, cfg)
}

// Update mocks base method.
func (m *MockAccountService) Update(ctx context.Context, account *domain.SenderAccount, cfg *domain.ProviderConfig) (*domain.RedactedAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, account, cfg)
	ret0, _ := ret[0].(*domain.RedactedAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockAccountServiceMockRecorder) Update(ctx, account, cfg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockAccountService)(nil).Update), ctx, account, cfg)
}

// Delete mocks base method.
func (m *MockAccountService) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockAccountServiceMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockAccountService)(nil).Delete), ctx, id)
}

// List mocks base method.
func (m *MockAccountService) List(ctx context.Context) ([]*domain.RedactedAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.RedactedAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockAccountServiceMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockAccountService)(nil).List), ctx)
}

// Verify mocks base method.
func (m *MockAccountService) Verify(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Verify indicates an expected call of Verify.
func (mr *MockAccountServiceMockRecorder) Verify(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockAccountService)(nil).Verify), ctx, id)
}

// MockCampaignService is a mock of CampaignService interface.
type MockCampaignService struct {
	ctrl     *gomock.Controller
	recorder *MockCampaignServiceMockRecorder
}

// MockCampaignServiceMockRecorder is the mock recorder for MockCampaignService.
type MockCampaignServiceMockRecorder struct {
	mock *MockCampaignService
}

// NewMockCampaignService creates a new mock instance.
func NewMockCampaignService(ctrl *gomock.Controller) *MockCampaignService {
	mock := &MockCampaignService{ctrl: ctrl}
	mock.recorder = &MockCampaignServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCampaignService) EXPECT() *MockCampaignServiceMockRecorder {
	return m.recorder
}

// Schedule mocks base method.
func (m *MockCampaignService) Schedule(ctx context.Context, params *domain.CampaignParams, scheduledFor time.Time) (*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Schedule", ctx, params, scheduledFor)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Schedule indicates an expected call of Schedule.
func (mr *MockCampaignServiceMockRecorder) Schedule(ctx, params, scheduledFor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Schedule", reflect.TypeOf((*MockCampaignService)(nil).Schedule), ctx, params, scheduledFor)
}

// Get mocks base method.
func (m *MockCampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCampaignServiceMockRecorder) Get(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCampaignService)(nil).Get), ctx, id)
}

// List mocks base method.
func (m *MockCampaignService) List(ctx context.Context) ([]*domain.Campaign, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*domain.Campaign)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCampaignServiceMockRecorder) List(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCampaignService)(nil).List), ctx)
}
