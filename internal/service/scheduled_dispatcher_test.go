package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func scheduledCampaign(id, templateID int64) *domain.Campaign {
	past := time.Now().UTC().Add(-time.Minute)
	return &domain.Campaign{
		ID:           id,
		Name:         "weekly digest",
		TemplateID:   &templateID,
		Subject:      "Digest",
		Status:       domain.CampaignStatusScheduled,
		ScheduledFor: &past,
		Recipients:   domain.RecipientList{{Email: "a@example.com"}},
	}
}

func TestScheduledDispatcher_DispatchesDueCampaigns(t *testing.T) {
	campaigns := &mockCampaignRepo{}
	templates := &mockTemplateRepo{}
	executor := &mockExecutor{}
	dispatcher := NewScheduledDispatcher(campaigns, templates, executor,
		logger.NewLoggerWithLevel("disabled"))
	ctx := context.Background()

	campaign := scheduledCampaign(11, 99)
	campaigns.On("ListScheduledDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*domain.Campaign{campaign}, nil)
	campaigns.On("MarkSending", ctx, int64(11), mock.AnythingOfType("time.Time")).
		Return(true, nil)
	templates.On("GetByID", ctx, int64(99)).
		Return(&domain.Template{ID: 99, Blocks: textBlocks()}, nil)
	executor.On("RunScheduled", ctx, campaign, mock.Anything).Return()

	dispatcher.Tick(ctx)
	executor.AssertExpectations(t)
}

func TestScheduledDispatcher_SkipsLostClaim(t *testing.T) {
	campaigns := &mockCampaignRepo{}
	templates := &mockTemplateRepo{}
	executor := &mockExecutor{}
	dispatcher := NewScheduledDispatcher(campaigns, templates, executor,
		logger.NewLoggerWithLevel("disabled"))
	ctx := context.Background()

	campaigns.On("ListScheduledDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*domain.Campaign{scheduledCampaign(11, 99)}, nil)
	// Another tick already promoted the row.
	campaigns.On("MarkSending", ctx, int64(11), mock.AnythingOfType("time.Time")).
		Return(false, nil)

	dispatcher.Tick(ctx)
	executor.AssertNotCalled(t, "RunScheduled", mock.Anything, mock.Anything, mock.Anything)
	templates.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestScheduledDispatcher_TemplateFailureSkipsCampaign(t *testing.T) {
	campaigns := &mockCampaignRepo{}
	templates := &mockTemplateRepo{}
	executor := &mockExecutor{}
	dispatcher := NewScheduledDispatcher(campaigns, templates, executor,
		logger.NewLoggerWithLevel("disabled"))
	ctx := context.Background()

	broken := scheduledCampaign(11, 99)
	healthy := scheduledCampaign(12, 100)
	campaigns.On("ListScheduledDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*domain.Campaign{broken, healthy}, nil)
	campaigns.On("MarkSending", ctx, mock.AnythingOfType("int64"), mock.AnythingOfType("time.Time")).
		Return(true, nil)
	templates.On("GetByID", ctx, int64(99)).Return(nil, errors.New("db down"))
	templates.On("GetByID", ctx, int64(100)).
		Return(&domain.Template{ID: 100, Blocks: textBlocks()}, nil)
	executor.On("RunScheduled", ctx, healthy, mock.Anything).Return()

	dispatcher.Tick(ctx)

	// The broken campaign never runs; the pass continues to the next one.
	executor.AssertNumberOfCalls(t, "RunScheduled", 1)
}
