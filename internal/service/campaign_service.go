package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// CampaignService exposes campaign reads and scheduling. Scheduled campaigns
// persist their template and recipients up front, so the dispatcher can run
// them without the original request.
type CampaignService struct {
	campaignRepo domain.CampaignRepository
	templateRepo domain.TemplateRepository
	logger       logger.Logger
}

// NewCampaignService creates a campaign service.
func NewCampaignService(campaignRepo domain.CampaignRepository, templateRepo domain.TemplateRepository, log logger.Logger) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		templateRepo: templateRepo,
		logger:       log,
	}
}

// Schedule validates the params and persists a scheduled campaign with its
// template snapshot and recipients.
func (s *CampaignService) Schedule(ctx context.Context, params *domain.CampaignParams, scheduledFor time.Time) (*domain.Campaign, error) {
	if len(params.Recipients) == 0 {
		return nil, domain.NewValidationError("campaign requires at least one recipient")
	}
	for _, r := range params.Recipients {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if scheduledFor.Before(time.Now().UTC()) {
		return nil, domain.NewValidationError("scheduled_for must be in the future")
	}

	template := &domain.Template{
		Name:    params.Name,
		Subject: params.Subject,
		Blocks:  params.Blocks,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to snapshot campaign template: %w", err)
	}

	scheduledUTC := scheduledFor.UTC()
	campaign := &domain.Campaign{
		Name:            params.Name,
		TemplateID:      &template.ID,
		Subject:         params.Subject,
		TotalRecipients: len(params.Recipients),
		Status:          domain.CampaignStatusScheduled,
		ScheduledFor:    &scheduledUTC,
		CC:              params.CC,
		BCC:             params.BCC,
		Recipients:      params.Recipients,
		TrackOpens:      params.Tracking.TrackOpens,
		TrackClicks:     params.Tracking.TrackClicks,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"campaign_id":   campaign.ID,
		"scheduled_for": scheduledUTC,
		"recipients":    campaign.TotalRecipients,
	}).Info("Campaign scheduled")
	return campaign, nil
}

// Get fetches one campaign.
func (s *CampaignService) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

// List returns campaigns newest first.
func (s *CampaignService) List(ctx context.Context) ([]*domain.Campaign, error) {
	return s.campaignRepo.List(ctx)
}
