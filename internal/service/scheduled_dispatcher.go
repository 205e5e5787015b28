package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// ScheduledDispatcher promotes due scheduled campaigns to sending and runs
// them from their stored recipients snapshot. The promotion is a status-
// guarded update, so overlapping ticks never double-send a campaign.
type ScheduledDispatcher struct {
	campaignRepo domain.CampaignRepository
	templateRepo domain.TemplateRepository
	executor     domain.ExecutorService
	logger       logger.Logger
}

// NewScheduledDispatcher creates a scheduled-campaign dispatcher.
func NewScheduledDispatcher(
	campaignRepo domain.CampaignRepository,
	templateRepo domain.TemplateRepository,
	executor domain.ExecutorService,
	log logger.Logger,
) *ScheduledDispatcher {
	return &ScheduledDispatcher{
		campaignRepo: campaignRepo,
		templateRepo: templateRepo,
		executor:     executor,
		logger:       log,
	}
}

// Tick runs one dispatch pass. Per-campaign failures are logged and never
// abort the pass.
func (s *ScheduledDispatcher) Tick(ctx context.Context) {
	now := time.Now().UTC()
	due, err := s.campaignRepo.ListScheduledDue(ctx, now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list due scheduled campaigns: %v", err))
		return
	}

	for _, campaign := range due {
		log := s.logger.WithField("campaign_id", campaign.ID)

		claimed, err := s.campaignRepo.MarkSending(ctx, campaign.ID, now)
		if err != nil {
			log.Error(fmt.Sprintf("Failed to claim scheduled campaign: %v", err))
			continue
		}
		if !claimed {
			// Another tick won the race.
			continue
		}

		if campaign.TemplateID == nil {
			log.Error("Scheduled campaign has no template, skipping")
			continue
		}
		template, err := s.templateRepo.GetByID(ctx, *campaign.TemplateID)
		if err != nil {
			log.Error(fmt.Sprintf("Failed to load campaign template: %v", err))
			continue
		}

		log.WithField("recipients", len(campaign.Recipients)).Info("Dispatching scheduled campaign")
		s.executor.RunScheduled(ctx, campaign, template.Blocks)
	}
}
