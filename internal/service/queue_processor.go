package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// QueueProcessorService drains due deferred recipients. Each entry gets one
// attempt per drain; the drain stops dead the moment no eligible account
// remains, leaving the rest pending for the next pass.
type QueueProcessorService struct {
	queueRepo    domain.QueueRepository
	campaignRepo domain.CampaignRepository
	templateRepo domain.TemplateRepository
	executor     domain.ExecutorService
	logger       logger.Logger
}

// NewQueueProcessorService creates a queue processor.
func NewQueueProcessorService(
	queueRepo domain.QueueRepository,
	campaignRepo domain.CampaignRepository,
	templateRepo domain.TemplateRepository,
	executor domain.ExecutorService,
	log logger.Logger,
) *QueueProcessorService {
	return &QueueProcessorService{
		queueRepo:    queueRepo,
		campaignRepo: campaignRepo,
		templateRepo: templateRepo,
		executor:     executor,
		logger:       log,
	}
}

// Drain processes every pending entry due today or earlier, in enqueue order.
func (s *QueueProcessorService) Drain(ctx context.Context) (processed, failed int, err error) {
	today := domain.UTCDate(time.Now())
	entries, err := s.queueRepo.ListDue(ctx, today)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list due queue entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, 0, nil
	}

	s.logger.WithField("entries", len(entries)).Info("Draining send queue")

	for _, entry := range entries {
		sent, deliverErr := s.processEntry(ctx, entry)
		if errors.Is(deliverErr, domain.ErrNoEligibleAccount) {
			s.logger.Info("No eligible account remaining, stopping queue drain")
			return processed, failed, nil
		}
		if sent {
			processed++
		} else {
			failed++
			s.logger.WithField("entry_id", entry.ID).
				Warn(fmt.Sprintf("Queue entry failed: %v", deliverErr))
		}
	}

	return processed, failed, nil
}

// processEntry attempts one delivery. The bool reports whether the entry went
// out; an ErrNoEligibleAccount error leaves the entry untouched.
func (s *QueueProcessorService) processEntry(ctx context.Context, entry *domain.QueueEntry) (bool, error) {
	campaign, blocks, err := s.resolveCampaign(ctx, entry.CampaignID)
	if err != nil {
		// The campaign or template is gone; the entry can never succeed.
		s.finishEntry(ctx, entry, domain.QueueStatusFailed)
		s.bookkeep(ctx, entry.CampaignID, false)
		return false, err
	}

	run := &domain.RecipientRun{
		CampaignID: &entry.CampaignID,
		TrackingID: entry.CampaignID,
		Blocks:     blocks,
		Subject:    campaign.Subject,
		Recipient: domain.Recipient{
			Email: entry.RecipientEmail,
			Data:  entry.RecipientData,
		},
		CC:  campaign.CC,
		BCC: campaign.BCC,
		Tracking: emailbuilder.TrackingConfig{
			TrackOpens:  campaign.TrackOpens,
			TrackClicks: campaign.TrackClicks,
		},
	}

	_, err = s.executor.RunForRecipient(ctx, run)
	if errors.Is(err, domain.ErrNoEligibleAccount) {
		return false, err
	}
	if err != nil {
		s.finishEntry(ctx, entry, domain.QueueStatusFailed)
		s.bookkeep(ctx, entry.CampaignID, false)
		return false, err
	}

	s.finishEntry(ctx, entry, domain.QueueStatusSent)
	s.bookkeep(ctx, entry.CampaignID, true)
	return true, nil
}

// resolveCampaign loads the campaign and its template blocks. Campaigns
// without a template row fall back to their stored recipients-era blocks
// being absent, which is a lookup failure.
func (s *QueueProcessorService) resolveCampaign(ctx context.Context, campaignID int64) (*domain.Campaign, emailbuilder.Blocks, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve campaign %d: %w", campaignID, err)
	}
	if campaign.TemplateID == nil {
		return nil, nil, fmt.Errorf("campaign %d has no template", campaignID)
	}
	template, err := s.templateRepo.GetByID(ctx, *campaign.TemplateID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve template %d: %w", *campaign.TemplateID, err)
	}
	return campaign, template.Blocks, nil
}

func (s *QueueProcessorService) finishEntry(ctx context.Context, entry *domain.QueueEntry, status domain.QueueStatus) {
	if err := s.queueRepo.UpdateStatus(ctx, entry.ID, status, time.Now().UTC()); err != nil {
		s.logger.WithField("entry_id", entry.ID).
			Error(fmt.Sprintf("Failed to update queue entry: %v", err))
	}
}

// bookkeep moves one recipient from queued to its outcome counter and closes
// the campaign once nothing is outstanding.
func (s *QueueProcessorService) bookkeep(ctx context.Context, campaignID int64, success bool) {
	successful, failedCount := 0, 0
	if success {
		successful = 1
	} else {
		failedCount = 1
	}
	if err := s.campaignRepo.IncrementCounters(ctx, campaignID, successful, failedCount, -1); err != nil {
		s.logger.WithField("campaign_id", campaignID).
			Error(fmt.Sprintf("Failed to update campaign counters: %v", err))
		return
	}

	done, err := s.campaignRepo.CompleteIfDrained(ctx, campaignID, time.Now().UTC())
	if err != nil {
		s.logger.WithField("campaign_id", campaignID).
			Error(fmt.Sprintf("Failed to check campaign completion: %v", err))
		return
	}
	if done {
		s.logger.WithField("campaign_id", campaignID).Info("Campaign completed after queue drain")
	}
}
