package service

import (
	"context"
	"fmt"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/alerts"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// ReportInterruptedCampaigns runs at engine start: campaigns still marked
// sending were interrupted by a crash. They are logged and reported to the
// operator in one alert, never auto-restarted — the send logs record what
// was attempted and a restart would double-send.
func ReportInterruptedCampaigns(ctx context.Context, campaignRepo domain.CampaignRepository, mailer alerts.Mailer, log logger.Logger) error {
	interrupted, err := campaignRepo.ListByStatus(ctx, domain.CampaignStatusSending)
	if err != nil {
		return fmt.Errorf("failed to list interrupted campaigns: %w", err)
	}
	if len(interrupted) == 0 {
		return nil
	}

	report := make([]alerts.InterruptedCampaign, 0, len(interrupted))
	for _, c := range interrupted {
		log.WithFields(map[string]interface{}{
			"campaign_id": c.ID,
			"name":        c.Name,
			"successful":  c.Successful,
			"failed":      c.Failed,
			"queued":      c.Queued,
			"total":       c.TotalRecipients,
		}).Warn("Campaign was interrupted by a previous shutdown")

		report = append(report, alerts.InterruptedCampaign{
			ID:         c.ID,
			Name:       c.Name,
			Successful: c.Successful,
			Failed:     c.Failed,
			Queued:     c.Queued,
			Total:      c.TotalRecipients,
		})
	}

	if err := mailer.SendInterruptedCampaignsAlert(report); err != nil {
		log.Error(fmt.Sprintf("Failed to send interrupted campaigns alert: %v", err))
	}
	return nil
}
