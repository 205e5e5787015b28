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

// SequenceDispatcher walks due enrollments through their drip steps. A send
// failure is logged but the enrollment still advances; a stalled enrollment
// would otherwise retry the same step every minute. The exception is a fully
// capped account pool: that is a fleet-wide condition, not a step-specific
// one, so the enrollment stays put and retries once capacity returns.
type SequenceDispatcher struct {
	sequenceRepo domain.SequenceRepository
	templateRepo domain.TemplateRepository
	executor     domain.ExecutorService
	logger       logger.Logger
}

// NewSequenceDispatcher creates a sequence dispatcher.
func NewSequenceDispatcher(
	sequenceRepo domain.SequenceRepository,
	templateRepo domain.TemplateRepository,
	executor domain.ExecutorService,
	log logger.Logger,
) *SequenceDispatcher {
	return &SequenceDispatcher{
		sequenceRepo: sequenceRepo,
		templateRepo: templateRepo,
		executor:     executor,
		logger:       log,
	}
}

// Tick processes every due enrollment. Per-enrollment failures are logged and
// never abort the pass.
func (s *SequenceDispatcher) Tick(ctx context.Context) {
	now := time.Now().UTC()
	due, err := s.sequenceRepo.ListDueEnrollments(ctx, now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list due enrollments: %v", err))
		return
	}

	for _, enrollment := range due {
		if err := s.processEnrollment(ctx, enrollment, now); err != nil {
			s.logger.WithField("enrollment_id", enrollment.ID).
				Error(fmt.Sprintf("Failed to process enrollment: %v", err))
		}
	}
}

func (s *SequenceDispatcher) processEnrollment(ctx context.Context, enrollment *domain.SequenceEnrollment, now time.Time) error {
	step, err := s.sequenceRepo.GetStep(ctx, enrollment.SequenceID, enrollment.CurrentStep)
	if errors.Is(err, domain.ErrSequenceNotFound) {
		// Walked past the last step.
		return s.sequenceRepo.CompleteEnrollment(ctx, enrollment.ID, now)
	}
	if err != nil {
		return fmt.Errorf("failed to load step %d: %w", enrollment.CurrentStep, err)
	}

	if err := s.dispatchStep(ctx, enrollment, step); err != nil {
		if errors.Is(err, domain.ErrNoEligibleAccount) {
			// Every account is capped or cooling down. Leave next_send_at
			// untouched so the step retries on a later tick instead of
			// being silently skipped.
			s.logger.WithField("enrollment_id", enrollment.ID).
				Warn("Sequence step deferred: no eligible account")
			return nil
		}
		// The step had its one attempt; the enrollment moves on regardless.
		s.logger.WithFields(map[string]interface{}{
			"enrollment_id": enrollment.ID,
			"step_order":    step.StepOrder,
		}).Warn(fmt.Sprintf("Sequence step send failed: %v", err))
	}

	nextStep, err := s.sequenceRepo.GetStep(ctx, enrollment.SequenceID, enrollment.CurrentStep+1)
	if errors.Is(err, domain.ErrSequenceNotFound) {
		return s.sequenceRepo.CompleteEnrollment(ctx, enrollment.ID, time.Now().UTC())
	}
	if err != nil {
		return fmt.Errorf("failed to look ahead to step %d: %w", enrollment.CurrentStep+1, err)
	}

	return s.sequenceRepo.AdvanceEnrollment(ctx, enrollment.ID,
		enrollment.CurrentStep+1, nextStep.NextSendAt(time.Now().UTC()))
}

// dispatchStep sends one drip email. Tokens and send logs are scoped by the
// negative sequence id, so they never collide with campaign ids.
func (s *SequenceDispatcher) dispatchStep(ctx context.Context, enrollment *domain.SequenceEnrollment, step *domain.SequenceStep) error {
	template, err := s.templateRepo.GetByID(ctx, step.TemplateID)
	if err != nil {
		return fmt.Errorf("failed to load step template: %w", err)
	}

	subject := step.Subject
	if subject == "" {
		subject = template.Subject
	}

	run := &domain.RecipientRun{
		CampaignID: nil, // sequences have no per-campaign cap
		TrackingID: -enrollment.SequenceID,
		Blocks:     template.Blocks,
		Subject:    subject,
		Recipient: domain.Recipient{
			Email: enrollment.RecipientEmail,
			Data:  enrollment.RecipientData,
		},
		Tracking: emailbuilder.TrackingConfig{TrackOpens: true, TrackClicks: true},
	}

	_, err = s.executor.RunForRecipient(ctx, run)
	return err
}
