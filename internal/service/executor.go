package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
	"github.com/mailfleet/mailfleet/pkg/emailerror"
	"github.com/mailfleet/mailfleet/pkg/logger"
	"github.com/mailfleet/mailfleet/pkg/tracing"
)

// ExecutorService drives campaign delivery: account selection, template
// compilation, tracking injection, the provider send and all persistence
// around it. Within one recipient, the SendLog insert happens before the
// counter increment, which happens before the progress event — a reader
// observing a counter has already seen the log row.
type ExecutorService struct {
	campaignRepo domain.CampaignRepository
	sendLogRepo  domain.SendLogRepository
	queueRepo    domain.QueueRepository
	templateRepo domain.TemplateRepository
	accounts     domain.AccountManagerService
	breaker      domain.CircuitBreakerService
	tracking     domain.TrackingTokenService
	factory      domain.ProviderFactory
	classifier   *emailerror.Classifier
	logger       logger.Logger
	baseURL      string
	pace         *rate.Limiter
}

// NewExecutorService creates a campaign executor. baseURL prefixes injected
// tracking URLs; paceInterval spaces consecutive sends.
func NewExecutorService(
	campaignRepo domain.CampaignRepository,
	sendLogRepo domain.SendLogRepository,
	queueRepo domain.QueueRepository,
	templateRepo domain.TemplateRepository,
	accounts domain.AccountManagerService,
	breaker domain.CircuitBreakerService,
	tracking domain.TrackingTokenService,
	factory domain.ProviderFactory,
	log logger.Logger,
	baseURL string,
	paceInterval time.Duration,
) *ExecutorService {
	return &ExecutorService{
		campaignRepo: campaignRepo,
		sendLogRepo:  sendLogRepo,
		queueRepo:    queueRepo,
		templateRepo: templateRepo,
		accounts:     accounts,
		breaker:      breaker,
		tracking:     tracking,
		factory:      factory,
		classifier:   emailerror.NewClassifier(),
		logger:       log,
		baseURL:      baseURL,
		pace:         rate.NewLimiter(rate.Every(paceInterval), 1),
	}
}

// Run executes a one-shot campaign: it inserts the campaign row and walks the
// recipients in order, reporting through emit. The stream ends with a single
// complete or error event.
func (s *ExecutorService) Run(ctx context.Context, params *domain.CampaignParams, emit func(domain.ProgressEvent)) {
	// Snapshot the blocks as a template row so deferred recipients of this
	// campaign can be compiled again by the queue drain.
	template := &domain.Template{
		Name:    params.Name,
		Subject: params.Subject,
		Blocks:  params.Blocks,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to snapshot campaign template: %v", err))
		emit(domain.ProgressEvent{
			Type:    domain.ProgressEventError,
			Message: fmt.Sprintf("Failed to create campaign: %v", err),
		})
		return
	}

	now := time.Now().UTC()
	campaign := &domain.Campaign{
		Name:            params.Name,
		TemplateID:      &template.ID,
		Subject:         params.Subject,
		TotalRecipients: len(params.Recipients),
		Status:          domain.CampaignStatusSending,
		CC:              domain.StringList(params.CC),
		BCC:             domain.StringList(params.BCC),
		Recipients:      domain.RecipientList(params.Recipients),
		TrackOpens:      params.Tracking.TrackOpens,
		TrackClicks:     params.Tracking.TrackClicks,
		StartedAt:       &now,
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to create campaign: %v", err))
		emit(domain.ProgressEvent{
			Type:    domain.ProgressEventError,
			Message: fmt.Sprintf("Failed to create campaign: %v", err),
		})
		return
	}

	s.runLoop(ctx, campaign, params.Blocks, params.Attachments, emit)
}

// RunScheduled executes a campaign row already promoted to sending, using its
// stored recipients snapshot. Progress goes to the log instead of a stream.
func (s *ExecutorService) RunScheduled(ctx context.Context, campaign *domain.Campaign, blocks emailbuilder.Blocks) {
	log := s.logger.WithField("campaign_id", campaign.ID)
	s.runLoop(ctx, campaign, blocks, nil, func(event domain.ProgressEvent) {
		switch event.Type {
		case domain.ProgressEventError:
			log.Error(event.Message)
		default:
			log.Info(event.Message)
		}
	})
}

func (s *ExecutorService) runLoop(
	ctx context.Context,
	campaign *domain.Campaign,
	blocks emailbuilder.Blocks,
	attachments []domain.Attachment,
	emit func(domain.ProgressEvent),
) {
	total := len(campaign.Recipients)
	tracking := emailbuilder.TrackingConfig{
		TrackOpens:  campaign.TrackOpens,
		TrackClicks: campaign.TrackClicks,
	}

	for i, recipient := range campaign.Recipients {
		current := i + 1

		run := &domain.RecipientRun{
			CampaignID:  &campaign.ID,
			TrackingID:  campaign.ID,
			Blocks:      blocks,
			Subject:     campaign.Subject,
			Recipient:   recipient,
			CC:          campaign.CC,
			BCC:         campaign.BCC,
			Tracking:    tracking,
			Attachments: attachments,
		}

		account, err := s.deliver(ctx, run)
		switch {
		case errors.Is(err, domain.ErrNoEligibleAccount):
			if qErr := s.queueRecipient(ctx, campaign.ID, recipient); qErr != nil {
				s.logger.WithField("campaign_id", campaign.ID).
					Error(fmt.Sprintf("Failed to queue recipient %s: %v", recipient.Email, qErr))
				emit(domain.ProgressEvent{
					Type:    domain.ProgressEventError,
					Message: fmt.Sprintf("Failed to queue %s: %v", recipient.Email, qErr),
				})
				return
			}
			s.incrementCounters(ctx, campaign.ID, 0, 0, 1)
			emit(domain.ProgressEvent{
				Type:    domain.ProgressEventProgress,
				Current: current,
				Total:   total,
				Message: fmt.Sprintf("Queued %s for tomorrow", recipient.Email),
			})

		case err != nil:
			s.incrementCounters(ctx, campaign.ID, 0, 1, 0)
			emit(domain.ProgressEvent{
				Type:    domain.ProgressEventProgress,
				Current: current,
				Total:   total,
				Message: fmt.Sprintf("Failed: %s - %v", recipient.Email, err),
			})

		default:
			s.incrementCounters(ctx, campaign.ID, 1, 0, 0)
			emit(domain.ProgressEvent{
				Type:    domain.ProgressEventProgress,
				Current: current,
				Total:   total,
				Message: fmt.Sprintf("Sent to %s via %s", recipient.Email, account.Name),
			})
		}

		if current < total {
			if err := s.pace.Wait(ctx); err != nil {
				emit(domain.ProgressEvent{
					Type:    domain.ProgressEventError,
					Message: fmt.Sprintf("Campaign interrupted: %v", err),
				})
				return
			}
		}
	}

	if err := s.campaignRepo.Complete(ctx, campaign.ID, time.Now().UTC()); err != nil {
		s.logger.WithField("campaign_id", campaign.ID).
			Error(fmt.Sprintf("Failed to complete campaign: %v", err))
		emit(domain.ProgressEvent{
			Type:    domain.ProgressEventError,
			Message: fmt.Sprintf("Failed to complete campaign: %v", err),
		})
		return
	}

	emit(domain.ProgressEvent{
		Type:       domain.ProgressEventComplete,
		Current:    total,
		Total:      total,
		Message:    "Campaign completed",
		CampaignID: campaign.ID,
	})
}

// RunForRecipient performs one delivery with the shared primitives and leaves
// campaign bookkeeping to the caller. ErrNoEligibleAccount comes back
// unwrapped so drains can stop on it.
func (s *ExecutorService) RunForRecipient(ctx context.Context, run *domain.RecipientRun) (int64, error) {
	account, err := s.deliver(ctx, run)
	if err != nil {
		return 0, err
	}
	return account.ID, nil
}

// deliver performs the account-select → compile → tracking → send → log
// pipeline for one recipient. On anything but ErrNoEligibleAccount a SendLog
// row records the outcome before deliver returns.
func (s *ExecutorService) deliver(ctx context.Context, run *domain.RecipientRun) (*domain.SenderAccount, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ExecutorService", "deliver")
	defer span.End()
	tracing.AddAttribute(ctx, "recipient.email", run.Recipient.Email)

	account, err := s.accounts.GetNextAvailableAccount(ctx, run.CampaignID)
	if err != nil {
		tracing.MarkSpanError(ctx, err)
		return nil, err
	}
	tracing.AddAttribute(ctx, "account.id", account.ID)

	html, err := emailbuilder.Compile(run.Blocks, run.Recipient.Data)
	if err != nil {
		err = fmt.Errorf("template compilation failed: %w", err)
		s.logOutcome(ctx, run, &account.ID, domain.SendLogStatusFailed, err.Error())
		return nil, err
	}
	subject := emailbuilder.SubstituteVars(run.Subject, run.Recipient.Data)

	if run.Tracking.TrackOpens || run.Tracking.TrackClicks {
		token, err := s.tracking.GetOrCreateToken(ctx, run.TrackingID, run.Recipient.Email)
		if err != nil {
			err = fmt.Errorf("tracking token failed: %w", err)
			s.logOutcome(ctx, run, &account.ID, domain.SendLogStatusFailed, err.Error())
			return nil, err
		}
		html = emailbuilder.InjectTracking(html, token, s.baseURL, run.Tracking)
	}

	provider, err := s.factory(account.ProviderKind, account.Config, s.logger)
	if err != nil {
		err = fmt.Errorf("provider init failed: %w", err)
		s.logOutcome(ctx, run, &account.ID, domain.SendLogStatusFailed, err.Error())
		return nil, err
	}
	defer provider.Close()

	msg := &domain.Message{
		To:          run.Recipient.Email,
		CC:          run.CC,
		BCC:         run.BCC,
		Subject:     subject,
		HTML:        html,
		Text:        emailbuilder.TextVersion(html),
		Attachments: run.Attachments,
	}

	if err := provider.Send(ctx, msg); err != nil {
		classified := s.classifier.Classify(err, string(account.ProviderKind))
		if classified.ShouldTriggerCircuitBreaker() {
			s.breaker.RecordFailure(ctx, account.ID)
		}
		s.logOutcome(ctx, run, &account.ID, domain.SendLogStatusFailed, classified.Error())
		tracing.MarkSpanError(ctx, classified)
		return nil, classified
	}

	if err := s.accounts.IncrementSendCount(ctx, account.ID); err != nil {
		s.logger.WithField("account_id", account.ID).
			Error(fmt.Sprintf("Failed to increment send count: %v", err))
	}
	s.breaker.RecordSuccess(ctx, account.ID)
	s.logOutcome(ctx, run, &account.ID, domain.SendLogStatusSuccess, "")

	return account, nil
}

func (s *ExecutorService) logOutcome(ctx context.Context, run *domain.RecipientRun, accountID *int64, status domain.SendLogStatus, errMsg string) {
	log := &domain.SendLog{
		CampaignID:     run.TrackingID,
		AccountID:      accountID,
		RecipientEmail: run.Recipient.Email,
		Status:         status,
		ErrorMessage:   errMsg,
	}
	if err := s.sendLogRepo.Create(ctx, log); err != nil {
		s.logger.WithField("campaign_id", run.TrackingID).
			Error(fmt.Sprintf("Failed to write send log for %s: %v", run.Recipient.Email, err))
	}
}

// queueRecipient defers a recipient to tomorrow: the queue entry and its
// queued SendLog row, in that order.
func (s *ExecutorService) queueRecipient(ctx context.Context, campaignID int64, recipient domain.Recipient) error {
	tomorrow := domain.UTCDate(time.Now().UTC().Add(24 * time.Hour))
	entry := &domain.QueueEntry{
		CampaignID:     campaignID,
		RecipientEmail: recipient.Email,
		RecipientData:  recipient.Data,
		ScheduledFor:   tomorrow,
		Status:         domain.QueueStatusPending,
	}
	if err := s.queueRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to enqueue recipient: %w", err)
	}

	log := &domain.SendLog{
		CampaignID:     campaignID,
		RecipientEmail: recipient.Email,
		Status:         domain.SendLogStatusQueued,
		ErrorMessage:   domain.QueuedLogMessage,
	}
	if err := s.sendLogRepo.Create(ctx, log); err != nil {
		s.logger.WithField("campaign_id", campaignID).
			Error(fmt.Sprintf("Failed to write queued send log for %s: %v", recipient.Email, err))
	}
	return nil
}

func (s *ExecutorService) incrementCounters(ctx context.Context, campaignID int64, successful, failed, queued int) {
	if err := s.campaignRepo.IncrementCounters(ctx, campaignID, successful, failed, queued); err != nil {
		s.logger.WithField("campaign_id", campaignID).
			Error(fmt.Sprintf("Failed to increment campaign counters: %v", err))
	}
}
