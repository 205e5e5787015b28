package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/semaphore"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
	"github.com/mailfleet/mailfleet/pkg/logger"
	"github.com/mailfleet/mailfleet/pkg/tracing"
)

// maxConcurrentRecurringRuns bounds parallel recurring-campaign fires.
const maxConcurrentRecurringRuns = 4

// RecurringDispatcher fires due recurring campaigns: it resolves the
// recipient source, synthesizes a one-shot campaign run and reschedules the
// row. A failed run logs and reschedules; it never disables the row.
type RecurringDispatcher struct {
	recurringRepo domain.RecurringRepository
	templateRepo  domain.TemplateRepository
	executor      domain.ExecutorService
	httpClient    *http.Client
	logger        logger.Logger
	sem           *semaphore.Weighted
}

// NewRecurringDispatcher creates a recurring-campaign dispatcher.
func NewRecurringDispatcher(
	recurringRepo domain.RecurringRepository,
	templateRepo domain.TemplateRepository,
	executor domain.ExecutorService,
	log logger.Logger,
) *RecurringDispatcher {
	return &RecurringDispatcher{
		recurringRepo: recurringRepo,
		templateRepo:  templateRepo,
		executor:      executor,
		httpClient:    tracing.WrapHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		logger:        log,
		sem:           semaphore.NewWeighted(maxConcurrentRecurringRuns),
	}
}

// Tick fires every due recurring campaign, bounded by the semaphore, and
// waits for the fires it started.
func (s *RecurringDispatcher) Tick(ctx context.Context) {
	now := time.Now().UTC()
	due, err := s.recurringRepo.ListDue(ctx, now)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list due recurring campaigns: %v", err))
		return
	}

	done := make(chan struct{}, len(due))
	started := 0
	for _, rc := range due {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			break
		}
		started++
		go func(rc *domain.RecurringCampaign) {
			defer s.sem.Release(1)
			defer func() { done <- struct{}{} }()
			s.fire(ctx, rc, now)
		}(rc)
	}
	for i := 0; i < started; i++ {
		<-done
	}
}

// fire runs one recurring campaign and reschedules it.
func (s *RecurringDispatcher) fire(ctx context.Context, rc *domain.RecurringCampaign, now time.Time) {
	log := s.logger.WithField("recurring_id", rc.ID)

	if err := s.runOnce(ctx, rc, log); err != nil {
		log.Error(fmt.Sprintf("Recurring campaign run failed: %v", err))
	}

	nextRun, err := rc.NextRun(now)
	if err != nil {
		log.Error(fmt.Sprintf("Failed to compute next run: %v", err))
		return
	}
	if err := s.recurringRepo.MarkRun(ctx, rc.ID, now, nextRun); err != nil {
		log.Error(fmt.Sprintf("Failed to reschedule recurring campaign: %v", err))
	}
}

func (s *RecurringDispatcher) runOnce(ctx context.Context, rc *domain.RecurringCampaign, log logger.Logger) error {
	template, err := s.templateRepo.GetByID(ctx, rc.TemplateID)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	recipients, err := s.resolveRecipients(ctx, rc.RecipientSource)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}
	if len(recipients) == 0 {
		log.Warn("Recurring campaign resolved zero recipients, skipping run")
		return nil
	}

	subject := rc.Subject
	if subject == "" {
		subject = template.Subject
	}

	params := &domain.CampaignParams{
		Name:       fmt.Sprintf("%s @ %s", rc.Name, time.Now().UTC().Format("2006-01-02 15:04")),
		Blocks:     template.Blocks,
		Subject:    subject,
		Recipients: recipients,
		CC:         rc.CC,
		BCC:        rc.BCC,
		Tracking: emailbuilder.TrackingConfig{
			TrackOpens:  rc.TrackOpens,
			TrackClicks: rc.TrackClicks,
		},
	}

	s.executor.Run(ctx, params, func(event domain.ProgressEvent) {
		switch event.Type {
		case domain.ProgressEventError:
			log.Error(event.Message)
		default:
			log.Info(event.Message)
		}
	})
	return nil
}

// resolveRecipients materializes the recipient list for one fire.
func (s *RecurringDispatcher) resolveRecipients(ctx context.Context, source domain.RecipientSource) ([]domain.Recipient, error) {
	switch source.Type {
	case domain.RecipientSourceInline:
		return source.Recipients, nil
	case domain.RecipientSourceCSVURL:
		body, err := s.fetch(ctx, source.URL)
		if err != nil {
			return nil, err
		}
		return parseCSVRecipients(body)
	case domain.RecipientSourceJSONURL:
		body, err := s.fetch(ctx, source.URL)
		if err != nil {
			return nil, err
		}
		return parseJSONRecipients(body)
	default:
		return nil, fmt.Errorf("unsupported recipient source type: %s", source.Type)
	}
}

func (s *RecurringDispatcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseCSVRecipients maps header-named columns onto recipients: the email
// column addresses the message, every other column becomes a merge variable.
func parseCSVRecipients(body []byte) ([]domain.Recipient, error) {
	reader := csv.NewReader(strings.NewReader(string(body)))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	emailCol := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "email") {
			emailCol = i
			break
		}
	}
	if emailCol == -1 {
		return nil, fmt.Errorf("csv recipient source has no email column")
	}

	var recipients []domain.Recipient
	for _, row := range records[1:] {
		if emailCol >= len(row) || strings.TrimSpace(row[emailCol]) == "" {
			continue
		}
		data := map[string]string{}
		for i, col := range header {
			if i == emailCol || i >= len(row) {
				continue
			}
			data[strings.TrimSpace(col)] = row[i]
		}
		recipients = append(recipients, domain.Recipient{
			Email: strings.TrimSpace(row[emailCol]),
			Data:  data,
		})
	}
	return recipients, nil
}

// parseJSONRecipients reads an array of {email, …vars} objects.
func parseJSONRecipients(body []byte) ([]domain.Recipient, error) {
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("json recipient source is not an array")
	}

	var recipients []domain.Recipient
	parsed.ForEach(func(_, item gjson.Result) bool {
		email := item.Get("email").String()
		if email == "" {
			return true
		}
		data := map[string]string{}
		item.ForEach(func(key, value gjson.Result) bool {
			if key.String() != "email" {
				data[key.String()] = value.String()
			}
			return true
		})
		recipients = append(recipients, domain.Recipient{Email: email, Data: data})
		return true
	})
	return recipients, nil
}
