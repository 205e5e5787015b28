package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// CampaignRepository implements domain.CampaignRepository
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

var campaignColumns = []string{
	"id", "name", "template_id", "subject",
	"total_recipients", "successful", "failed", "queued",
	"status", "scheduled_for", "cc", "bcc", "recipients",
	"track_opens", "track_clicks",
	"started_at", "completed_at", "created_at",
}

func scanCampaign(scanner interface{ Scan(...interface{}) error }) (*domain.Campaign, error) {
	var c domain.Campaign
	var templateID sql.NullInt64
	var scheduledFor, startedAt, completedAt sql.NullTime
	err := scanner.Scan(
		&c.ID, &c.Name, &templateID, &c.Subject,
		&c.TotalRecipients, &c.Successful, &c.Failed, &c.Queued,
		&c.Status, &scheduledFor, &c.CC, &c.BCC, &c.Recipients,
		&c.TrackOpens, &c.TrackClicks,
		&startedAt, &completedAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if templateID.Valid {
		c.TemplateID = &templateID.Int64
	}
	if scheduledFor.Valid {
		t := scheduledFor.Time
		c.ScheduledFor = &t
	}
	if startedAt.Valid {
		t := startedAt.Time
		c.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		c.CompletedAt = &t
	}
	return &c, nil
}

// Create inserts the campaign and sets its generated id.
func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	campaign.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("campaigns").
		Columns("name", "template_id", "subject",
			"total_recipients", "successful", "failed", "queued",
			"status", "scheduled_for", "cc", "bcc", "recipients",
			"track_opens", "track_clicks", "created_at").
		Values(campaign.Name, campaign.TemplateID, campaign.Subject,
			campaign.TotalRecipients, campaign.Successful, campaign.Failed, campaign.Queued,
			campaign.Status, campaign.ScheduledFor, campaign.CC, campaign.BCC, campaign.Recipients,
			campaign.TrackOpens, campaign.TrackClicks, campaign.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build campaign insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&campaign.ID); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// GetByID fetches one campaign.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign query: %w", err)
	}

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// List returns campaigns newest first.
func (r *CampaignRepository) List(ctx context.Context) ([]*domain.Campaign, error) {
	return r.list(ctx, nil)
}

// ListByStatus returns campaigns with the given status, newest first.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]*domain.Campaign, error) {
	return r.list(ctx, sq.Eq{"status": status})
}

// ListScheduledDue returns scheduled campaigns whose send time has passed.
func (r *CampaignRepository) ListScheduledDue(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"status": domain.CampaignStatusScheduled},
		sq.LtOrEq{"scheduled_for": now.UTC()},
	})
}

func (r *CampaignRepository) list(ctx context.Context, where interface{}) ([]*domain.Campaign, error) {
	builder := psql.
		Select(campaignColumns...).
		From("campaigns").
		OrderBy("created_at DESC", "id DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

// MarkSending transitions a scheduled campaign to sending. It reports false
// when another dispatcher already claimed the campaign, so concurrent ticks
// never double-send.
func (r *CampaignRepository) MarkSending(ctx context.Context, id int64, startedAt time.Time) (bool, error) {
	query, args, err := psql.
		Update("campaigns").
		Set("status", domain.CampaignStatusSending).
		Set("started_at", startedAt.UTC()).
		Where(sq.Eq{"id": id, "status": domain.CampaignStatusScheduled}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build mark sending update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to mark campaign sending: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}

// IncrementCounters adds to the campaign outcome counters in SQL so
// concurrent workers never lose updates.
func (r *CampaignRepository) IncrementCounters(ctx context.Context, id int64, successful, failed, queued int) error {
	query, args, err := psql.
		Update("campaigns").
		Set("successful", sq.Expr("successful + ?", successful)).
		Set("failed", sq.Expr("failed + ?", failed)).
		Set("queued", sq.Expr("queued + ?", queued)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build counter update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment campaign counters: %w", err)
	}
	return nil
}

// Complete marks the campaign completed.
func (r *CampaignRepository) Complete(ctx context.Context, id int64, completedAt time.Time) error {
	query, args, err := psql.
		Update("campaigns").
		Set("status", domain.CampaignStatusCompleted).
		Set("completed_at", completedAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build complete update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to complete campaign: %w", err)
	}
	return nil
}

// CompleteIfDrained marks a campaign completed once every recipient is
// accounted for and nothing remains queued. It reports whether the row
// changed. The run loop already moves a campaign to completed while
// recipients sit in the queue, so the guard must match completed rows too —
// the drain refreshes completed_at to when the last deferral resolved.
func (r *CampaignRepository) CompleteIfDrained(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	query, args, err := psql.
		Update("campaigns").
		Set("status", domain.CampaignStatusCompleted).
		Set("completed_at", completedAt.UTC()).
		Where(sq.Eq{"id": id, "status": []domain.CampaignStatus{
			domain.CampaignStatusSending,
			domain.CampaignStatusCompleted,
		}}).
		Where(sq.Expr("queued = 0")).
		Where(sq.Expr("successful + failed >= total_recipients")).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build complete-if-drained update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to complete campaign: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
