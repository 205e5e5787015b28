package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// RecurringRepository implements domain.RecurringRepository
type RecurringRepository struct {
	db *sql.DB
}

// NewRecurringRepository creates a new RecurringRepository
func NewRecurringRepository(db *sql.DB) *RecurringRepository {
	return &RecurringRepository{db: db}
}

var recurringColumns = []string{
	"id", "name", "template_id", "subject", "cron_expr", "timezone",
	"recipient_source", "cc", "bcc", "track_opens", "track_clicks",
	"enabled", "last_run_at", "next_run_at", "created_at",
}

func scanRecurring(scanner interface{ Scan(...interface{}) error }) (*domain.RecurringCampaign, error) {
	var rc domain.RecurringCampaign
	var lastRunAt sql.NullTime
	err := scanner.Scan(
		&rc.ID, &rc.Name, &rc.TemplateID, &rc.Subject, &rc.CronExpr, &rc.Timezone,
		&rc.RecipientSource, &rc.CC, &rc.BCC, &rc.TrackOpens, &rc.TrackClicks,
		&rc.Enabled, &lastRunAt, &rc.NextRunAt, &rc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastRunAt.Valid {
		t := lastRunAt.Time
		rc.LastRunAt = &t
	}
	return &rc, nil
}

// Create inserts the recurring campaign and sets its generated id.
func (r *RecurringRepository) Create(ctx context.Context, rc *domain.RecurringCampaign) error {
	rc.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("recurring_campaigns").
		Columns("name", "template_id", "subject", "cron_expr", "timezone",
			"recipient_source", "cc", "bcc", "track_opens", "track_clicks",
			"enabled", "next_run_at", "created_at").
		Values(rc.Name, rc.TemplateID, rc.Subject, rc.CronExpr, rc.Timezone,
			rc.RecipientSource, rc.CC, rc.BCC, rc.TrackOpens, rc.TrackClicks,
			rc.Enabled, rc.NextRunAt, rc.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build recurring insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rc.ID); err != nil {
		return fmt.Errorf("failed to create recurring campaign: %w", err)
	}
	return nil
}

// Update rewrites the recurring campaign definition.
func (r *RecurringRepository) Update(ctx context.Context, rc *domain.RecurringCampaign) error {
	query, args, err := psql.
		Update("recurring_campaigns").
		Set("name", rc.Name).
		Set("template_id", rc.TemplateID).
		Set("subject", rc.Subject).
		Set("cron_expr", rc.CronExpr).
		Set("timezone", rc.Timezone).
		Set("recipient_source", rc.RecipientSource).
		Set("cc", rc.CC).
		Set("bcc", rc.BCC).
		Set("track_opens", rc.TrackOpens).
		Set("track_clicks", rc.TrackClicks).
		Set("enabled", rc.Enabled).
		Set("next_run_at", rc.NextRunAt).
		Where(sq.Eq{"id": rc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build recurring update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update recurring campaign: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}

// Delete removes the recurring campaign.
func (r *RecurringRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("recurring_campaigns").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build recurring delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete recurring campaign: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}

// GetByID fetches one recurring campaign.
func (r *RecurringRepository) GetByID(ctx context.Context, id int64) (*domain.RecurringCampaign, error) {
	query, args, err := psql.
		Select(recurringColumns...).
		From("recurring_campaigns").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recurring query: %w", err)
	}

	rc, err := scanRecurring(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecurringNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring campaign: %w", err)
	}
	return rc, nil
}

// List returns every recurring campaign, newest first.
func (r *RecurringRepository) List(ctx context.Context) ([]*domain.RecurringCampaign, error) {
	return r.list(ctx, nil)
}

// ListDue returns enabled rows whose next fire time has passed.
func (r *RecurringRepository) ListDue(ctx context.Context, now time.Time) ([]*domain.RecurringCampaign, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"enabled": true},
		sq.LtOrEq{"next_run_at": now.UTC()},
	})
}

func (r *RecurringRepository) list(ctx context.Context, where interface{}) ([]*domain.RecurringCampaign, error) {
	builder := psql.
		Select(recurringColumns...).
		From("recurring_campaigns").
		OrderBy("created_at DESC", "id DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recurring list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.RecurringCampaign
	for rows.Next() {
		rc, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring campaign: %w", err)
		}
		campaigns = append(campaigns, rc)
	}
	return campaigns, rows.Err()
}

// MarkRun advances the row past a fire, whatever its outcome.
func (r *RecurringRepository) MarkRun(ctx context.Context, id int64, lastRunAt, nextRunAt time.Time) error {
	query, args, err := psql.
		Update("recurring_campaigns").
		Set("last_run_at", lastRunAt.UTC()).
		Set("next_run_at", nextRunAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark run update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark recurring run: %w", err)
	}
	return nil
}
