package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// QueueRepository implements domain.QueueRepository
type QueueRepository struct {
	db *sql.DB
}

// NewQueueRepository creates a new QueueRepository
func NewQueueRepository(db *sql.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

var queueColumns = []string{
	"id", "campaign_id", "recipient_email", "recipient_data",
	"scheduled_for", "status", "created_at", "processed_at",
}

func scanQueueEntry(scanner interface{ Scan(...interface{}) error }) (*domain.QueueEntry, error) {
	var e domain.QueueEntry
	var processedAt sql.NullTime
	err := scanner.Scan(
		&e.ID, &e.CampaignID, &e.RecipientEmail, &e.RecipientData,
		&e.ScheduledFor, &e.Status, &e.CreatedAt, &processedAt,
	)
	if err != nil {
		return nil, err
	}
	if processedAt.Valid {
		t := processedAt.Time
		e.ProcessedAt = &t
	}
	return &e, nil
}

// Create inserts the queue entry and sets its generated id.
func (r *QueueRepository) Create(ctx context.Context, entry *domain.QueueEntry) error {
	if entry.Status == "" {
		entry.Status = domain.QueueStatusPending
	}
	entry.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("send_queue").
		Columns("campaign_id", "recipient_email", "recipient_data",
			"scheduled_for", "status", "created_at").
		Values(entry.CampaignID, entry.RecipientEmail, entry.RecipientData,
			entry.ScheduledFor, entry.Status, entry.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build queue insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return fmt.Errorf("failed to create queue entry: %w", err)
	}
	return nil
}

// ListDue returns pending entries scheduled for the given date or earlier,
// oldest first so the drain preserves enqueue order.
func (r *QueueRepository) ListDue(ctx context.Context, date string) ([]*domain.QueueEntry, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"status": domain.QueueStatusPending},
		sq.LtOrEq{"scheduled_for": date},
	})
}

// ListByStatus returns entries with the given status, oldest first.
func (r *QueueRepository) ListByStatus(ctx context.Context, status domain.QueueStatus) ([]*domain.QueueEntry, error) {
	return r.list(ctx, sq.Eq{"status": status})
}

func (r *QueueRepository) list(ctx context.Context, where interface{}) ([]*domain.QueueEntry, error) {
	query, args, err := psql.
		Select(queueColumns...).
		From("send_queue").
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build queue list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.QueueEntry
	for rows.Next() {
		entry, err := scanQueueEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// UpdateStatus stamps the entry with its drain outcome.
func (r *QueueRepository) UpdateStatus(ctx context.Context, id int64, status domain.QueueStatus, processedAt time.Time) error {
	query, args, err := psql.
		Update("send_queue").
		Set("status", status).
		Set("processed_at", processedAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build queue status update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update queue entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrQueueEntryNotFound
	}
	return nil
}
