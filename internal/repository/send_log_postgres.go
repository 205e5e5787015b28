package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// SendLogRepository implements domain.SendLogRepository
type SendLogRepository struct {
	db *sql.DB
}

// NewSendLogRepository creates a new SendLogRepository
func NewSendLogRepository(db *sql.DB) *SendLogRepository {
	return &SendLogRepository{db: db}
}

// Create inserts the send log entry, assigning a UUID when missing.
func (r *SendLogRepository) Create(ctx context.Context, log *domain.SendLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.SentAt.IsZero() {
		log.SentAt = time.Now().UTC()
	}

	query, args, err := psql.
		Insert("send_logs").
		Columns("id", "campaign_id", "account_id", "recipient_email",
			"status", "error_message", "retry_count", "sent_at").
		Values(log.ID, log.CampaignID, log.AccountID, log.RecipientEmail,
			log.Status, log.ErrorMessage, log.RetryCount, log.SentAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build send log insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create send log: %w", err)
	}
	return nil
}

// CountByCampaignAndAccount counts every log row for the pair, regardless
// of status, so queued and failed attempts consume campaign quota too.
func (r *SendLogRepository) CountByCampaignAndAccount(ctx context.Context, campaignID, accountID int64) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("send_logs").
		Where(sq.Eq{"campaign_id": campaignID, "account_id": accountID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build send log count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count send logs: %w", err)
	}
	return count, nil
}

// ListByCampaign returns the campaign's log entries, newest first.
func (r *SendLogRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]*domain.SendLog, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "account_id", "recipient_email",
			"status", "error_message", "retry_count", "sent_at").
		From("send_logs").
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("sent_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build send log list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list send logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.SendLog
	for rows.Next() {
		var l domain.SendLog
		var accountID sql.NullInt64
		err := rows.Scan(&l.ID, &l.CampaignID, &accountID, &l.RecipientEmail,
			&l.Status, &l.ErrorMessage, &l.RetryCount, &l.SentAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan send log: %w", err)
		}
		if accountID.Valid {
			l.AccountID = &accountID.Int64
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
