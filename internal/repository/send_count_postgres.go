package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// SendCountRepository implements domain.SendCountRepository
type SendCountRepository struct {
	db *sql.DB
}

// NewSendCountRepository creates a new SendCountRepository
func NewSendCountRepository(db *sql.DB) *SendCountRepository {
	return &SendCountRepository{db: db}
}

// Increment bumps the per-account counter for the given UTC date, creating
// the row on first send. The increment happens in SQL so concurrent workers
// never lose updates.
func (r *SendCountRepository) Increment(ctx context.Context, accountID int64, date string) error {
	query, args, err := psql.
		Insert("send_counts").
		Columns("account_id", "date", "count").
		Values(accountID, date, 1).
		Suffix("ON CONFLICT (account_id, date) DO UPDATE SET count = send_counts.count + 1").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build send count upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment send count: %w", err)
	}
	return nil
}

// Count returns the counter for the given UTC date, zero when no row exists.
func (r *SendCountRepository) Count(ctx context.Context, accountID int64, date string) (int, error) {
	query, args, err := psql.
		Select("count").
		From("send_counts").
		Where(sq.Eq{"account_id": accountID, "date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build send count query: %w", err)
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get send count: %w", err)
	}
	return count, nil
}
