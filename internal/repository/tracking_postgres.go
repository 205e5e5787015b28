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

// TrackingRepository implements domain.TrackingRepository
type TrackingRepository struct {
	db *sql.DB
}

// NewTrackingRepository creates a new TrackingRepository
func NewTrackingRepository(db *sql.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// GetToken fetches the token for a campaign/recipient pair.
func (r *TrackingRepository) GetToken(ctx context.Context, campaignID int64, email string) (*domain.TrackingToken, error) {
	query, args, err := psql.
		Select("token", "campaign_id", "recipient_email", "created_at").
		From("tracking_tokens").
		Where(sq.Eq{"campaign_id": campaignID, "recipient_email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build token query: %w", err)
	}

	var t domain.TrackingToken
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.Token, &t.CampaignID, &t.RecipientEmail, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking token: %w", err)
	}
	return &t, nil
}

// InsertToken stores the token, reporting false when another worker already
// inserted one for the same campaign/recipient pair.
func (r *TrackingRepository) InsertToken(ctx context.Context, token *domain.TrackingToken) (bool, error) {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	query, args, err := psql.
		Insert("tracking_tokens").
		Columns("token", "campaign_id", "recipient_email", "created_at").
		Values(token.Token, token.CampaignID, token.RecipientEmail, token.CreatedAt).
		Suffix("ON CONFLICT (campaign_id, recipient_email) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build token insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert tracking token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}

// GetByToken resolves a token back to its campaign and recipient.
func (r *TrackingRepository) GetByToken(ctx context.Context, token string) (*domain.TrackingToken, error) {
	query, args, err := psql.
		Select("token", "campaign_id", "recipient_email", "created_at").
		From("tracking_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build token query: %w", err)
	}

	var t domain.TrackingToken
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.Token, &t.CampaignID, &t.RecipientEmail, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking token: %w", err)
	}
	return &t, nil
}

// RecordEvent appends an open or click event.
func (r *TrackingRepository) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query, args, err := psql.
		Insert("tracking_events").
		Columns("id", "token", "event_type", "link_index", "url", "user_agent", "created_at").
		Values(event.ID, event.Token, event.EventType, event.LinkIndex, event.URL, event.UserAgent, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build event insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record tracking event: %w", err)
	}
	return nil
}
