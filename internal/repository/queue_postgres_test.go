package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
)

func TestQueueRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewQueueRepository(db)

	entry := &domain.QueueEntry{
		CampaignID:     11,
		RecipientEmail: "a@example.com",
		RecipientData:  domain.JSONMap{"name": "Ada"},
		ScheduledFor:   "2026-08-26",
	}

	mock.ExpectQuery(`INSERT INTO send_queue`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, int64(9), entry.ID)
	assert.Equal(t, domain.QueueStatusPending, entry.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueRepository_ListDue(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewQueueRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM send_queue WHERE \(status = \$1 AND scheduled_for <= \$2\) ORDER BY created_at ASC, id ASC`).
		WithArgs(domain.QueueStatusPending, "2026-08-26").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "campaign_id", "recipient_email", "recipient_data",
			"scheduled_for", "status", "created_at", "processed_at",
		}).
			AddRow(1, 11, "a@example.com", []byte(`{"name":"Ada"}`), "2026-08-25", "pending", now, nil).
			AddRow(2, 11, "b@example.com", []byte(`{}`), "2026-08-26", "pending", now, nil))

	entries, err := repo.ListDue(context.Background(), "2026-08-26")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ada", entries[0].RecipientData["name"])
	assert.Nil(t, entries[0].ProcessedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueRepository_UpdateStatus(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewQueueRepository(db)

	processedAt := time.Now().UTC()

	t.Run("marks sent", func(t *testing.T) {
		mock.ExpectExec(`UPDATE send_queue SET status = \$1, processed_at = \$2 WHERE id = \$3`).
			WithArgs(domain.QueueStatusSent, processedAt, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), 1, domain.QueueStatusSent, processedAt))
	})

	t.Run("missing entry", func(t *testing.T) {
		mock.ExpectExec(`UPDATE send_queue SET status = \$1, processed_at = \$2 WHERE id = \$3`).
			WithArgs(domain.QueueStatusFailed, processedAt, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 404, domain.QueueStatusFailed, processedAt)
		assert.ErrorIs(t, err, domain.ErrQueueEntryNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
