package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
)

func campaignRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "template_id", "subject",
		"total_recipients", "successful", "failed", "queued",
		"status", "scheduled_for", "cc", "bcc", "recipients",
		"track_opens", "track_clicks",
		"started_at", "completed_at", "created_at",
	})
}

func TestCampaignRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	campaign := &domain.Campaign{
		Name:            "august launch",
		Subject:         "Hello {{name}}",
		TotalRecipients: 3,
		Status:          domain.CampaignStatusSending,
		Recipients: domain.RecipientList{
			{Email: "a@example.com"},
			{Email: "b@example.com"},
			{Email: "c@example.com"},
		},
	}

	mock.ExpectQuery(`INSERT INTO campaigns`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	require.NoError(t, repo.Create(context.Background(), campaign))
	assert.Equal(t, int64(11), campaign.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_GetByID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \$1`).
		WithArgs(int64(11)).
		WillReturnRows(campaignRows().
			AddRow(11, "august launch", nil, "Hello", 3, 2, 0, 1,
				"sending", nil, []byte(`[]`), []byte(`[]`), []byte(`[{"email":"a@example.com"}]`),
				true, false, now, nil, now))

	campaign, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, 2, campaign.Successful)
	assert.Equal(t, 1, campaign.Queued)
	assert.Nil(t, campaign.TemplateID)
	require.NotNil(t, campaign.StartedAt)
	assert.Nil(t, campaign.CompletedAt)
	require.Len(t, campaign.Recipients, 1)
	assert.Equal(t, "a@example.com", campaign.Recipients[0].Email)

	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_ListScheduledDue(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE \(status = \$1 AND scheduled_for <= \$2\)`).
		WithArgs(domain.CampaignStatusScheduled, now).
		WillReturnRows(campaignRows().
			AddRow(5, "due", int64(2), "Subject", 10, 0, 0, 0,
				"scheduled", past, []byte(`[]`), []byte(`[]`), []byte(`[]`),
				false, false, nil, nil, now))

	campaigns, err := repo.ListScheduledDue(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	require.NotNil(t, campaigns[0].TemplateID)
	assert.Equal(t, int64(2), *campaigns[0].TemplateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_MarkSending(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	startedAt := time.Now().UTC()

	t.Run("claims the campaign", func(t *testing.T) {
		mock.ExpectExec(`UPDATE campaigns SET status = \$1, started_at = \$2 WHERE \(id = \$3 AND status = \$4\)`).
			WithArgs(domain.CampaignStatusSending, startedAt, int64(5), domain.CampaignStatusScheduled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.MarkSending(context.Background(), 5, startedAt)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("already claimed", func(t *testing.T) {
		mock.ExpectExec(`UPDATE campaigns SET status = \$1, started_at = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.MarkSending(context.Background(), 5, startedAt)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_IncrementCounters(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	mock.ExpectExec(`UPDATE campaigns SET successful = successful \+ \$1, failed = failed \+ \$2, queued = queued \+ \$3 WHERE id = \$4`).
		WithArgs(1, 0, 0, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementCounters(context.Background(), 11, 1, 0, 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_CompleteIfDrained(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewCampaignRepository(db)

	completedAt := time.Now().UTC()

	t.Run("drained", func(t *testing.T) {
		mock.ExpectExec(`UPDATE campaigns SET status = \$1, completed_at = \$2 WHERE \(id = \$3 AND status IN \(\$4,\$5\)\) AND queued = 0 AND successful \+ failed >= total_recipients`).
			WithArgs(domain.CampaignStatusCompleted, completedAt, int64(11),
				domain.CampaignStatusSending, domain.CampaignStatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 1))

		done, err := repo.CompleteIfDrained(context.Background(), 11, completedAt)
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("already completed with deferred recipients", func(t *testing.T) {
		// The run loop completes a campaign even while recipients sit in the
		// queue; the drain must still match the row to refresh completed_at.
		mock.ExpectExec(`UPDATE campaigns SET status = \$1, completed_at = \$2 WHERE \(id = \$3 AND status IN \(\$4,\$5\)\)`).
			WithArgs(domain.CampaignStatusCompleted, completedAt, int64(12),
				domain.CampaignStatusSending, domain.CampaignStatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 1))

		done, err := repo.CompleteIfDrained(context.Background(), 12, completedAt)
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("still queued", func(t *testing.T) {
		mock.ExpectExec(`UPDATE campaigns SET status = \$1, completed_at = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		done, err := repo.CompleteIfDrained(context.Background(), 11, completedAt)
		require.NoError(t, err)
		assert.False(t, done)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
