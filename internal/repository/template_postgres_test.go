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
	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
)

func TestTemplateRepository_CreateAndGet(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewTemplateRepository(db)

	template := &domain.Template{
		Name:    "welcome",
		Subject: "Welcome {{name}}",
		Blocks: emailbuilder.Blocks{
			{Kind: emailbuilder.BlockText, Content: "Hello {{name}}"},
		},
	}

	mock.ExpectQuery(`INSERT INTO templates`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	require.NoError(t, repo.Create(context.Background(), template))
	assert.Equal(t, int64(2), template.ID)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .+ FROM templates WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "subject", "blocks", "created_at", "updated_at"}).
			AddRow(2, "welcome", "Welcome {{name}}", []byte(`[{"kind":"text","content":"Hello {{name}}"}]`), now, now))

	got, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, emailbuilder.BlockText, got.Blocks[0].Kind)

	mock.ExpectQuery(`SELECT .+ FROM templates WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
