package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/database/schema"
)

func TestInitializeSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema.TableDefinitions {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, InitializeSchema(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeSchema_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE").WillReturnError(errors.New("boom"))

	err = InitializeSchema(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create table")
}
