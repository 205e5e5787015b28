package database

import (
	"database/sql"
	"fmt"

	"github.com/mailfleet/mailfleet/internal/database/schema"
)

// InitializeSchema creates all necessary database tables if they don't exist
func InitializeSchema(db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
