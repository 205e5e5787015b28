// Package repository implements the domain repositories over PostgreSQL.
package repository

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is a Squirrel StatementBuilder configured for PostgreSQL
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
