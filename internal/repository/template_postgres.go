package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// TemplateRepository implements domain.TemplateRepository
type TemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts the template and sets its generated id.
func (r *TemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	now := time.Now().UTC()
	template.CreatedAt = now
	template.UpdatedAt = now

	query, args, err := psql.
		Insert("templates").
		Columns("name", "subject", "blocks", "created_at", "updated_at").
		Values(template.Name, template.Subject, template.Blocks, template.CreatedAt, template.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build template insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&template.ID); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// Update rewrites the template.
func (r *TemplateRepository) Update(ctx context.Context, template *domain.Template) error {
	template.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("templates").
		Set("name", template.Name).
		Set("subject", template.Subject).
		Set("blocks", template.Blocks).
		Set("updated_at", template.UpdatedAt).
		Where(sq.Eq{"id": template.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build template update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

// GetByID fetches one template.
func (r *TemplateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	query, args, err := psql.
		Select("id", "name", "subject", "blocks", "created_at", "updated_at").
		From("templates").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build template query: %w", err)
	}

	var t domain.Template
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.Name, &t.Subject, &t.Blocks, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}

// List returns templates newest first.
func (r *TemplateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	query, args, err := psql.
		Select("id", "name", "subject", "blocks", "created_at", "updated_at").
		From("templates").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build template list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Blocks, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}
