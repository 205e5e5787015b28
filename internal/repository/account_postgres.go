package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// AccountRepository implements domain.AccountRepository
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

var accountColumns = []string{
	"id", "name", "provider_kind", "encrypted_config",
	"daily_cap", "campaign_cap", "priority", "enabled",
	"circuit_breaker_until", "created_at", "updated_at",
}

func scanAccount(scanner interface{ Scan(...interface{}) error }) (*domain.SenderAccount, error) {
	var a domain.SenderAccount
	var until sql.NullTime
	err := scanner.Scan(
		&a.ID, &a.Name, &a.ProviderKind, &a.EncryptedConfig,
		&a.DailyCap, &a.CampaignCap, &a.Priority, &a.Enabled,
		&until, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if until.Valid {
		t := until.Time
		a.CircuitBreakerUntil = &t
	}
	return &a, nil
}

// Create inserts the account and sets its generated id.
func (r *AccountRepository) Create(ctx context.Context, account *domain.SenderAccount) error {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query, args, err := psql.
		Insert("sender_accounts").
		Columns("name", "provider_kind", "encrypted_config", "daily_cap",
			"campaign_cap", "priority", "enabled", "created_at", "updated_at").
		Values(account.Name, account.ProviderKind, account.EncryptedConfig, account.DailyCap,
			account.CampaignCap, account.Priority, account.Enabled, account.CreatedAt, account.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update rewrites the mutable account fields.
func (r *AccountRepository) Update(ctx context.Context, account *domain.SenderAccount) error {
	account.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("sender_accounts").
		Set("name", account.Name).
		Set("provider_kind", account.ProviderKind).
		Set("encrypted_config", account.EncryptedConfig).
		Set("daily_cap", account.DailyCap).
		Set("campaign_cap", account.CampaignCap).
		Set("priority", account.Priority).
		Set("enabled", account.Enabled).
		Set("updated_at", account.UpdatedAt).
		Where(sq.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete removes the account.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("sender_accounts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account delete: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// GetByID fetches one account.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.SenderAccount, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("sender_accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// List returns every account ordered by priority.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.SenderAccount, error) {
	return r.list(ctx, nil)
}

// ListEnabled returns enabled accounts in selection order.
func (r *AccountRepository) ListEnabled(ctx context.Context) ([]*domain.SenderAccount, error) {
	return r.list(ctx, sq.Eq{"enabled": true})
}

func (r *AccountRepository) list(ctx context.Context, where interface{}) ([]*domain.SenderAccount, error) {
	builder := psql.
		Select(accountColumns...).
		From("sender_accounts").
		OrderBy("priority ASC", "id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build account list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.SenderAccount
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// SetCircuitBreakerUntil persists the breaker cooldown expiry; nil clears it.
func (r *AccountRepository) SetCircuitBreakerUntil(ctx context.Context, id int64, until *time.Time) error {
	query, args, err := psql.
		Update("sender_accounts").
		Set("circuit_breaker_until", until).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build circuit breaker update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to persist circuit breaker state: %w", err)
	}
	return nil
}

// ListCircuitBroken returns ids of accounts with an unexpired cooldown.
func (r *AccountRepository) ListCircuitBroken(ctx context.Context, now time.Time) ([]int64, error) {
	query, args, err := psql.
		Select("id").
		From("sender_accounts").
		Where(sq.Gt{"circuit_breaker_until": now.UTC()}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build circuit broken query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list circuit broken accounts: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
