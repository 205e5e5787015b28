// Package schema defines the database schema of the delivery engine.
//
// Tables are created with CREATE TABLE IF NOT EXISTS at startup. Don't put
// REFERENCES and don't put CHECK constraints in the CREATE TABLE statements:
// rows relate by id only, and invariants are enforced by the services.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS sender_accounts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		provider_kind VARCHAR(20) NOT NULL,
		encrypted_config TEXT NOT NULL,
		daily_cap INTEGER NOT NULL,
		campaign_cap INTEGER NOT NULL,
		priority INTEGER NOT NULL DEFAULT 0,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		circuit_breaker_until TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS send_counts (
		account_id BIGINT NOT NULL,
		date VARCHAR(10) NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (account_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		template_id BIGINT,
		subject TEXT NOT NULL,
		total_recipients INTEGER NOT NULL DEFAULT 0,
		successful INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		queued INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		scheduled_for TIMESTAMP,
		cc JSONB NOT NULL DEFAULT '[]',
		bcc JSONB NOT NULL DEFAULT '[]',
		recipients JSONB,
		track_opens BOOLEAN NOT NULL DEFAULT FALSE,
		track_clicks BOOLEAN NOT NULL DEFAULT FALSE,
		started_at TIMESTAMP,
		completed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS send_logs (
		id UUID PRIMARY KEY,
		campaign_id BIGINT NOT NULL,
		account_id BIGINT,
		recipient_email VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL,
		error_message TEXT,
		retry_count INTEGER NOT NULL DEFAULT 0,
		sent_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_send_logs_campaign ON send_logs (campaign_id)`,
	`CREATE INDEX IF NOT EXISTS idx_send_logs_campaign_account ON send_logs (campaign_id, account_id)`,
	`CREATE TABLE IF NOT EXISTS send_queue (
		id BIGSERIAL PRIMARY KEY,
		campaign_id BIGINT NOT NULL,
		recipient_email VARCHAR(255) NOT NULL,
		recipient_data JSONB NOT NULL DEFAULT '{}',
		scheduled_for VARCHAR(10) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL,
		processed_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_send_queue_due ON send_queue (status, scheduled_for)`,
	`CREATE TABLE IF NOT EXISTS tracking_tokens (
		token VARCHAR(32) PRIMARY KEY,
		campaign_id BIGINT NOT NULL,
		recipient_email VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (campaign_id, recipient_email)
	)`,
	`CREATE TABLE IF NOT EXISTS tracking_events (
		id UUID PRIMARY KEY,
		token VARCHAR(32) NOT NULL,
		event_type VARCHAR(10) NOT NULL,
		link_index INTEGER,
		url TEXT,
		user_agent TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_events_token ON tracking_events (token)`,
	`CREATE TABLE IF NOT EXISTS templates (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		blocks JSONB NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS recurring_campaigns (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		template_id BIGINT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		cron_expr VARCHAR(100) NOT NULL,
		timezone VARCHAR(50) NOT NULL DEFAULT 'UTC',
		recipient_source JSONB NOT NULL,
		cc JSONB NOT NULL DEFAULT '[]',
		bcc JSONB NOT NULL DEFAULT '[]',
		track_opens BOOLEAN NOT NULL DEFAULT FALSE,
		track_clicks BOOLEAN NOT NULL DEFAULT FALSE,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		last_run_at TIMESTAMP,
		next_run_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sequences (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sequence_steps (
		id BIGSERIAL PRIMARY KEY,
		sequence_id BIGINT NOT NULL,
		step_order INTEGER NOT NULL,
		template_id BIGINT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		delay_days INTEGER NOT NULL DEFAULT 0,
		delay_hours INTEGER NOT NULL DEFAULT 0,
		send_time VARCHAR(5),
		UNIQUE (sequence_id, step_order)
	)`,
	`CREATE TABLE IF NOT EXISTS sequence_enrollments (
		id BIGSERIAL PRIMARY KEY,
		sequence_id BIGINT NOT NULL,
		recipient_email VARCHAR(255) NOT NULL,
		recipient_data JSONB NOT NULL DEFAULT '{}',
		current_step INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		next_send_at TIMESTAMP,
		enrolled_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sequence_enrollments_due ON sequence_enrollments (status, next_send_at)`,
}
