package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mailfleet/mailfleet/internal/domain"
)

// SequenceRepository implements domain.SequenceRepository
type SequenceRepository struct {
	db *sql.DB
}

// NewSequenceRepository creates a new SequenceRepository
func NewSequenceRepository(db *sql.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// CreateSequence inserts the sequence and its steps in one transaction, so a
// sequence never exists without its steps.
func (r *SequenceRepository) CreateSequence(ctx context.Context, seq *domain.Sequence, steps []*domain.SequenceStep) error {
	seq.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := psql.
		Insert("sequences").
		Columns("name", "enabled", "created_at").
		Values(seq.Name, seq.Enabled, seq.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sequence insert: %w", err)
	}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&seq.ID); err != nil {
		return fmt.Errorf("failed to create sequence: %w", err)
	}

	for _, step := range steps {
		step.SequenceID = seq.ID
		query, args, err := psql.
			Insert("sequence_steps").
			Columns("sequence_id", "step_order", "template_id", "subject",
				"delay_days", "delay_hours", "send_time").
			Values(step.SequenceID, step.StepOrder, step.TemplateID, step.Subject,
				step.DelayDays, step.DelayHours, step.SendTime).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build step insert: %w", err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&step.ID); err != nil {
			return fmt.Errorf("failed to create sequence step: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sequence: %w", err)
	}
	return nil
}

// GetSequence fetches one sequence.
func (r *SequenceRepository) GetSequence(ctx context.Context, id int64) (*domain.Sequence, error) {
	query, args, err := psql.
		Select("id", "name", "enabled", "created_at").
		From("sequences").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence query: %w", err)
	}

	var s domain.Sequence
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Enabled, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSequenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence: %w", err)
	}
	return &s, nil
}

// ListSequences returns every sequence, newest first.
func (r *SequenceRepository) ListSequences(ctx context.Context) ([]*domain.Sequence, error) {
	query, args, err := psql.
		Select("id", "name", "enabled", "created_at").
		From("sequences").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sequences: %w", err)
	}
	defer rows.Close()

	var sequences []*domain.Sequence
	for rows.Next() {
		var s domain.Sequence
		if err := rows.Scan(&s.ID, &s.Name, &s.Enabled, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sequence: %w", err)
		}
		sequences = append(sequences, &s)
	}
	return sequences, rows.Err()
}

// GetStep returns the step at the given order. ErrSequenceNotFound marks the
// end of the sequence for the dispatcher.
func (r *SequenceRepository) GetStep(ctx context.Context, sequenceID int64, order int) (*domain.SequenceStep, error) {
	query, args, err := psql.
		Select("id", "sequence_id", "step_order", "template_id", "subject",
			"delay_days", "delay_hours", "send_time").
		From("sequence_steps").
		Where(sq.Eq{"sequence_id": sequenceID, "step_order": order}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build step query: %w", err)
	}

	var s domain.SequenceStep
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.SequenceID, &s.StepOrder, &s.TemplateID, &s.Subject,
			&s.DelayDays, &s.DelayHours, &s.SendTime)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSequenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence step: %w", err)
	}
	return &s, nil
}

// Enroll inserts the enrollment and sets its generated id.
func (r *SequenceRepository) Enroll(ctx context.Context, enrollment *domain.SequenceEnrollment) error {
	if enrollment.Status == "" {
		enrollment.Status = domain.EnrollmentStatusActive
	}
	enrollment.EnrolledAt = time.Now().UTC()

	query, args, err := psql.
		Insert("sequence_enrollments").
		Columns("sequence_id", "recipient_email", "recipient_data",
			"current_step", "status", "next_send_at", "enrolled_at").
		Values(enrollment.SequenceID, enrollment.RecipientEmail, enrollment.RecipientData,
			enrollment.CurrentStep, enrollment.Status, enrollment.NextSendAt, enrollment.EnrolledAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enrollment insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&enrollment.ID); err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

// ListDueEnrollments returns active enrollments of enabled sequences whose
// next send time has passed, oldest due first.
func (r *SequenceRepository) ListDueEnrollments(ctx context.Context, now time.Time) ([]*domain.SequenceEnrollment, error) {
	query, args, err := psql.
		Select("e.id", "e.sequence_id", "e.recipient_email", "e.recipient_data",
			"e.current_step", "e.status", "e.next_send_at", "e.enrolled_at", "e.completed_at").
		From("sequence_enrollments e").
		Join("sequences s ON s.id = e.sequence_id").
		Where(sq.Eq{"e.status": domain.EnrollmentStatusActive, "s.enabled": true}).
		Where(sq.LtOrEq{"e.next_send_at": now.UTC()}).
		OrderBy("e.next_send_at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build due enrollments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list due enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*domain.SequenceEnrollment
	for rows.Next() {
		var e domain.SequenceEnrollment
		var nextSendAt, completedAt sql.NullTime
		err := rows.Scan(&e.ID, &e.SequenceID, &e.RecipientEmail, &e.RecipientData,
			&e.CurrentStep, &e.Status, &nextSendAt, &e.EnrolledAt, &completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		if nextSendAt.Valid {
			t := nextSendAt.Time
			e.NextSendAt = &t
		}
		if completedAt.Valid {
			t := completedAt.Time
			e.CompletedAt = &t
		}
		enrollments = append(enrollments, &e)
	}
	return enrollments, rows.Err()
}

// AdvanceEnrollment moves the enrollment to the next step.
func (r *SequenceRepository) AdvanceEnrollment(ctx context.Context, id int64, currentStep int, nextSendAt time.Time) error {
	query, args, err := psql.
		Update("sequence_enrollments").
		Set("current_step", currentStep).
		Set("next_send_at", nextSendAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build advance update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to advance enrollment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

// CompleteEnrollment marks the enrollment completed and clears its schedule.
func (r *SequenceRepository) CompleteEnrollment(ctx context.Context, id int64, completedAt time.Time) error {
	query, args, err := psql.
		Update("sequence_enrollments").
		Set("status", domain.EnrollmentStatusCompleted).
		Set("next_send_at", nil).
		Set("completed_at", completedAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build complete update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to complete enrollment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}
