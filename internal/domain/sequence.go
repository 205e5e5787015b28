package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Sequence is a drip series of steps sent over time to enrolled recipients.
type Sequence struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// TrackingCampaignID returns the negative pseudo campaign id that scopes
// tracking tokens minted for this sequence's sends.
func (s *Sequence) TrackingCampaignID() int64 {
	return -s.ID
}

var sendTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// SequenceStep is one email of a drip sequence, ordered by StepOrder
// starting at 0. The delay fields offset the step from the previous send;
// SendTime optionally pins the wall-clock time of day ("HH:MM", UTC).
type SequenceStep struct {
	ID         int64  `json:"id"`
	SequenceID int64  `json:"sequence_id"`
	StepOrder  int    `json:"step_order"`
	TemplateID int64  `json:"template_id"`
	Subject    string `json:"subject"`
	DelayDays  int    `json:"delay_days"`
	DelayHours int    `json:"delay_hours"`
	SendTime   string `json:"send_time,omitempty"`
}

// Validate checks the step invariants before persisting.
func (s *SequenceStep) Validate() error {
	if s.TemplateID == 0 {
		return NewValidationError("sequence step requires a template")
	}
	if s.DelayDays < 0 || s.DelayHours < 0 {
		return NewValidationError("sequence step delays must not be negative")
	}
	if s.SendTime != "" && !sendTimeRegex.MatchString(s.SendTime) {
		return NewValidationError(fmt.Sprintf("invalid send_time %q, expected HH:MM", s.SendTime))
	}
	return nil
}

// NextSendAt computes when this step becomes due, measured from now: the
// configured day/hour delay, then, if SendTime is set, the time of day
// aligned to it on the same calendar day.
func (s *SequenceStep) NextSendAt(now time.Time) time.Time {
	next := now.UTC().
		Add(time.Duration(s.DelayDays) * 24 * time.Hour).
		Add(time.Duration(s.DelayHours) * time.Hour)

	if m := sendTimeRegex.FindStringSubmatch(s.SendTime); m != nil {
		hour := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
		minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
		next = time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, time.UTC)
	}

	return next
}

// EnrollmentStatus is the lifecycle state of a sequence enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

// SequenceEnrollment tracks one recipient's position in a sequence.
// CurrentStep is the order of the next step to send; NextSendAt is when it
// becomes due and is cleared on completion.
type SequenceEnrollment struct {
	ID             int64            `json:"id"`
	SequenceID     int64            `json:"sequence_id"`
	RecipientEmail string           `json:"recipient_email"`
	RecipientData  JSONMap          `json:"recipient_data,omitempty"`
	CurrentStep    int              `json:"current_step"`
	Status         EnrollmentStatus `json:"status"`
	NextSendAt     *time.Time       `json:"next_send_at,omitempty"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}
