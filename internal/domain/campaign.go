package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// CampaignStatus is the lifecycle state of a campaign. It advances
// monotonically: draft → scheduled → sending → completed.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Recipient is one entry of a campaign's recipient list with its merge
// variables.
type Recipient struct {
	Email string            `json:"email"`
	Data  map[string]string `json:"data,omitempty"`
}

// Validate checks the recipient address.
func (r Recipient) Validate() error {
	if r.Email == "" {
		return NewValidationError("recipient email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError(fmt.Sprintf("invalid recipient email: %s", r.Email))
	}
	return nil
}

// RecipientList is a recipient snapshot stored as a JSONB column on
// scheduled campaigns.
type RecipientList []Recipient

// Value implements the driver.Valuer interface for database storage
func (l RecipientList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Recipient{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for database retrieval
func (l *RecipientList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	v, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed for RecipientList")
	}

	return json.Unmarshal(v, l)
}

// Campaign is a single batched send. The successful/failed/queued counters
// are updated with SQL-level increments so concurrent writers of the same
// row stay correct; at every observable instant
// successful + failed + queued ≤ total_recipients, with equality once the
// campaign completes.
type Campaign struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	TemplateID      *int64         `json:"template_id,omitempty"`
	Subject         string         `json:"subject"`
	TotalRecipients int            `json:"total_recipients"`
	Successful      int            `json:"successful"`
	Failed          int            `json:"failed"`
	Queued          int            `json:"queued"`
	Status          CampaignStatus `json:"status"`
	ScheduledFor    *time.Time     `json:"scheduled_for,omitempty"`
	CC              StringList     `json:"cc,omitempty"`
	BCC             StringList     `json:"bcc,omitempty"`
	Recipients      RecipientList  `json:"-"`
	TrackOpens      bool           `json:"track_opens"`
	TrackClicks     bool           `json:"track_clicks"`
	StartedAt       *time.Time     `json:"started_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ProgressEventType discriminates the events of a campaign progress stream.
type ProgressEventType string

const (
	ProgressEventProgress ProgressEventType = "progress"
	ProgressEventComplete ProgressEventType = "complete"
	ProgressEventError    ProgressEventType = "error"
)

// ProgressEvent is one element of the lazy progress stream emitted while a
// campaign runs. The stream ends with a single complete or error event.
type ProgressEvent struct {
	Type       ProgressEventType `json:"type"`
	Current    int               `json:"current,omitempty"`
	Total      int               `json:"total,omitempty"`
	Message    string            `json:"message,omitempty"`
	CampaignID int64             `json:"campaign_id,omitempty"`
}
