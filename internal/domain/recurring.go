package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/robfig/cron/v3"
)

// RecipientSourceType identifies where a recurring campaign resolves its
// recipient list from at each fire.
type RecipientSourceType string

const (
	RecipientSourceInline  RecipientSourceType = "inline"
	RecipientSourceCSVURL  RecipientSourceType = "csv_url"
	RecipientSourceJSONURL RecipientSourceType = "json_url"
)

// RecipientSource is the JSONB recipient resolver of a recurring campaign:
// either an inline list, or a URL fetched and parsed as CSV or a JSON array
// at fire time.
type RecipientSource struct {
	Type       RecipientSourceType `json:"type"`
	Recipients RecipientList       `json:"recipients,omitempty"`
	URL        string              `json:"url,omitempty"`
}

// Validate checks the source against its declared type.
func (s RecipientSource) Validate() error {
	switch s.Type {
	case RecipientSourceInline:
		if len(s.Recipients) == 0 {
			return NewValidationError("inline recipient source requires recipients")
		}
		for _, r := range s.Recipients {
			if err := r.Validate(); err != nil {
				return err
			}
		}
	case RecipientSourceCSVURL, RecipientSourceJSONURL:
		if !govalidator.IsURL(s.URL) {
			return NewValidationError(fmt.Sprintf("invalid recipient source url: %s", s.URL))
		}
	default:
		return NewValidationError(fmt.Sprintf("unsupported recipient source type: %s", s.Type))
	}
	return nil
}

// Value implements the driver.Valuer interface for database storage
func (s RecipientSource) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for database retrieval
func (s *RecipientSource) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	v, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed for RecipientSource")
	}

	return json.Unmarshal(v, s)
}

// RecurringCampaign produces a one-shot campaign at each cron fire. The
// cron expression is evaluated in the row's IANA timezone; NextRunAt is
// stored in UTC. A failed run never disables the row.
type RecurringCampaign struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TemplateID      int64           `json:"template_id"`
	Subject         string          `json:"subject"`
	CronExpr        string          `json:"cron_expr"`
	Timezone        string          `json:"timezone"`
	RecipientSource RecipientSource `json:"recipient_source"`
	CC              StringList      `json:"cc,omitempty"`
	BCC             StringList      `json:"bcc,omitempty"`
	TrackOpens      bool            `json:"track_opens"`
	TrackClicks     bool            `json:"track_clicks"`
	Enabled         bool            `json:"enabled"`
	LastRunAt       *time.Time      `json:"last_run_at,omitempty"`
	NextRunAt       time.Time       `json:"next_run_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Validate checks the row before persisting: a parseable five-field cron
// expression, a loadable timezone and a well-formed recipient source.
func (r *RecurringCampaign) Validate() error {
	if r.Name == "" {
		return NewValidationError("recurring campaign name is required")
	}
	if r.TemplateID == 0 {
		return NewValidationError("recurring campaign requires a template")
	}
	if _, err := cron.ParseStandard(r.CronExpr); err != nil {
		return NewValidationError(fmt.Sprintf("invalid cron expression %q: %v", r.CronExpr, err))
	}
	if _, err := r.Location(); err != nil {
		return NewValidationError(fmt.Sprintf("invalid timezone %q", r.Timezone))
	}
	return r.RecipientSource.Validate()
}

// Location resolves the row's timezone, defaulting to UTC when unset.
func (r *RecurringCampaign) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(r.Timezone)
}

// NextRun evaluates the cron expression against the row's timezone and
// returns the next fire after now, in UTC.
func (r *RecurringCampaign) NextRun(now time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(r.CronExpr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", r.CronExpr, err)
	}
	loc, err := r.Location()
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", r.Timezone, err)
	}
	return sched.Next(now.In(loc)).UTC(), nil
}
