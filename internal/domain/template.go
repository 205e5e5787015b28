package domain

import (
	"time"

	"github.com/mailfleet/mailfleet/pkg/emailbuilder"
)

// Template is a reusable block-based message body with a default subject.
type Template struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Subject   string              `json:"subject"`
	Blocks    emailbuilder.Blocks `json:"blocks"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Validate checks the template invariants before persisting.
func (t *Template) Validate() error {
	if t.Name == "" {
		return NewValidationError("template name is required")
	}
	if err := t.Blocks.Validate(); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}
