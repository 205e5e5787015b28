package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories and services. Callers test them
// with errors.Is.
var (
	ErrAccountNotFound    = errors.New("sender account not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTokenNotFound      = errors.New("tracking token not found")
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	ErrRecurringNotFound  = errors.New("recurring campaign not found")
	ErrSequenceNotFound   = errors.New("sequence not found")
	ErrEnrollmentNotFound = errors.New("sequence enrollment not found")

	// ErrNoEligibleAccount is returned by account selection when every
	// enabled account is at cap, circuit-broken, or undecryptable.
	ErrNoEligibleAccount = errors.New("no eligible sender account")
)

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}
