package domain

import "time"

// SendLogStatus is the outcome recorded for one delivery attempt.
type SendLogStatus string

const (
	SendLogStatusSuccess SendLogStatus = "success"
	SendLogStatusFailed  SendLogStatus = "failed"
	SendLogStatusQueued  SendLogStatus = "queued"
)

// QueuedLogMessage is the error message recorded on queued send logs when
// every account was at cap.
const QueuedLogMessage = "All accounts at cap"

// SendLog is one row per delivery attempt, append-only. AccountID is nil
// when no account was available and the recipient was queued instead.
type SendLog struct {
	ID             string        `json:"id"`
	CampaignID     int64         `json:"campaign_id"`
	AccountID      *int64        `json:"account_id,omitempty"`
	RecipientEmail string        `json:"recipient_email"`
	Status         SendLogStatus `json:"status"`
	ErrorMessage   string        `json:"error_message,omitempty"`
	RetryCount     int           `json:"retry_count"`
	SentAt         time.Time     `json:"sent_at"`
}
