package domain

import "time"

// QueueStatus is the lifecycle state of a deferred recipient.
type QueueStatus string

const (
	QueueStatusPending QueueStatus = "pending"
	QueueStatusSent    QueueStatus = "sent"
	QueueStatusFailed  QueueStatus = "failed"
)

// QueueEntry is a recipient deferred because no account had remaining
// capacity at send time. ScheduledFor is the earliest eligible drain date
// (ISO YYYY-MM-DD, UTC). Entries get exactly one attempt per drain pass and
// are never deleted by the engine.
type QueueEntry struct {
	ID             int64       `json:"id"`
	CampaignID     int64       `json:"campaign_id"`
	RecipientEmail string      `json:"recipient_email"`
	RecipientData  JSONMap     `json:"recipient_data,omitempty"`
	ScheduledFor   string      `json:"scheduled_for"`
	Status         QueueStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	ProcessedAt    *time.Time  `json:"processed_at,omitempty"`
}
