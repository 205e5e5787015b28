package domain

import "time"

// TrackingToken is the opaque per-(campaign, recipient) identifier embedded
// in delivered emails for open/click measurement. Sequence-step sends scope
// their tokens with a negative campaign id whose magnitude is the sequence
// id; that convention lives entirely in this field.
type TrackingToken struct {
	Token          string    `json:"token"`
	CampaignID     int64     `json:"campaign_id"`
	RecipientEmail string    `json:"recipient_email"`
	CreatedAt      time.Time `json:"created_at"`
}

// TrackingEventType discriminates recorded tracking events.
type TrackingEventType string

const (
	TrackingEventOpen  TrackingEventType = "open"
	TrackingEventClick TrackingEventType = "click"
)

// TrackingEvent is one recorded open or click. LinkIndex and URL are set
// only on clicks.
type TrackingEvent struct {
	ID        string            `json:"id"`
	Token     string            `json:"token"`
	EventType TrackingEventType `json:"event_type"`
	LinkIndex *int              `json:"link_index,omitempty"`
	URL       *string           `json:"url,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
