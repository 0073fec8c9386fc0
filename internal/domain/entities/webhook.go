package entities

import "time"

// WebhookEvent records a processed payment event so redeliveries are
// acknowledged without granting credits twice. The unique event ID is the
// idempotency key.
type WebhookEvent struct {
	EventID     string    `json:"eventId" gorm:"primaryKey;size:255"`
	EventType   string    `json:"eventType" gorm:"size:128;not null"`
	ProcessedAt time.Time `json:"processedAt"`
}
