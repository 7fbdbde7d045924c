package rabbitmq

import "time"

// PropertyNotifiedEventDTO - тело события PropertyNotifiedEvent/1.0.0
type PropertyNotifiedEventDTO struct {
	EventID        string    `json:"event_id"`
	PropertyID     int64     `json:"property_id"`
	NotificationID int64     `json:"notification_id"`
	NotifiedAt     time.Time `json:"notified_at"`
	LineMessageID  *string   `json:"line_message_id"`
	Status         string    `json:"status"`
}
