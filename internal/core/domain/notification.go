package domain

import "time"

// Notification - запись об отправленном уведомлении по объекту.
type Notification struct {
	ID         int64
	PropertyID int64

	NotifiedAt    time.Time
	LineMessageID *string

	CreatedAt time.Time
}

type NotificationInput struct {
	PropertyID    int64
	NotifiedAt    time.Time
	LineMessageID *string
}

func NewNotification(in NotificationInput, now time.Time) Notification {
	return Notification{
		PropertyID:    in.PropertyID,
		NotifiedAt:    in.NotifiedAt,
		LineMessageID: copyString(in.LineMessageID),
		CreatedAt:     now,
	}
}

// PropertyNotifiedEvent - событие, которое публикуется после сохранения уведомления.
type PropertyNotifiedEvent struct {
	EventID        string
	PropertyID     int64
	NotificationID int64
	NotifiedAt     time.Time
	LineMessageID  *string
	Status         string
}
