package port

import (
	"context"
	"property-search-service/internal/core/domain"
)

// NotificationEventPublisherPort публикует события об отправленных уведомлениях.
type NotificationEventPublisherPort interface {
	PublishPropertyNotified(ctx context.Context, event domain.PropertyNotifiedEvent) error
}
