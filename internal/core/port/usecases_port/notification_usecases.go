package usecases_port

import (
	"context"
	"property-search-service/internal/core/domain"
)

type ListNotificationsUseCasePort interface {
	Execute(ctx context.Context, propertyID int64) ([]domain.Notification, error)
}

// CreateNotificationUseCasePort сохраняет уведомление и переводит объект в статус NOTIFIED
type CreateNotificationUseCasePort interface {
	Execute(ctx context.Context, input domain.NotificationInput) (*domain.Notification, error)
}

type DeleteNotificationUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
