package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"time"

	"github.com/google/uuid"
)

// CreateNotificationUseCase сохраняет уведомление и переводит объект в статус NOTIFIED.
// После фиксации транзакции публикует событие, ошибка публикации только логируется.
type CreateNotificationUseCase struct {
	repo      port.NotificationRepositoryPort
	publisher port.NotificationEventPublisherPort
}

func NewCreateNotificationUseCase(repo port.NotificationRepositoryPort, publisher port.NotificationEventPublisherPort) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{repo: repo, publisher: publisher}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, input domain.NotificationInput) (*domain.Notification, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreateNotification",
		"property_id": input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	notification := domain.NewNotification(input, time.Now().UTC())
	if err := uc.repo.CreateAndMarkNotified(ctx, &notification); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	if uc.publisher != nil {
		event := domain.PropertyNotifiedEvent{
			EventID:        uuid.New().String(),
			PropertyID:     notification.PropertyID,
			NotificationID: notification.ID,
			NotifiedAt:     notification.NotifiedAt,
			LineMessageID:  notification.LineMessageID,
			Status:         domain.StatusNotified,
		}
		if err := uc.publisher.PublishPropertyNotified(ctx, event); err != nil {
			ucLogger.Error("Failed to publish property notified event", err, port.Fields{"notification_id": notification.ID})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"notification_id": notification.ID})
	return &notification, nil
}
