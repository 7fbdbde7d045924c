package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

type ListNotificationsUseCase struct {
	repo port.NotificationRepositoryPort
}

func NewListNotificationsUseCase(repo port.NotificationRepositoryPort) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, propertyID int64) ([]domain.Notification, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ListNotifications",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	notifications, err := uc.repo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(notifications)})
	return notifications, nil
}
