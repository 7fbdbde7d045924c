package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
)

// DeleteNotificationUseCase удаляет запись, статус объекта при этом не откатывается.
type DeleteNotificationUseCase struct {
	repo port.NotificationRepositoryPort
}

func NewDeleteNotificationUseCase(repo port.NotificationRepositoryPort) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{repo: repo}
}

func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "DeleteNotification",
		"notification_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, id); err != nil {
		logRepositoryError(ucLogger, err)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
