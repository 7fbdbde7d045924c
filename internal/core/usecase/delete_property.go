package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
)

// DeletePropertyUseCase удаляет объект вместе с провайдером, парковками и уведомлениями.
type DeletePropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewDeletePropertyUseCase(repo port.PropertyRepositoryPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{repo: repo}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, id); err != nil {
		logRepositoryError(ucLogger, err)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
