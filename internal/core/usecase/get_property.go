package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

type GetPropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyUseCase(repo port.PropertyRepositoryPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{repo: repo}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id int64) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.GetWithRelations(ctx, id)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
