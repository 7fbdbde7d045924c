package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"time"
)

// UpdatePropertyUseCase выполняет полную замену базовых полей объекта.
type UpdatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
	geo  port.GeoCalculatorPort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort, geo port.GeoCalculatorPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{repo: repo, geo: geo}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id int64, input domain.PropertyInput) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	next := current.Replaced(input, time.Now().UTC())
	next.Geohash = geohashFor(uc.geo, next)

	if err := uc.repo.Update(ctx, &next); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	updated, err := uc.repo.GetWithRelations(ctx, id)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
