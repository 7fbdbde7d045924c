package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// UpdateBikeParkingUseCase заменяет запись парковки и пересчитывает расстояние
// относительно объекта из тела запроса.
type UpdateBikeParkingUseCase struct {
	repo         port.BikeParkingRepositoryPort
	propertyRepo port.PropertyRepositoryPort
	geo          port.GeoCalculatorPort
}

func NewUpdateBikeParkingUseCase(repo port.BikeParkingRepositoryPort, propertyRepo port.PropertyRepositoryPort, geo port.GeoCalculatorPort) *UpdateBikeParkingUseCase {
	return &UpdateBikeParkingUseCase{repo: repo, propertyRepo: propertyRepo, geo: geo}
}

func (uc *UpdateBikeParkingUseCase) Execute(ctx context.Context, id int64, input domain.BikeParkingInput) (*domain.BikeParking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "UpdateBikeParking",
		"bike_parking_id": id,
		"property_id":     input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	next := current.Replaced(input)
	next.Distance = resolveDistance(uc.geo, *property, next)

	if err := uc.repo.Update(ctx, &next); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &next, nil
}
