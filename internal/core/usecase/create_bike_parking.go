package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"time"
)

// CreateBikeParkingUseCase сохраняет парковку. Если координаты есть и у объекта, и у парковки,
// расстояние считается сервером, иначе сохраняется значение клиента.
type CreateBikeParkingUseCase struct {
	repo         port.BikeParkingRepositoryPort
	propertyRepo port.PropertyRepositoryPort
	geo          port.GeoCalculatorPort
}

func NewCreateBikeParkingUseCase(repo port.BikeParkingRepositoryPort, propertyRepo port.PropertyRepositoryPort, geo port.GeoCalculatorPort) *CreateBikeParkingUseCase {
	return &CreateBikeParkingUseCase{repo: repo, propertyRepo: propertyRepo, geo: geo}
}

func (uc *CreateBikeParkingUseCase) Execute(ctx context.Context, input domain.BikeParkingInput) (*domain.BikeParking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreateBikeParking",
		"property_id": input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	parking := domain.NewBikeParking(input, time.Now().UTC())
	parking.Distance = resolveDistance(uc.geo, *property, parking)

	if err := uc.repo.Create(ctx, &parking); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"bike_parking_id": parking.ID})
	return &parking, nil
}

// resolveDistance возвращает расстояние от объекта до парковки в км,
// если координаты заданы у обоих, иначе значение, переданное клиентом.
func resolveDistance(geo port.GeoCalculatorPort, property domain.Property, parking domain.BikeParking) *float64 {
	pLat, pLon, ok := property.Coordinates()
	if !ok {
		return parking.Distance
	}
	bLat, bLon, ok := parking.Coordinates()
	if !ok {
		return parking.Distance
	}
	d := geo.DistanceKm(pLat, pLon, bLat, bLon)
	return &d
}
