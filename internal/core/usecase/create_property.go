package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
	"time"
)

type CreatePropertyUseCase struct {
	repo port.PropertyRepositoryPort
	geo  port.GeoCalculatorPort
}

func NewCreatePropertyUseCase(repo port.PropertyRepositoryPort, geo port.GeoCalculatorPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo, geo: geo}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input domain.PropertyInput) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CreateProperty"})
	ucLogger.Info("Use case started", nil)

	property := domain.NewProperty(input, time.Now().UTC())
	property.Geohash = geohashFor(uc.geo, property)

	if err := uc.repo.Create(ctx, &property); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID})
	return &property, nil
}

func geohashFor(geo port.GeoCalculatorPort, p domain.Property) string {
	lat, lon, ok := p.Coordinates()
	if !ok {
		return ""
	}
	return geo.Geohash(lat, lon)
}
