package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// ListBikeParkingsUseCase не проверяет существование объекта: для неизвестного id
// возвращается пустой список.
type ListBikeParkingsUseCase struct {
	repo port.BikeParkingRepositoryPort
}

func NewListBikeParkingsUseCase(repo port.BikeParkingRepositoryPort) *ListBikeParkingsUseCase {
	return &ListBikeParkingsUseCase{repo: repo}
}

func (uc *ListBikeParkingsUseCase) Execute(ctx context.Context, propertyID int64) ([]domain.BikeParking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ListBikeParkings",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	parkings, err := uc.repo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(parkings)})
	return parkings, nil
}
