package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
)

type DeleteBikeParkingUseCase struct {
	repo port.BikeParkingRepositoryPort
}

func NewDeleteBikeParkingUseCase(repo port.BikeParkingRepositoryPort) *DeleteBikeParkingUseCase {
	return &DeleteBikeParkingUseCase{repo: repo}
}

func (uc *DeleteBikeParkingUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "DeleteBikeParking",
		"bike_parking_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, id); err != nil {
		logRepositoryError(ucLogger, err)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
