package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

type GetInternetProviderUseCase struct {
	repo port.InternetProviderRepositoryPort
}

func NewGetInternetProviderUseCase(repo port.InternetProviderRepositoryPort) *GetInternetProviderUseCase {
	return &GetInternetProviderUseCase{repo: repo}
}

func (uc *GetInternetProviderUseCase) Execute(ctx context.Context, propertyID int64) (*domain.InternetProvider, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetInternetProvider",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	provider, err := uc.repo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"internet_provider_id": provider.ID})
	return provider, nil
}
