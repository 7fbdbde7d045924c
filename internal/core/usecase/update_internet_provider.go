package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

type UpdateInternetProviderUseCase struct {
	repo         port.InternetProviderRepositoryPort
	propertyRepo port.PropertyRepositoryPort
}

func NewUpdateInternetProviderUseCase(repo port.InternetProviderRepositoryPort, propertyRepo port.PropertyRepositoryPort) *UpdateInternetProviderUseCase {
	return &UpdateInternetProviderUseCase{repo: repo, propertyRepo: propertyRepo}
}

func (uc *UpdateInternetProviderUseCase) Execute(ctx context.Context, id int64, input domain.InternetProviderInput) (*domain.InternetProvider, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":             "UpdateInternetProvider",
		"internet_provider_id": id,
		"property_id":          input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	// property_id берется из тела запроса, запись можно перепривязать к другому объекту
	if _, err := uc.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	next := current.Replaced(input)
	if err := uc.repo.Update(ctx, &next); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &next, nil
}
