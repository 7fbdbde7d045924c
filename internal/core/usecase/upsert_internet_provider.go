package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

// UpsertInternetProviderUseCase создает запись о провайдерах для объекта.
// Если запись для объекта уже есть, она перезаписывается, дубль не появляется.
type UpsertInternetProviderUseCase struct {
	repo port.InternetProviderRepositoryPort
}

func NewUpsertInternetProviderUseCase(repo port.InternetProviderRepositoryPort) *UpsertInternetProviderUseCase {
	return &UpsertInternetProviderUseCase{repo: repo}
}

func (uc *UpsertInternetProviderUseCase) Execute(ctx context.Context, input domain.InternetProviderInput) (*domain.InternetProvider, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpsertInternetProvider",
		"property_id": input.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	provider := domain.InternetProvider{}.Replaced(input)
	if err := uc.repo.Upsert(ctx, &provider); err != nil {
		logRepositoryError(ucLogger, err)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"internet_provider_id": provider.ID})
	return &provider, nil
}
