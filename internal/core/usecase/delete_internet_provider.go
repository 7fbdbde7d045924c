package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
)

type DeleteInternetProviderUseCase struct {
	repo port.InternetProviderRepositoryPort
}

func NewDeleteInternetProviderUseCase(repo port.InternetProviderRepositoryPort) *DeleteInternetProviderUseCase {
	return &DeleteInternetProviderUseCase{repo: repo}
}

func (uc *DeleteInternetProviderUseCase) Execute(ctx context.Context, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":             "DeleteInternetProvider",
		"internet_provider_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, id); err != nil {
		logRepositoryError(ucLogger, err)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
