package usecase

import (
	"context"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewListPropertiesUseCase(repo port.PropertyRepositoryPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{repo: repo}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListProperties",
		"skip":     filter.Skip,
		"limit":    filter.Limit,
	})
	ucLogger.Info("Use case started", nil)

	properties, err := uc.repo.List(ctx, filter)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(properties)})
	return properties, nil
}
