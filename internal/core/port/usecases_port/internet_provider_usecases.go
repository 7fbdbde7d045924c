package usecases_port

import (
	"context"
	"property-search-service/internal/core/domain"
)

type GetInternetProviderUseCasePort interface {
	Execute(ctx context.Context, propertyID int64) (*domain.InternetProvider, error)
}

// UpsertInternetProviderUseCasePort создает запись или перезаписывает существующую для объекта
type UpsertInternetProviderUseCasePort interface {
	Execute(ctx context.Context, input domain.InternetProviderInput) (*domain.InternetProvider, error)
}

type UpdateInternetProviderUseCasePort interface {
	Execute(ctx context.Context, id int64, input domain.InternetProviderInput) (*domain.InternetProvider, error)
}

type DeleteInternetProviderUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
