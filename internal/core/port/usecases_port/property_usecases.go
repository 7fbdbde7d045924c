package usecases_port

import (
	"context"
	"property-search-service/internal/core/domain"
)

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
}

type GetPropertyUseCasePort interface {
	Execute(ctx context.Context, id int64) (*domain.Property, error)
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, input domain.PropertyInput) (*domain.Property, error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id int64, input domain.PropertyInput) (*domain.Property, error)
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
