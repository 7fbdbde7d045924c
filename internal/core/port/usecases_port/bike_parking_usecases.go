package usecases_port

import (
	"context"
	"property-search-service/internal/core/domain"
)

type ListBikeParkingsUseCasePort interface {
	Execute(ctx context.Context, propertyID int64) ([]domain.BikeParking, error)
}

type CreateBikeParkingUseCasePort interface {
	Execute(ctx context.Context, input domain.BikeParkingInput) (*domain.BikeParking, error)
}

type UpdateBikeParkingUseCasePort interface {
	Execute(ctx context.Context, id int64, input domain.BikeParkingInput) (*domain.BikeParking, error)
}

type DeleteBikeParkingUseCasePort interface {
	Execute(ctx context.Context, id int64) error
}
