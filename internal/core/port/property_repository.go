package port

import (
	"context"
	"property-search-service/internal/core/domain"
)

// PropertyRepositoryPort - хранилище объектов недвижимости.
type PropertyRepositoryPort interface {
	// List возвращает объекты со связанными записями, отсортированные по id.
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	// GetByID возвращает объект без связанных записей или domain.ErrPropertyNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	// GetWithRelations возвращает объект вместе с провайдером, парковками и уведомлениями.
	GetWithRelations(ctx context.Context, id int64) (*domain.Property, error)
	// Create сохраняет объект и проставляет ему ID.
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	// Delete удаляет объект и все зависимые записи в одной транзакции.
	Delete(ctx context.Context, id int64) error
}

// InternetProviderRepositoryPort - хранилище сведений об интернет-провайдерах.
type InternetProviderRepositoryPort interface {
	GetByPropertyID(ctx context.Context, propertyID int64) (*domain.InternetProvider, error)
	GetByID(ctx context.Context, id int64) (*domain.InternetProvider, error)
	// Upsert создает запись для объекта или перезаписывает существующую.
	// Возвращает domain.ErrPropertyNotFound, если объекта нет.
	Upsert(ctx context.Context, provider *domain.InternetProvider) error
	Update(ctx context.Context, provider *domain.InternetProvider) error
	Delete(ctx context.Context, id int64) error
}

// BikeParkingRepositoryPort - хранилище велопарковок.
type BikeParkingRepositoryPort interface {
	ListByPropertyID(ctx context.Context, propertyID int64) ([]domain.BikeParking, error)
	GetByID(ctx context.Context, id int64) (*domain.BikeParking, error)
	Create(ctx context.Context, parking *domain.BikeParking) error
	Update(ctx context.Context, parking *domain.BikeParking) error
	Delete(ctx context.Context, id int64) error
}

// NotificationRepositoryPort - хранилище истории уведомлений.
type NotificationRepositoryPort interface {
	ListByPropertyID(ctx context.Context, propertyID int64) ([]domain.Notification, error)
	// CreateAndMarkNotified сохраняет уведомление и переводит объект в статус NOTIFIED
	// в одной транзакции. Возвращает domain.ErrPropertyNotFound, если объекта нет.
	CreateAndMarkNotified(ctx context.Context, notification *domain.Notification) error
	Delete(ctx context.Context, id int64) error
}

// HealthCheckPort проверяет доступность хранилища.
type HealthCheckPort interface {
	Ping(ctx context.Context) error
}
