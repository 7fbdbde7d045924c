package gormdb_adapter

import (
	"context"
	"errors"
	"fmt"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"

	"gorm.io/gorm"
)

type BikeParkingRepository struct {
	db *gorm.DB
}

func NewBikeParkingRepository(db *gorm.DB) (*BikeParkingRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm.DB cannot be nil")
	}
	return &BikeParkingRepository{db: db}, nil
}

func (r *BikeParkingRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "BikeParkingRepository",
		"method":    method,
	})
}

func (r *BikeParkingRepository) ListByPropertyID(ctx context.Context, propertyID int64) ([]domain.BikeParking, error) {
	var models []bikeParkingModel
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id ASC").Find(&models).Error; err != nil {
		r.logger(ctx, "ListByPropertyID").Error("Failed to list bike parkings", err, port.Fields{"property_id": propertyID})
		return nil, fmt.Errorf("failed to list bike parkings: %w", err)
	}

	parkings := make([]domain.BikeParking, 0, len(models))
	for _, m := range models {
		parkings = append(parkings, toDomainBikeParking(m))
	}
	return parkings, nil
}

func (r *BikeParkingRepository) GetByID(ctx context.Context, id int64) (*domain.BikeParking, error) {
	var m bikeParkingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBikeParkingNotFound
		}
		r.logger(ctx, "GetByID").Error("Failed to get bike parking", err, port.Fields{"bike_parking_id": id})
		return nil, fmt.Errorf("failed to get bike parking %d: %w", id, err)
	}
	b := toDomainBikeParking(m)
	return &b, nil
}

func (r *BikeParkingRepository) Create(ctx context.Context, parking *domain.BikeParking) error {
	m := toBikeParkingModel(*parking)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		// объект удален между проверкой в use case и вставкой
		if isForeignKeyViolation(err) {
			return domain.ErrPropertyNotFound
		}
		r.logger(ctx, "Create").Error("Failed to insert bike parking", err, port.Fields{"property_id": parking.PropertyID})
		return fmt.Errorf("failed to insert bike parking: %w", err)
	}
	parking.ID = m.ID
	return nil
}

func (r *BikeParkingRepository) Update(ctx context.Context, parking *domain.BikeParking) error {
	res := r.db.WithContext(ctx).
		Model(&bikeParkingModel{}).
		Where("id = ?", parking.ID).
		Updates(bikeParkingUpdateColumns(*parking))
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return domain.ErrPropertyNotFound
		}
		r.logger(ctx, "Update").Error("Failed to update bike parking", res.Error, port.Fields{"bike_parking_id": parking.ID})
		return fmt.Errorf("failed to update bike parking %d: %w", parking.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBikeParkingNotFound
	}
	return nil
}

func (r *BikeParkingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&bikeParkingModel{}, id)
	if res.Error != nil {
		r.logger(ctx, "Delete").Error("Failed to delete bike parking", res.Error, port.Fields{"bike_parking_id": id})
		return fmt.Errorf("failed to delete bike parking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBikeParkingNotFound
	}
	return nil
}
