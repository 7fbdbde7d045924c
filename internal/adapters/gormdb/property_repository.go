package gormdb_adapter

import (
	"context"
	"errors"
	"fmt"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/domain"
	"property-search-service/internal/core/port"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PropertyRepository - реализация PropertyRepositoryPort поверх gorm.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) (*PropertyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm.DB cannot be nil")
	}
	return &PropertyRepository{db: db}, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("InternetProvider").
		Preload("BikeParkings", orderByID).
		Preload("Notifications", orderByID)
}

// List выбирает объекты по фильтрам (условия объединяются через AND), сортирует по id
// и применяет offset/limit.
func (r *PropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "List",
	})
	repoLogger.Debug("Listing properties.", nil)

	query := r.db.WithContext(ctx).Model(&propertyModel{})
	if filter.Station != nil {
		query = query.Where("station = ?", *filter.Station)
	}
	if filter.MinRent != nil {
		query = query.Where("rent >= ?", *filter.MinRent)
	}
	if filter.MaxRent != nil {
		query = query.Where("rent <= ?", *filter.MaxRent)
	}
	if filter.FloorPlan != nil {
		query = query.Where("floor_plan = ?", *filter.FloorPlan)
	}
	if filter.GeohashPrefix != nil {
		query = query.Where("geohash LIKE ?", *filter.GeohashPrefix+"%")
	}

	var models []propertyModel
	err := withRelations(query).
		Order("id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&models).Error
	if err != nil {
		repoLogger.Error("Failed to list properties", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]domain.Property, 0, len(models))
	for _, m := range models {
		properties = append(properties, toDomainProperty(m))
	}

	repoLogger.Debug("Properties listed.", port.Fields{"count": len(properties)})
	return properties, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	return r.get(ctx, r.db.WithContext(ctx), id, "GetByID")
}

func (r *PropertyRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Property, error) {
	return r.get(ctx, withRelations(r.db.WithContext(ctx)), id, "GetWithRelations")
}

func (r *PropertyRepository) get(ctx context.Context, db *gorm.DB, id int64, method string) (*domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      method,
		"property_id": id,
	})

	var m propertyModel
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			repoLogger.Debug("Property not found.", nil)
			return nil, domain.ErrPropertyNotFound
		}
		repoLogger.Error("Failed to get property", err, nil)
		return nil, fmt.Errorf("failed to get property %d: %w", id, err)
	}

	p := toDomainProperty(m)
	return &p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PropertyRepository",
		"method":    "Create",
	})

	m := toPropertyModel(*property)
	m.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	property.ID = m.ID
	repoLogger.Debug("Property inserted.", port.Fields{"property_id": m.ID})
	return nil
}

// Update перезаписывает все базовые поля объекта.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Update",
		"property_id": property.ID,
	})

	res := r.db.WithContext(ctx).
		Model(&propertyModel{}).
		Where("id = ?", property.ID).
		Updates(propertyUpdateColumns(*property))
	if res.Error != nil {
		repoLogger.Error("Failed to update property", res.Error, nil)
		return fmt.Errorf("failed to update property %d: %w", property.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}

	repoLogger.Debug("Property updated.", nil)
	return nil
}

// Delete удаляет объект. Зависимые записи удаляются явно в той же транзакции,
// ON DELETE CASCADE в схеме остается страховкой.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PropertyRepository",
		"method":      "Delete",
		"property_id": id,
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&propertyModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check property existence: %w", err)
		}
		if count == 0 {
			return domain.ErrPropertyNotFound
		}

		dependents := []struct {
			name  string
			model interface{}
		}{
			{"notifications", &notificationModel{}},
			{"bike_parkings", &bikeParkingModel{}},
			{"internet_providers", &internetProviderModel{}},
		}
		removed := port.Fields{}
		for _, d := range dependents {
			res := tx.Where("property_id = ?", id).Delete(d.model)
			if res.Error != nil {
				return fmt.Errorf("failed to delete %s: %w", d.name, res.Error)
			}
			removed[d.name] = res.RowsAffected
		}

		if err := tx.Delete(&propertyModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}

		repoLogger.Debug("Property and dependents deleted.", removed)
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			repoLogger.Error("Delete transaction failed", err, nil)
		}
		return err
	}
	return nil
}
