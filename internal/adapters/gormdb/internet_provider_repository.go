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

type InternetProviderRepository struct {
	db *gorm.DB
}

func NewInternetProviderRepository(db *gorm.DB) (*InternetProviderRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm.DB cannot be nil")
	}
	return &InternetProviderRepository{db: db}, nil
}

func (r *InternetProviderRepository) GetByPropertyID(ctx context.Context, propertyID int64) (*domain.InternetProvider, error) {
	return r.getBy(ctx, "property_id = ?", propertyID, "GetByPropertyID")
}

func (r *InternetProviderRepository) GetByID(ctx context.Context, id int64) (*domain.InternetProvider, error) {
	return r.getBy(ctx, "id = ?", id, "GetByID")
}

func (r *InternetProviderRepository) getBy(ctx context.Context, cond string, value int64, method string) (*domain.InternetProvider, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "InternetProviderRepository",
		"method":    method,
		"key":       value,
	})

	var m internetProviderModel
	if err := r.db.WithContext(ctx).Where(cond, value).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInternetProviderNotFound
		}
		repoLogger.Error("Failed to get internet provider", err, nil)
		return nil, fmt.Errorf("failed to get internet provider: %w", err)
	}

	ip := toDomainInternetProvider(m)
	return &ip, nil
}

// Upsert вставляет запись или, если для объекта она уже есть, перезаписывает ее поля.
// Уникальный индекс по property_id гарантирует одну запись на объект даже при гонке.
func (r *InternetProviderRepository) Upsert(ctx context.Context, provider *domain.InternetProvider) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "InternetProviderRepository",
		"method":      "Upsert",
		"property_id": provider.PropertyID,
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&propertyModel{}).Where("id = ?", provider.PropertyID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check property existence: %w", err)
		}
		if count == 0 {
			return domain.ErrPropertyNotFound
		}

		m := toInternetProviderModel(*provider)
		m.ID = 0
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "property_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"flets_plan", "au_hikari_plan", "nuro_plan", "jcom_plan", "checked_at"}),
		}).Create(&m).Error
		if err != nil {
			return fmt.Errorf("failed to upsert internet provider: %w", err)
		}

		// при конфликте драйвер может вернуть не тот id, перечитываем строку
		var stored internetProviderModel
		if err := tx.Where("property_id = ?", provider.PropertyID).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to read upserted internet provider: %w", err)
		}
		*provider = toDomainInternetProvider(stored)
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			repoLogger.Error("Upsert transaction failed", err, nil)
		}
		return err
	}

	repoLogger.Debug("Internet provider upserted.", port.Fields{"internet_provider_id": provider.ID})
	return nil
}

func (r *InternetProviderRepository) Update(ctx context.Context, provider *domain.InternetProvider) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":            "InternetProviderRepository",
		"method":               "Update",
		"internet_provider_id": provider.ID,
	})

	res := r.db.WithContext(ctx).
		Model(&internetProviderModel{}).
		Where("id = ?", provider.ID).
		Updates(internetProviderUpdateColumns(*provider))
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			repoLogger.Warn("Target property already has internet provider information", port.Fields{"property_id": provider.PropertyID})
			return domain.ErrInternetProviderExists
		}
		repoLogger.Error("Failed to update internet provider", res.Error, nil)
		return fmt.Errorf("failed to update internet provider %d: %w", provider.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInternetProviderNotFound
	}
	return nil
}

func (r *InternetProviderRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&internetProviderModel{}, id)
	if res.Error != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete internet provider", res.Error, port.Fields{
			"component":            "InternetProviderRepository",
			"internet_provider_id": id,
		})
		return fmt.Errorf("failed to delete internet provider %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInternetProviderNotFound
	}
	return nil
}
