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

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) (*NotificationRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm.DB cannot be nil")
	}
	return &NotificationRepository{db: db}, nil
}

func (r *NotificationRepository) ListByPropertyID(ctx context.Context, propertyID int64) ([]domain.Notification, error) {
	var models []notificationModel
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id ASC").Find(&models).Error; err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list notifications", err, port.Fields{
			"component":   "NotificationRepository",
			"property_id": propertyID,
		})
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		notifications = append(notifications, toDomainNotification(m))
	}
	return notifications, nil
}

// CreateAndMarkNotified вставляет уведомление и ставит объекту статус NOTIFIED.
// Обе записи фиксируются одной транзакцией.
func (r *NotificationRepository) CreateAndMarkNotified(ctx context.Context, notification *domain.Notification) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "NotificationRepository",
		"method":      "CreateAndMarkNotified",
		"property_id": notification.PropertyID,
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property propertyModel
		if err := tx.Select("id", "updated_at").Where("id = ?", notification.PropertyID).First(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPropertyNotFound
			}
			return fmt.Errorf("failed to get property: %w", err)
		}

		m := toNotificationModel(*notification)
		m.ID = 0
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}

		updatedAt := notification.CreatedAt
		if updatedAt.Before(property.UpdatedAt) {
			updatedAt = property.UpdatedAt
		}
		res := tx.Model(&propertyModel{}).Where("id = ?", notification.PropertyID).Updates(map[string]interface{}{
			"status":     domain.StatusNotified,
			"updated_at": updatedAt,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update property status: %w", res.Error)
		}

		notification.ID = m.ID
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			repoLogger.Error("Create notification transaction failed", err, nil)
		}
		return err
	}

	repoLogger.Debug("Notification inserted and property marked as notified.", port.Fields{"notification_id": notification.ID})
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&notificationModel{}, id)
	if res.Error != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to delete notification", res.Error, port.Fields{
			"component":       "NotificationRepository",
			"notification_id": id,
		})
		return fmt.Errorf("failed to delete notification %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
