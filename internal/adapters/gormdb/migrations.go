package gormdb_adapter

import (
	"property-search-service/pkg/migrate"

	"gorm.io/gorm"
)

// Migrations возвращает все миграции схемы в порядке версий.
func Migrations() []*migrate.Migration {
	return []*migrate.Migration{
		{
			Version: "20240601000001",
			Name:    "create_property_tables",
			Up: func(tx *gorm.DB) error {
				// порядок важен: внешние ключи ссылаются на properties
				return tx.Migrator().CreateTable(
					&propertyModel{},
					&internetProviderModel{},
					&bikeParkingModel{},
					&notificationModel{},
				)
			},
			Down: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&notificationModel{},
					&bikeParkingModel{},
					&internetProviderModel{},
					&propertyModel{},
				)
			},
		},
	}
}

// NewMigrator собирает мигратор со всеми миграциями сервиса.
func NewMigrator(db *gorm.DB) *migrate.Migrator {
	return migrate.NewMigrator(db, Migrations()...)
}
