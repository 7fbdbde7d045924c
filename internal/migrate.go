package internal

import (
	"fmt"
	"io"

	gormdb_adapter "property-search-service/internal/adapters/gormdb"
	logger_adapter "property-search-service/internal/adapters/logger"
	"property-search-service/internal/configs"
	"property-search-service/internal/core/port"
	"property-search-service/pkg/database"
	"property-search-service/pkg/migrate"
)

// MigrationRunner дает доступ к миграциям схемы вне HTTP-сервера.
type MigrationRunner struct {
	*migrate.Migrator
	closeFn func() error
}

// NewMigrationRunner открывает БД по конфигурации сервиса. Логи пишутся в logOut,
// чтобы не смешиваться с таблицами, которые команды печатают в stdout.
func NewMigrationRunner(envPath string, logOut io.Writer) (*MigrationRunner, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer: logOut,
		Level:  parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON: appConfig.StdoutLogger.IsJSON,
	}).WithFields(port.Fields{"service_name": appConfig.AppName, "component": "migrate"})

	db, _, err := openDatabase(appConfig, baseLogger)
	if err != nil {
		return nil, err
	}

	return &MigrationRunner{
		Migrator: gormdb_adapter.NewMigrator(db),
		closeFn:  func() error { return database.Close(db) },
	}, nil
}

func (r *MigrationRunner) Close() error {
	return r.closeFn()
}
