package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	geo_adapter "property-search-service/internal/adapters/geo"
	gormdb_adapter "property-search-service/internal/adapters/gormdb"
	logger_adapter "property-search-service/internal/adapters/logger"
	rabbitmq_adapter "property-search-service/internal/adapters/rabbitmq"
	"property-search-service/internal/adapters/rest"
	"property-search-service/internal/configs"
	"property-search-service/internal/constants"
	"property-search-service/internal/core/port"
	"property-search-service/internal/core/usecase"
	"property-search-service/pkg/database"
	fluentlogger "property-search-service/pkg/fluent_logger"
	"property-search-service/pkg/rabbitmq/rabbitmq_common"
	"property-search-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	shutdownTimeout    = 10 * time.Second
	slowQueryThreshold = 200 * time.Millisecond
)

type App struct {
	config    *configs.AppConfig
	db        *gorm.DB
	apiServer *rest.Server

	connManager *rabbitmq_common.ConnectionManager
	producer    *rabbitmq_producer.Publisher

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp собирает все зависимости сервиса. envPath может быть пустым.
func NewApp(envPath string) (*App, error) {
	appConfig, err := configs.LoadConfig(envPath)
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	baseLogger, fluentClient, err := newLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{"fluent_enabled": appConfig.FluentBit.Enabled})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	// --- 2. БАЗА ДАННЫХ ---
	db, driver, err := openDatabase(appConfig, baseLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", err, nil)
		application.closeResources()
		return nil, err
	}
	application.db = db
	appLogger.Info("Successfully connected to database", port.Fields{"driver": string(driver)})

	if appConfig.Database.AutoMigrate {
		applied, err := gormdb_adapter.NewMigrator(db).Up()
		if err != nil {
			appLogger.Error("Failed to apply migrations", err, nil)
			application.closeResources()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		appLogger.Info("Database schema is up to date", port.Fields{"applied_migrations": len(applied)})
	}

	propertyRepo, err := gormdb_adapter.NewPropertyRepository(db)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	providerRepo, err := gormdb_adapter.NewInternetProviderRepository(db)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create internet provider repository: %w", err)
	}
	parkingRepo, err := gormdb_adapter.NewBikeParkingRepository(db)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create bike parking repository: %w", err)
	}
	notificationRepo, err := gormdb_adapter.NewNotificationRepository(db)
	if err != nil {
		application.closeResources()
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}
	appLogger.Info("All persistence adapters initialized.", nil)

	// --- 3. ПУБЛИКАЦИЯ СОБЫТИЙ ---
	// publisher остается nil-интерфейсом, если RabbitMQ не настроен
	var publisher port.NotificationEventPublisherPort
	if appConfig.RabbitMQ.Enabled() {
		notifiedPublisher, err := application.initEventPublisher(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			application.closeResources()
			return nil, err
		}
		publisher = notifiedPublisher
		appLogger.Info("RabbitMQ publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	} else {
		appLogger.Info("RABBITMQ_URL is not set, event publishing is disabled", nil)
	}

	// --- 4. USE CASES ---
	geo := geo_adapter.NewCalculator(geo_adapter.DefaultGeohashPrecision)

	handlers := rest.Handlers{
		Properties: rest.NewPropertyHandler(
			usecase.NewListPropertiesUseCase(propertyRepo),
			usecase.NewGetPropertyUseCase(propertyRepo),
			usecase.NewCreatePropertyUseCase(propertyRepo, geo),
			usecase.NewUpdatePropertyUseCase(propertyRepo, geo),
			usecase.NewDeletePropertyUseCase(propertyRepo),
		),
		InternetProviders: rest.NewInternetProviderHandler(
			usecase.NewGetInternetProviderUseCase(providerRepo),
			usecase.NewUpsertInternetProviderUseCase(providerRepo),
			usecase.NewUpdateInternetProviderUseCase(providerRepo, propertyRepo),
			usecase.NewDeleteInternetProviderUseCase(providerRepo),
		),
		BikeParkings: rest.NewBikeParkingHandler(
			usecase.NewListBikeParkingsUseCase(parkingRepo),
			usecase.NewCreateBikeParkingUseCase(parkingRepo, propertyRepo, geo),
			usecase.NewUpdateBikeParkingUseCase(parkingRepo, propertyRepo, geo),
			usecase.NewDeleteBikeParkingUseCase(parkingRepo),
		),
		Notifications: rest.NewNotificationHandler(
			usecase.NewListNotificationsUseCase(notificationRepo),
			usecase.NewCreateNotificationUseCase(notificationRepo, publisher),
			usecase.NewDeleteNotificationUseCase(notificationRepo),
		),
		System: rest.NewSystemHandler(gormdb_adapter.NewHealthChecker(db)),
	}

	// --- 5. REST API ---
	router := rest.NewRouter(handlers, appConfig.Rest.CORSAllowedOrigins, baseLogger)
	application.apiServer = rest.NewServer(appConfig.Rest.PORT, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return application, nil
}

func (a *App) initEventPublisher(baseLogger port.LoggerPort) (*rabbitmq_adapter.PropertyNotifiedPublisher, error) {
	cfg := a.config.RabbitMQ
	pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

	connManager, err := rabbitmq_common.GetManager(cfg.URL, pkgLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	a.connManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: cfg.URL},
		ExchangeName:             cfg.Exchange,
		ExchangeType:             constants.ExchangeTypePropertyEvents,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   pkgLogger,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ producer: %w", err)
	}
	a.producer = producer

	notifiedPublisher, err := rabbitmq_adapter.NewPropertyNotifiedPublisher(producer, cfg.NotifiedRoutingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create property notified publisher: %w", err)
	}
	return notifiedPublisher, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или ошибки сервера.
func (a *App) Run() error {
	defer a.closeResources()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// closeResources освобождает все, что успело открыться. Вызывается и при ошибке в NewApp.
func (a *App) closeResources() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ producer", err, nil)
		}
		a.producer = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.connManager = nil
	}

	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.logger.Error("Error closing database", err, nil)
		} else {
			a.logger.Info("Database connection closed.", nil)
		}
		a.db = nil
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}

func newLogger(appConfig *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	return multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName}), fluentClient, nil
}

func openDatabase(appConfig *configs.AppConfig, baseLogger port.LoggerPort) (*gorm.DB, database.Driver, error) {
	gormLogger := gormdb_adapter.NewGormLoggerBridge(
		baseLogger.WithFields(port.Fields{"component": "gorm"}),
		gormLogLevel(appConfig.StdoutLogger.Level),
		slowQueryThreshold,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, driver, err := database.NewClient(ctx, database.Config{
		DatabaseURL: appConfig.Database.URL,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, driver, nil
}

// SQL-запросы пишутся в лог только на уровне debug
func gormLogLevel(levelStr string) gormlogger.LogLevel {
	if strings.EqualFold(levelStr, "debug") {
		return gormlogger.Info
	}
	return gormlogger.Warn
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
