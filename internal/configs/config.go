package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	URL         string
	AutoMigrate bool
}

type RESTconfig struct {
	PORT               string
	CORSAllowedOrigins []string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// RabbitMQConfig - публикация событий. Пустой URL отключает публикацию.
type RabbitMQConfig struct {
	URL                string
	Exchange           string
	NotifiedRoutingKey string
}

func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	RabbitMQ     RabbitMQConfig
}

const (
	defaultAppName     = "property-search-service"
	defaultPort        = "8000"
	defaultDatabaseURL = "sqlite:///./property_search.db"
)

// LoadConfig читает конфигурацию из переменных окружения. Если передан путь
// к .env или в рабочем каталоге есть .env, переменные из него загружаются заранее.
// Отсутствие файла не ошибка.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 && envPath[0] != "" {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found (path: %v), using process environment.\n", envPath)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", defaultAppName)
	if cfg.AppName == "" {
		cfg.AppName = defaultAppName
	}

	cfg.Database.URL = getEnvAsString("DATABASE_URL", defaultDatabaseURL)
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable must not be empty")
	}
	cfg.Database.AutoMigrate = getEnvAsBool("DB_AUTO_MIGRATE", true)

	cfg.Rest.PORT = getEnvAsString("PORT", defaultPort)
	if _, err := strconv.Atoi(cfg.Rest.PORT); err != nil {
		return nil, fmt.Errorf("PORT must be a number, got %q", cfg.Rest.PORT)
	}
	cfg.Rest.CORSAllowedOrigins = splitList(getEnvAsString("CORS_ALLOWED_ORIGINS", "*"))

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.RabbitMQ.URL = strings.TrimSpace(os.Getenv("RABBITMQ_URL"))
	cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", "property_events")
	cfg.RabbitMQ.NotifiedRoutingKey = getEnvAsString("RABBITMQ_NOTIFIED_ROUTING_KEY", "property.notified")
	if cfg.RabbitMQ.Enabled() && cfg.RabbitMQ.NotifiedRoutingKey == "" {
		return nil, fmt.Errorf("RABBITMQ_NOTIFIED_ROUTING_KEY must not be empty when RABBITMQ_URL is set")
	}

	return cfg, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
