package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Поддерживаемые драйверы хранилища.
const (
	StorageDriverMemory = "memory"
	StorageDriverMongo  = "mongo"
)

// Config описывает настройки запуска витрины.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver string
	MongoURI      string
	MongoDB       string

	KafkaBrokers []string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:           ":8080",
		MetricsAddr:        ":9090",
		StorageDriver:      StorageDriverMemory,
		MongoURI:           "mongodb://localhost:27017",
		MongoDB:            "storefront",
		OutboxPollInterval: time.Second,
		OutboxBatchSize:    100,
		OutboxMaxAttempts:  3,
	}
}

// ConfigFromEnv читает конфигурацию из переменных окружения STOREFRONT_*,
// дополняя отсутствующие значения дефолтами.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("STOREFRONT_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("STOREFRONT_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("STOREFRONT_STORAGE_DRIVER"); v != "" {
		cfg.StorageDriver = v
	}
	if v := os.Getenv("STOREFRONT_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("STOREFRONT_MONGO_DB"); v != "" {
		cfg.MongoDB = v
	}
	if v := os.Getenv("STOREFRONT_KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = splitBrokers(v)
	}

	if v := os.Getenv("STOREFRONT_OUTBOX_POLL_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STOREFRONT_OUTBOX_POLL_INTERVAL: %w", err)
		}
		cfg.OutboxPollInterval = interval
	}
	if v := os.Getenv("STOREFRONT_OUTBOX_BATCH_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STOREFRONT_OUTBOX_BATCH_SIZE: %w", err)
		}
		cfg.OutboxBatchSize = size
	}
	if v := os.Getenv("STOREFRONT_OUTBOX_MAX_ATTEMPTS"); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STOREFRONT_OUTBOX_MAX_ATTEMPTS: %w", err)
		}
		cfg.OutboxMaxAttempts = attempts
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory, StorageDriverMongo:
	default:
		return fmt.Errorf("unknown storage driver %q (expected %q or %q)",
			c.StorageDriver, StorageDriverMemory, StorageDriverMongo)
	}

	if c.StorageDriver == StorageDriverMongo && c.MongoURI == "" {
		return fmt.Errorf("mongo storage driver requires STOREFRONT_MONGO_URI")
	}
	return nil
}

func splitBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}
