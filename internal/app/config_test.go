package app

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("expected memory driver by default, got %s", cfg.StorageDriver)
	}
	if cfg.HTTPAddr == "" || cfg.MetricsAddr == "" {
		t.Fatalf("expected default addresses, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must be valid, got %v", err)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_ADDR", ":9191")
	t.Setenv("STOREFRONT_STORAGE_DRIVER", StorageDriverMongo)
	t.Setenv("STOREFRONT_MONGO_URI", "mongodb://db:27017")
	t.Setenv("STOREFRONT_MONGO_DB", "shop")
	t.Setenv("STOREFRONT_KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("STOREFRONT_OUTBOX_POLL_INTERVAL", "250ms")
	t.Setenv("STOREFRONT_OUTBOX_BATCH_SIZE", "20")
	t.Setenv("STOREFRONT_OUTBOX_MAX_ATTEMPTS", "5")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config from env failed: %v", err)
	}

	if cfg.HTTPAddr != ":9191" {
		t.Fatalf("expected :9191, got %s", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageDriverMongo || cfg.MongoDB != "shop" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "broker-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.OutboxPollInterval != 250*time.Millisecond {
		t.Fatalf("unexpected poll interval: %v", cfg.OutboxPollInterval)
	}
	if cfg.OutboxBatchSize != 20 || cfg.OutboxMaxAttempts != 5 {
		t.Fatalf("unexpected outbox knobs: %+v", cfg)
	}
}

func TestConfigFromEnv_InvalidDriver(t *testing.T) {
	t.Setenv("STOREFRONT_STORAGE_DRIVER", "cassandra")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestConfigFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("STOREFRONT_OUTBOX_POLL_INTERVAL", "often")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatalf("expected error for invalid poll interval")
	}
}

func TestConfigValidate_MongoRequiresURI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverMongo
	cfg.MongoURI = ""

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error when mongo uri is empty")
	}
}
