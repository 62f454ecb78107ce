package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitRuntimeDependencies_Memory(t *testing.T) {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)

	cfg := DefaultConfig()
	deps, err := initRuntimeDependencies(context.Background(), cfg, logger.WithField("component", "test"))
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if deps.Products == nil || deps.Users == nil || deps.Orders == nil || deps.Outbox == nil {
		t.Fatalf("expected all repositories initialized, got %+v", deps)
	}
	if deps.Store != nil {
		t.Fatalf("memory driver must not open a mongo store")
	}
	if err := deps.Close(context.Background()); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestInitRuntimeDependencies_UnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = "cassandra"

	if _, err := initRuntimeDependencies(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
