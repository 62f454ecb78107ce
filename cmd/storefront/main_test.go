package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetupLogger_RespectsEnvLevel(t *testing.T) {
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")
	setupLogger()
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %s", log.GetLevel())
	}

	t.Setenv("STOREFRONT_LOG_LEVEL", "not-a-level")
	setupLogger()
	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("expected fallback to info level, got %s", log.GetLevel())
	}
}
