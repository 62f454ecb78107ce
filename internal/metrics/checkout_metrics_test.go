package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewCheckoutMetrics_RegistersCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := newCheckoutMetricsWithRegisterer(registry)
	if m == nil {
		t.Fatalf("expected metrics instance")
	}

	m.RecordCheckoutStarted()
	m.RecordCheckoutCompleted()
	m.RecordCheckoutFailed()
	m.RecordDroppedLines(2)
	m.RecordCartClearFailure()
	m.RecordCheckoutDuration(120 * time.Millisecond)
	m.RecordCheckoutFinished()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatalf("expected registered metric families")
	}

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	for _, want := range []string{
		"storefront_checkout_started_total",
		"storefront_checkout_completed_total",
		"storefront_checkout_dropped_lines_total",
		"storefront_checkout_cart_clear_failures_total",
		"storefront_checkout_duration_seconds",
		"storefront_active_checkouts",
	} {
		if !names[want] {
			t.Fatalf("expected metric %s to be registered", want)
		}
	}
}

func TestNewCheckoutMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newCheckoutMetricsWithRegisterer(registry)
	second := newCheckoutMetricsWithRegisterer(registry)

	first.RecordCheckoutStarted()
	second.RecordCheckoutStarted()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	for _, family := range families {
		if family.GetName() != "storefront_checkout_started_total" {
			continue
		}
		if got := family.GetMetric()[0].GetCounter().GetValue(); got != 2 {
			t.Fatalf("expected shared counter value 2, got %v", got)
		}
		return
	}
	t.Fatalf("storefront_checkout_started_total not found")
}
