package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewPlacementMetrics(t *testing.T) {
	metrics := NewPlacementMetrics()

	if metrics == nil {
		t.Fatal("NewPlacementMetrics should not return nil")
	}
	if metrics.placementsStarted == nil {
		t.Error("placementsStarted counter should not be nil")
	}
	if metrics.placementsCommitted == nil {
		t.Error("placementsCommitted counter should not be nil")
	}
	if metrics.placementsFailed == nil {
		t.Error("placementsFailed counter should not be nil")
	}
	if metrics.placementsRejected == nil {
		t.Error("placementsRejected counter vec should not be nil")
	}
	if metrics.placementDuration == nil {
		t.Error("placementDuration histogram should not be nil")
	}
	if metrics.outboxEvents == nil {
		t.Error("outboxEvents counter should not be nil")
	}
}

func TestNewPlacementMetrics_ReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newPlacementMetricsWithRegisterer(registry)
	second := newPlacementMetricsWithRegisterer(registry)

	first.RecordPlacementStarted()
	second.RecordPlacementStarted()

	if got := counterValue(t, first.placementsStarted); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestRecordPlacementOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := newPlacementMetricsWithRegisterer(registry)

	metrics.RecordPlacementStarted()
	metrics.RecordPlacementCommitted()
	metrics.RecordPlacementFailed()
	metrics.RecordPlacementRejected("unknown_shop")
	metrics.RecordPlacementRejected("unknown_shop")
	metrics.RecordPlacementDuration(25 * time.Millisecond)
	metrics.RecordOutboxEvent()

	if got := counterValue(t, metrics.placementsCommitted); got != 1 {
		t.Errorf("expected 1 committed placement, got %v", got)
	}
	if got := counterValue(t, metrics.placementsRejected.WithLabelValues("unknown_shop")); got != 2 {
		t.Errorf("expected 2 rejections for unknown_shop, got %v", got)
	}
	if got := counterValue(t, metrics.outboxEvents); got != 1 {
		t.Errorf("expected 1 outbox event, got %v", got)
	}
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
