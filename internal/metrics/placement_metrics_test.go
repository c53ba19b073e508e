package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPlacementMetrics_Lifecycle(t *testing.T) {
	m := NewPlacementMetricsWithRegisterer(prometheus.NewRegistry())

	m.PlacementStarted()
	if got := gaugeValue(t, m.inFlight); got != 1 {
		t.Fatalf("in flight = %v, want 1", got)
	}

	m.PlacementFinished(ResultPlaced, 15*time.Millisecond)
	m.OrderPlaced(2, 5)
	m.PlacementStarted()
	m.PlacementFinished("insufficient_stock", time.Millisecond)

	if got := gaugeValue(t, m.inFlight); got != 0 {
		t.Fatalf("in flight = %v, want 0", got)
	}
	if got := counterValue(t, m.placements.WithLabelValues(ResultPlaced)); got != 1 {
		t.Fatalf("placed = %v, want 1", got)
	}
	if got := counterValue(t, m.placements.WithLabelValues("insufficient_stock")); got != 1 {
		t.Fatalf("insufficient_stock = %v, want 1", got)
	}
	if got := counterValue(t, m.unitsSold); got != 5 {
		t.Fatalf("units sold = %v, want 5", got)
	}
	if got := histogramCount(t, m.placementDuration); got != 2 {
		t.Fatalf("duration samples = %d, want 2", got)
	}
	if got := histogramCount(t, m.lineItems); got != 1 {
		t.Fatalf("line item samples = %d, want 1", got)
	}
}

func TestPlacementMetrics_CacheLookup(t *testing.T) {
	m := NewPlacementMetricsWithRegisterer(prometheus.NewRegistry())

	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheHit)
	m.CacheLookup(CacheMiss)

	if got := counterValue(t, m.cacheRequests.WithLabelValues(CacheHit)); got != 2 {
		t.Fatalf("hits = %v, want 2", got)
	}
	if got := counterValue(t, m.cacheRequests.WithLabelValues(CacheMiss)); got != 1 {
		t.Fatalf("misses = %v, want 1", got)
	}
}

func TestPlacementMetrics_ReRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewPlacementMetricsWithRegisterer(registry)
	second := NewPlacementMetricsWithRegisterer(registry)

	first.OrderPlaced(1, 3)
	if got := counterValue(t, second.unitsSold); got != 3 {
		t.Fatalf("expected shared collector, got %v", got)
	}
}

func TestNewPlacementMetrics_DefaultRegistry(t *testing.T) {
	if NewPlacementMetrics() == nil || NewPlacementMetrics() == nil {
		t.Fatal("NewPlacementMetrics should not return nil")
	}
}
