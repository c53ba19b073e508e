package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestOutboxMetrics(t *testing.T) {
	m := NewOutboxMetricsWithRegisterer(prometheus.NewRegistry())

	m.Attempt(OutboxSent)
	m.Attempt(OutboxSent)
	m.Attempt(OutboxRetryError)
	if got := counterValue(t, m.attempts.WithLabelValues(OutboxSent)); got != 2 {
		t.Fatalf("sent = %v, want 2", got)
	}

	m.Backlog(3, 90*time.Second)
	if got := gaugeValue(t, m.pending); got != 3 {
		t.Fatalf("pending = %v, want 3", got)
	}
	if got := gaugeValue(t, m.oldestPending); got != 90 {
		t.Fatalf("oldest = %v, want 90", got)
	}

	m.Backlog(0, time.Hour)
	if got := gaugeValue(t, m.oldestPending); got != 0 {
		t.Fatalf("oldest for empty backlog = %v, want 0", got)
	}
}

func TestCleanupMetrics(t *testing.T) {
	m := NewCleanupMetricsWithRegisterer(prometheus.NewRegistry())

	m.Deleted(5)
	m.Deleted(0)
	m.Run(CleanupOK, 5)
	m.Run(CleanupError, 0)

	if got := counterValue(t, m.deleted); got != 5 {
		t.Fatalf("deleted = %v, want 5", got)
	}
	if got := gaugeValue(t, m.lastDeleted); got != 5 {
		t.Fatalf("last deleted = %v, want 5", got)
	}
	if got := counterValue(t, m.runs.WithLabelValues(CleanupError)); got != 1 {
		t.Fatalf("error runs = %v, want 1", got)
	}
}

func TestWorkerMetrics_ReuseRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewOutboxMetricsWithRegisterer(registry)
	second := NewOutboxMetricsWithRegisterer(registry)
	if first.pending != second.pending {
		t.Fatal("expected re-registration to reuse the existing gauge")
	}
	if NewCleanupMetrics() == nil || NewOutboxMetrics() == nil {
		t.Fatal("default registry constructors must succeed")
	}
}
