package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewGRPCServerMetrics_ReusesRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := NewGRPCServerMetrics(registry)
	second := NewGRPCServerMetrics(registry)
	if first != second {
		t.Fatal("expected second call to return the registered collector")
	}
	if first.UnaryServerInterceptor() == nil {
		t.Fatal("expected unary interceptor")
	}
}
