package metrics

import (
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// NewGRPCServerMetrics создаёт метрики gRPC-сервера с гистограммой времени обработки.
// Повторный вызов с тем же registry возвращает уже зарегистрированные метрики.
func NewGRPCServerMetrics(registerer prometheus.Registerer) *promgrpc.ServerMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	serverMetrics := promgrpc.NewServerMetrics()
	serverMetrics.EnableHandlingTimeHistogram(
		promgrpc.WithHistogramBuckets([]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}),
	)
	return register(registerer, "grpc_server", serverMetrics)
}
