package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

// newGRPCServer собирает gRPC-сервер с метриками, health-сервисом и reflection.
func newGRPCServer(svc storefrontv1.StorefrontServiceServer, registerer prometheus.Registerer) (*grpc.Server, *health.Server) {
	grpcMetrics := metrics.NewGRPCServerMetrics(registerer)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(grpcMetrics.StreamServerInterceptor()),
	)

	storefrontv1.RegisterStorefrontServiceServer(server, svc)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(storefrontv1.StorefrontService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	// grpcurl и ghz находят методы через reflection.
	reflection.Register(server)
	grpcMetrics.InitializeMetrics(server)

	return server, healthServer
}
