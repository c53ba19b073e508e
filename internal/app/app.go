// Package app собирает сервис витрины из компонентов по конфигурации.
package app

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/storefront/internal/service/grpc"
	"github.com/vladislavdragonenkov/storefront/internal/service/idempotency"
	"github.com/vladislavdragonenkov/storefront/internal/service/outbox"
	"github.com/vladislavdragonenkov/storefront/internal/service/placement"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const (
	grpcStopTimeout   = 5 * time.Second
	workerStopTimeout = 5 * time.Second
)

// Run поднимает gRPC, HTTP метрик и фоновые воркеры и блокируется до отмены ctx.
// При отмене возвращает ctx.Err().
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage(deps, logger)

	products := initProductCache(ctx, cfg, logger)
	defer closeProductCache(products, logger)

	bus, err := initEventBus(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Warn("failed to init event broker, continuing without event delivery")
		bus = eventBus{}
	}
	defer bus.close(logger)

	placementMetrics := metrics.NewPlacementMetrics()
	catalogSvc := catalog.New(deps.tx, deps.repos,
		catalog.WithLogger(logger.WithField("component", "catalog")),
		catalog.WithCache(products.cache),
		catalog.WithMetrics(placementMetrics),
	)
	placer := placement.New(deps.tx,
		placement.WithLogger(logger.WithField("component", "placement")),
		placement.WithMetrics(placementMetrics),
		placement.WithProductInvalidator(catalogSvc),
	)
	storefrontSvc := grpcsvc.NewStorefrontService(catalogSvc, placer, deps.repos.Orders,
		grpcsvc.WithIdempotency(deps.idempotencyRepo, cfg.IdempotencyTTL),
		grpcsvc.WithLogger(logger.WithField("layer", "grpc")),
	)

	grpcServer, healthServer := newGRPCServer(storefrontSvc, prometheus.DefaultRegisterer)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", deps.storageChecker)
	if products.checker != nil {
		healthHandler.RegisterChecker("cache", products.checker)
	}

	workersCtx, cancelWorkers := context.WithCancel(ctx)
	workersDone := startWorkers(workersCtx, cfg, deps, bus, logger)
	defer shutdownWorkers(cancelWorkers, workersDone, logger)

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	defer shutdownHTTP(metricsSrv, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		healthServer.Shutdown()
		stopGRPC(grpcServer, logger)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// startWorkers запускает outbox и очистку ключей идемпотентности.
// Возвращаемый канал закрывается, когда все воркеры завершились.
func startWorkers(ctx context.Context, cfg Config, deps *runtimeDependencies, bus eventBus, logger *log.Entry) <-chan struct{} {
	var g errgroup.Group

	if bus.publisher != nil {
		opts := []outbox.Option{
			outbox.WithLogger(logger.WithField("component", "outbox-worker")),
			outbox.WithPollInterval(cfg.OutboxPollInterval),
			outbox.WithBatchSize(cfg.OutboxBatchSize),
			outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		}
		if bus.dlq != nil {
			opts = append(opts, outbox.WithDLQPublisher(bus.dlq))
		}
		worker := outbox.NewWorker(deps.repos.Outbox, bus.publisher, opts...)
		g.Go(func() error {
			worker.Run(ctx)
			return nil
		})
	}

	cleanup := idempotency.NewCleanupWorker(deps.idempotencyRepo,
		idempotency.WithLogger(logger.WithField("component", "idempotency-cleanup-worker")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	g.Go(func() error {
		cleanup.Run(ctx)
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()
	return done
}

func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(grpcStopTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

func shutdownWorkers(cancel context.CancelFunc, done <-chan struct{}, logger *log.Entry) {
	if cancel != nil {
		cancel()
	}
	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(workerStopTimeout):
		logger.Warn("background workers did not stop in time")
	}
}

func closeStorage(deps *runtimeDependencies, logger *log.Entry) {
	if deps == nil || deps.closeFn == nil {
		return
	}
	if err := deps.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}

func closeProductCache(c productCache, logger *log.Entry) {
	if c.closeFn == nil {
		return
	}
	if err := c.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close product cache")
	}
}
