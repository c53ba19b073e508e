package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

// runtimeDependencies — хранилище, выбранное конфигурацией.
type runtimeDependencies struct {
	tx              domain.TxManager
	repos           domain.Repositories
	idempotencyRepo domain.IdempotencyRepository
	storageChecker  healthcheck.Checker
	closeFn         func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			tx:              store,
			repos:           store.Repositories(),
			idempotencyRepo: memory.NewIdempotencyRepository(),
			storageChecker: healthcheck.NewCriticalChecker("storage", func(context.Context) error {
				return nil
			}),
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is required for postgres storage driver")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("init postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		version, applied, err := store.MigrationStatus(ctx)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("read migration status: %w", err)
		}
		logger.WithFields(log.Fields{
			"schema_version": version,
			"migrations":     applied,
		}).Info("using postgres storage")

		return &runtimeDependencies{
			tx:              postgres.NewTxManager(store, postgres.WithTxLogger(logger.WithField("component", "postgres-tx"))),
			repos:           store.Repositories(),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			storageChecker:  healthcheck.NewCriticalChecker("storage", store.Ping),
			closeFn:         store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// productCache — кеш карточек товаров и его проверка для /healthz.
type productCache struct {
	cache   cache.ProductCache
	checker healthcheck.Checker
	closeFn func() error
}

// initProductCache подключает Redis, если задан адрес. Недоступный Redis не
// мешает старту: сервис читает товары из хранилища, а /healthz показывает degraded.
func initProductCache(ctx context.Context, cfg Config, logger *log.Entry) productCache {
	if cfg.RedisAddr == "" {
		return productCache{cache: cache.Noop{}}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ping := func(ctx context.Context) error { return client.Ping(ctx).Err() }
	if err := ping(ctx); err != nil {
		logger.WithError(err).WithField("redis_addr", cfg.RedisAddr).Warn("redis is unreachable, product cache starts degraded")
	} else {
		logger.WithField("redis_addr", cfg.RedisAddr).Info("product cache enabled")
	}

	return productCache{
		cache:   cache.NewRedisProductCache(client, cfg.CacheTTL),
		checker: healthcheck.NewOptionalChecker("cache", ping),
		closeFn: client.Close,
	}
}
