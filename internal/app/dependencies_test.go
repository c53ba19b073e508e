package app

import (
	"context"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
)

func testLogger(name string) *log.Entry {
	return log.WithField("test", name)
}

func TestInitRuntimeDependencies_Memory(t *testing.T) {
	t.Parallel()

	deps, err := initRuntimeDependencies(context.Background(), Config{StorageDriver: StorageDriverMemory}, testLogger("memory-storage"))
	require.NoError(t, err)
	require.NotNil(t, deps.tx)
	require.NotNil(t, deps.repos.Products)
	require.NotNil(t, deps.repos.Orders)
	require.NotNil(t, deps.repos.Outbox)
	require.NotNil(t, deps.idempotencyRepo)
	require.Nil(t, deps.closeFn)
	require.Equal(t, healthcheck.StatusHealthy, deps.storageChecker.Check(context.Background()).Status)
}

func TestInitRuntimeDependencies_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "postgres requires dsn", cfg: Config{StorageDriver: StorageDriverPostgres}, wantErr: "postgres dsn is required"},
		{name: "unsupported driver", cfg: Config{StorageDriver: "sqlite"}, wantErr: "unsupported storage driver"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := initRuntimeDependencies(context.Background(), tt.cfg, testLogger(tt.name))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestInitRuntimeDependencies_PostgresSuccess(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("STOREFRONT_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("STOREFRONT_POSTGRES_TEST_DSN is not set")
	}

	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverPostgres
	cfg.PostgresDSN = dsn

	deps, err := initRuntimeDependencies(context.Background(), cfg, testLogger("postgres-init"))
	if err != nil {
		t.Skipf("postgres is not available for app integration test: %v", err)
	}
	t.Cleanup(func() { _ = deps.closeFn() })

	require.NotNil(t, deps.repos.Customers)
	require.NotNil(t, deps.idempotencyRepo)
	require.Equal(t, healthcheck.StatusHealthy, deps.storageChecker.Check(context.Background()).Status)
}

func TestInitProductCache(t *testing.T) {
	t.Run("disabled without address", func(t *testing.T) {
		c := initProductCache(context.Background(), DefaultConfig(), testLogger("cache-off"))
		require.IsType(t, cache.Noop{}, c.cache)
		require.Nil(t, c.checker)
		require.Nil(t, c.closeFn)
	})

	t.Run("unreachable redis degrades", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.RedisAddr = "127.0.0.1:1"

		c := initProductCache(context.Background(), cfg, testLogger("cache-down"))
		t.Cleanup(func() { closeProductCache(c, testLogger("cache-down")) })

		require.IsType(t, &cache.RedisProductCache{}, c.cache)
		check := c.checker.Check(context.Background())
		require.Equal(t, healthcheck.StatusDegraded, check.Status)
		require.False(t, check.Critical)
	})
}
