package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_Open(t *testing.T) {
	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.EnsureSchema(ctx))

	var name string
	require.NoError(t, store.DB().QueryRowContext(ctx, `SELECT current_setting('application_name')`).Scan(&name))
	require.Equal(t, applicationName, name)
}

func TestStore_NilIsSafe(t *testing.T) {
	var store *Store

	require.Error(t, store.Ping(context.Background()))
	require.NoError(t, store.Close())
}

func TestStore_OpenErrors(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "malformed dsn", dsn: "postgres://%zz"},
		{name: "unreachable", dsn: "postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := Open(ctx, tt.dsn, WithPingTimeout(200*time.Millisecond))
			require.Error(t, err)
		})
	}
}

func TestPoolOptions(t *testing.T) {
	cfg := DefaultPoolConfig()
	WithMaxOpenConns(4)(&cfg)
	WithMaxOpenConns(-1)(&cfg)
	WithPingTimeout(0)(&cfg)

	require.Equal(t, 4, cfg.MaxOpenConns)
	require.Equal(t, 4, cfg.MaxIdleConns)
	require.Equal(t, DefaultPoolConfig().PingTimeout, cfg.PingTimeout)
}
