package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// RetryConfig задаёт повторы транзакции при конфликтах сериализации и deadlock.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  20 * time.Millisecond,
		MaxDelay:      500 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

// TxManager выполняет функцию в транзакции READ COMMITTED.
// Строки товаров блокируются через FOR UPDATE, списание условное.
type TxManager struct {
	db     *sql.DB
	retry  RetryConfig
	logger *log.Entry
	// sleep подменяется в тестах.
	sleep func(ctx context.Context, d time.Duration) error
}

// TxOption настраивает TxManager.
type TxOption func(*TxManager)

// WithRetryConfig задаёт политику повторов.
func WithRetryConfig(cfg RetryConfig) TxOption {
	return func(m *TxManager) {
		if cfg.MaxAttempts > 0 {
			m.retry = cfg
		}
	}
}

// WithTxLogger задаёт логгер.
func WithTxLogger(logger *log.Entry) TxOption {
	return func(m *TxManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewTxManager создаёт менеджер транзакций поверх store.
func NewTxManager(store *Store, opts ...TxOption) *TxManager {
	m := &TxManager{
		db:     store.DB(),
		retry:  DefaultRetryConfig(),
		logger: log.NewEntry(log.StandardLogger()).WithField("component", "postgres-tx"),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithinTx выполняет fn в транзакции. Ошибка fn откатывает транзакцию;
// конфликты сериализации и deadlock повторяются с экспоненциальной задержкой.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) error {
	delay := m.retry.InitialDelay
	var err error

	for attempt := 1; attempt <= m.retry.MaxAttempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == m.retry.MaxAttempts {
			break
		}

		m.logger.WithFields(log.Fields{
			"attempt": attempt,
			"delay":   delay,
			"error":   err,
		}).Warn("transaction conflict, retrying")

		if sleepErr := m.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
		delay = time.Duration(float64(delay) * m.retry.BackoffFactor)
		if delay > m.retry.MaxDelay {
			delay = m.retry.MaxDelay
		}
	}

	return fmt.Errorf("transaction failed after %d attempts: %w", m.retry.MaxAttempts, err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context, repos domain.Repositories) error) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, repositoriesFor(tx, nil)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Repositories возвращает репозитории, работающие вне явной транзакции.
func (s *Store) Repositories() domain.Repositories {
	return repositoriesFor(s.db, s.db)
}

// db передаётся только вне транзакции: тогда списание открывает собственную.
func repositoriesFor(q querier, db *sql.DB) domain.Repositories {
	return domain.Repositories{
		Customers: &customerRepository{q: q},
		Products:  &productRepository{q: q, db: db},
		Orders:    &orderRepository{q: q, db: db},
		Movements: &stockMovementRepository{q: q},
		Outbox:    &outboxRepository{q: q},
	}
}

// withLocalTx выполняет fn атомарно: вне транзакции открывает собственную,
// внутри транзакции вызывающего использует её.
func withLocalTx(ctx context.Context, q querier, db *sql.DB, fn func(q querier) error) (err error) {
	if db == nil {
		return fn(q)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

func isRetryable(err error) bool {
	switch pgErrorCode(err) {
	case pgSerializationFailure, pgDeadlockDetected:
		return true
	default:
		return false
	}
}

var _ domain.TxManager = (*TxManager)(nil)
