package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		unique    bool
		retryable bool
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation}, unique: true},
		{name: "wrapped serialization failure", err: fmt.Errorf("update: %w", &pgconn.PgError{Code: pgSerializationFailure}), retryable: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgDeadlockDetected}, retryable: true},
		{name: "check violation", err: &pgconn.PgError{Code: pgCheckViolation}},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.unique {
				t.Fatalf("isUniqueViolation() = %v, want %v", got, tt.unique)
			}
			if got := isRetryable(tt.err); got != tt.retryable {
				t.Fatalf("isRetryable() = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.MaxAttempts < 2 {
		t.Fatalf("expected at least one retry, got MaxAttempts=%d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay <= 0 || cfg.MaxDelay < cfg.InitialDelay {
		t.Fatalf("invalid delays: %+v", cfg)
	}
	if cfg.BackoffFactor <= 1 {
		t.Fatalf("backoff factor should be > 1: %f", cfg.BackoffFactor)
	}
}

func TestSleepContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithOpTimeoutKeepsCallerDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ctx, release := withOpTimeout(parent)
	defer release()
	deadline, _ := ctx.Deadline()
	want, _ := parent.Deadline()
	if !deadline.Equal(want) {
		t.Fatalf("expected caller deadline to be kept")
	}

	bare, releaseBare := withOpTimeout(context.Background())
	defer releaseBare()
	if _, ok := bare.Deadline(); !ok {
		t.Fatal("expected default op timeout")
	}
}
