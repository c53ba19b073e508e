package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func fail(context.Context) error { return errors.New("connection refused") }

func TestHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		checkers   map[string]*FuncChecker
		wantCode   int
		wantStatus Status
	}{
		{
			name:       "no checks",
			wantCode:   http.StatusOK,
			wantStatus: StatusHealthy,
		},
		{
			name:       "all healthy",
			checkers:   map[string]*FuncChecker{"storage": NewCriticalChecker("storage", ok), "cache": NewOptionalChecker("cache", ok)},
			wantCode:   http.StatusOK,
			wantStatus: StatusHealthy,
		},
		{
			name:       "optional down is degraded",
			checkers:   map[string]*FuncChecker{"storage": NewCriticalChecker("storage", ok), "cache": NewOptionalChecker("cache", fail)},
			wantCode:   http.StatusOK,
			wantStatus: StatusDegraded,
		},
		{
			name:       "critical down is unhealthy",
			checkers:   map[string]*FuncChecker{"storage": NewCriticalChecker("storage", fail), "cache": NewOptionalChecker("cache", fail)},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler("v1.0.0")
			for name, checker := range tt.checkers {
				handler.RegisterChecker(name, checker)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			require.Equal(t, tt.wantStatus, response.Status)
			require.Equal(t, "v1.0.0", response.Version)
			require.Len(t, response.Checks, len(tt.checkers))
		})
	}
}

func TestHandler_CheckMessageAndTimeout(t *testing.T) {
	handler := NewHandler("dev", WithCheckTimeout(10*time.Millisecond))
	handler.RegisterChecker("storage", NewCriticalChecker("storage", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	response := handler.Evaluate(context.Background())
	require.Equal(t, StatusUnhealthy, response.Status)
	check := response.Checks["storage"]
	require.True(t, check.Critical)
	require.Equal(t, context.DeadlineExceeded.Error(), check.Message)
}

func TestReadinessHandler(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("cache", NewOptionalChecker("cache", fail))

	w := httptest.NewRecorder()
	handler.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ready", w.Body.String())

	handler.RegisterChecker("storage", NewCriticalChecker("storage", fail))
	w = httptest.NewRecorder()
	handler.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "not ready", w.Body.String())
}

func TestLivenessHandler(t *testing.T) {
	w := httptest.NewRecorder()
	LivenessHandler(w, httptest.NewRequest(http.MethodGet, "/livez", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}
