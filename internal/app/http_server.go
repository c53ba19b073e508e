package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
)

const (
	httpReadHeaderTimeout = 5 * time.Second
	httpShutdownTimeout   = 5 * time.Second
)

// newMetricsMux отдаёт метрики и пробы; /readyz зависит от критичных
// проверок, /livez только от живости процесса.
func newMetricsMux(h *healthcheck.Handler) *http.ServeMux {
	routes := map[string]http.Handler{
		"GET /metrics": promhttp.Handler(),
		"GET /healthz": h,
		"GET /livez":   http.HandlerFunc(healthcheck.LivenessHandler),
		"GET /readyz":  http.HandlerFunc(h.ReadinessHandler),
	}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.Handle(pattern, handler)
	}
	return mux
}

// startMetricsServer запускает HTTP-сервер метрик и проб; останавливается вместе с ctx.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, h *healthcheck.Handler) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMetricsMux(h),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}
	logger = logger.WithField("http_addr", addr)

	go func() {
		logger.WithField("paths", []string{"/metrics", "/healthz", "/livez", "/readyz"}).Info("ops http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("ops http server failed")
		}
	}()
	context.AfterFunc(ctx, func() { shutdownHTTP(srv, logger) })

	return srv
}

func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("ops http server shutdown")
	}
}
