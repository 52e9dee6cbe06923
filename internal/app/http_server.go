package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const opsShutdownTimeout = 5 * time.Second

// newOpsRouter собирает служебные маршруты: метрики, health checks и версию сборки.
func newOpsRouter(healthHandler *healthcheck.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/healthz", healthHandler)
	r.Get("/livez", healthcheck.LivenessHandler)
	r.Get("/readyz", healthHandler.ReadinessHandler)
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintln(w, version.GetFullVersion())
	})
	return r
}

// opsServer — служебный HTTP-сервер. Адрес занимается синхронно, чтобы конфликт порта
// обнаруживался при старте.
type opsServer struct {
	srv    *http.Server
	lis    net.Listener
	done   chan struct{}
	logger *log.Entry
}

func startOpsServer(addr string, healthHandler *healthcheck.Handler, logger *log.Entry) (*opsServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen ops http: %w", err)
	}

	s := &opsServer{
		srv: &http.Server{
			Handler:           newOpsRouter(healthHandler),
			ReadHeaderTimeout: 5 * time.Second,
		},
		lis:    lis,
		done:   make(chan struct{}),
		logger: logger,
	}
	go func() {
		defer close(s.done)
		if err := s.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("ops http server failed")
		}
	}()

	logger.WithField("addr", lis.Addr().String()).Info("ops http: /metrics /healthz /livez /readyz /version")
	return s, nil
}

// Addr возвращает фактический адрес, в том числе для ":0".
func (s *opsServer) Addr() string {
	return s.lis.Addr().String()
}

// Shutdown дожидается завершения активных запросов, но не дольше opsShutdownTimeout.
func (s *opsServer) Shutdown() {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opsShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Warn("ops http shutdown")
	}
	<-s.done
}
