package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/internal/api/handler"
	"github.com/vfg2006/funnel-sync-api/internal/api/handler/router"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/funnel-sync-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Credentials   credentialing.CredentialService
	Sync          syncing.SyncService
	Retention     handler.RetentionRunner
	Gatherer      prometheus.Gatherer
	Database      handler.Pinger
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("api: authenticator is required")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Metrics(services.Gatherer)...),
		router.WithRoutes(handler.Integrations(services.Credentials)...),
		router.WithRoutes(handler.Meta(services.Sync)...),
		router.WithRoutes(handler.GoogleAnalytics(services.Sync)...),
		router.WithRoutes(handler.Retention(services.Retention)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(middleware.ParseOrigins(cfg.Server.AllowedOrigins)),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("api: server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("api: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("api: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("api: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: error during shutdown")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("api: http server stopped")
	return nil
}
