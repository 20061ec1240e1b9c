package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-sync-api/infrastructure/cache"
	"github.com/vfg2006/funnel-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/google/gaclient"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta"
	"github.com/vfg2006/funnel-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/funnel-sync-api/infrastructure/repository"
	"github.com/vfg2006/funnel-sync-api/internal/api"
	"github.com/vfg2006/funnel-sync-api/internal/config"
	"github.com/vfg2006/funnel-sync-api/internal/domain"
	"github.com/vfg2006/funnel-sync-api/internal/metrics"
	"github.com/vfg2006/funnel-sync-api/internal/scheduler"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/funnel-sync-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("main: invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("main: failed to run migrations")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	store := cacheStore(ctx, cfg.Redis)

	upserter := repository.NewUpserter(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn, upserter)
	metaRepo := repository.NewMetaEntityRepository(pgConn, upserter)
	analyticsRepo := repository.NewAnalyticsEntityRepository(pgConn, upserter)

	metaIntegrator := meta.New(cfg.Meta, metaclient.NewClient(cfg.Meta))
	googleIntegrator := google.New(gaclient.NewClient(cfg.Google))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.WithError(err).Fatal("main: failed to create authenticator")
	}

	credentials := credentialing.NewService(
		store,
		credentialRepo,
		map[domain.Platform]credentialing.OAuthClient{
			domain.PlatformMeta:            metaIntegrator,
			domain.PlatformGoogleAnalytics: googleIntegrator,
		},
		recorder,
		credentialing.Options{
			TTLCap:       config.Seconds(cfg.Cache.CredentialTTLCapSeconds),
			SingleFlight: cfg.Sync.SingleFlightRefresh,
		},
	)

	syncService := syncing.NewService(
		credentials,
		metaIntegrator,
		googleIntegrator,
		metaRepo,
		analyticsRepo,
		store,
		recorder,
		syncTTLs(cfg.Cache),
	)

	retention := scheduler.NewRetentionService(metaRepo, analyticsRepo, recorder, cfg.Retention)
	if err := retention.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: failed to start retention scheduler")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Credentials:   credentials,
		Sync:          syncService,
		Retention:     retention,
		Gatherer:      registry,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("main: failed to connect to postgres")
	}

	logrus.Info("main: postgres connection established")
	return conn
}

// cacheStore usa o Redis quando configurado e cai para memória em desenvolvimento
func cacheStore(ctx context.Context, cfg config.Redis) cache.Store {
	if cfg.Addr == "" {
		logrus.Warn("main: REDIS_ADDR empty, using in-memory cache")
		return cache.NewMemoryStore()
	}

	client, err := cache.NewRedisClient(ctx, cache.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logrus.WithError(err).Fatal("main: failed to connect to redis")
	}

	return cache.NewRedisStore(client)
}

func syncTTLs(cfg config.Cache) syncing.TTLs {
	ttls := syncing.DefaultTTLs()

	overrides := []struct {
		target *time.Duration
		value  int
	}{
		{&ttls.AdAccounts, cfg.AdAccountsTTLSeconds},
		{&ttls.Campaigns, cfg.CampaignsTTLSeconds},
		{&ttls.AdSets, cfg.AdSetsTTLSeconds},
		{&ttls.Ads, cfg.AdsTTLSeconds},
		{&ttls.CampaignInsights, cfg.InsightsTTLSeconds},
		{&ttls.AnalyticsAccounts, cfg.GoogleAccountsTTLSeconds},
		{&ttls.AnalyticsProperties, cfg.PropertiesTTLSeconds},
		{&ttls.AnalyticsReport, cfg.ReportTTLSeconds},
	}
	for _, o := range overrides {
		if o.value > 0 {
			*o.target = config.Seconds(o.value)
		}
	}

	return ttls
}
