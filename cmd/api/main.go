package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magieskin/storefront-backend/api/controllers"
	"github.com/magieskin/storefront-backend/api/middleware"
	"github.com/magieskin/storefront-backend/api/routes"
	"github.com/magieskin/storefront-backend/internal/chat"
	"github.com/magieskin/storefront-backend/internal/notifications"
	"github.com/magieskin/storefront-backend/internal/orders"
	"github.com/magieskin/storefront-backend/pkg/config"
	"github.com/magieskin/storefront-backend/pkg/db"
	"github.com/magieskin/storefront-backend/pkg/env"
	"github.com/magieskin/storefront-backend/pkg/logger"
	"github.com/magieskin/storefront-backend/pkg/metrics"
	"github.com/magieskin/storefront-backend/pkg/migrate"
	"github.com/magieskin/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// The hosted database is optional: without a DSN the API runs on the
	// local fallback store alone (dev mode only for writes).
	var dbClient *db.Client
	if cfg.DB.Configured() {
		dbClient, err = db.New(context.Background(), cfg.DB, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()

		if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
			logg.Error(context.Background(), "failed to run dev migrations", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "hosted database not configured, orders use the local fallback")
	}

	fallback, err := orders.NewFallbackStore(cfg.Fallback.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to open fallback store", err)
		os.Exit(1)
	}
	defer func() {
		if err := fallback.Close(); err != nil {
			logg.Error(context.Background(), "error closing fallback store", err)
		}
	}()

	var rateLimiter middleware.CounterStore = middleware.NewMemoryCounter()
	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		rateLimiter = redisClient
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	orderMetrics := metrics.NewOrderMetrics(registry)

	var primary orders.Store
	if dbClient != nil {
		primary = orders.NewHostedStore(dbClient.DB())
	}
	dual, err := orders.NewDual(primary, fallback, cfg.App.IsDev(), logg, orderMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to assemble order store", err)
		os.Exit(1)
	}

	mailer := notifications.NewMailer(cfg.Email, logg, orderMetrics)

	orderService, err := orders.NewService(dual, mailer, logg, orderMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	responder := chat.NewResponder(context.Background(), cfg.Gemini, logg)

	readyChecks := map[string]controllers.Pinger{}
	if dbClient != nil {
		readyChecks["postgres"] = dbClient
	}
	if redisClient != nil {
		readyChecks["redis"] = redisClient
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:       cfg,
			Logger:       logg,
			OrderService: orderService,
			Mailer:       mailer,
			Chat:         responder,
			RateLimiter:  rateLimiter,
			Registry:     registry,
			ReadyChecks:  readyChecks,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
