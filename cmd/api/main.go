package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain/warehouse"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/cache"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/legacy"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/location"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/postgres"
	httpRouter "github.com/warehousing/fulfilment-api/internal/interfaces/http"
	"github.com/warehousing/fulfilment-api/pkg/config"
	"github.com/warehousing/fulfilment-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("database migrations")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis cache is optional; without an address reads go straight to the database.
	var cacheClient cache.Client = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, caching disabled")
		} else {
			cacheClient = redisClient
		}
	}

	// Legacy store-manager sync is optional; without a base URL it is skipped.
	var legacyGateway usecase.LegacyStoreGateway
	if cfg.Legacy.BaseURL != "" {
		legacyGateway = legacy.NewStoreGateway(cfg.Legacy.BaseURL, time.Duration(cfg.Legacy.TimeoutSeconds)*time.Second)
	}

	locations := location.NewResolver()
	validator := warehouse.NewValidator(locations)

	warehouseUC := usecase.NewWarehouseUseCase(
		warehouseRepo, txRunner, validator,
		cacheClient, time.Duration(cfg.Redis.TTL)*time.Second,
	)
	storeUC := usecase.NewStoreUseCase(storeRepo, legacyGateway, log)
	productUC := usecase.NewProductUseCase(productRepo)
	fulfilmentUC := fulfilment.NewUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fulfilment API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:  warehouseUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
		FulfilmentUC: fulfilmentUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
