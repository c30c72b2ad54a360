package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"go.uber.org/zap"

	"github.com/pawsfam/pawhaven/internal/pkg/config"
	"github.com/pawsfam/pawhaven/internal/pkg/database"
	"github.com/pawsfam/pawhaven/internal/pkg/gazetteer"
	"github.com/pawsfam/pawhaven/internal/pkg/health"
	"github.com/pawsfam/pawhaven/internal/pkg/logger"
	"github.com/pawsfam/pawhaven/internal/pkg/metrics"
	"github.com/pawsfam/pawhaven/internal/pkg/middleware"
	natspkg "github.com/pawsfam/pawhaven/internal/pkg/nats"
	nrpkg "github.com/pawsfam/pawhaven/internal/pkg/newrelic"
	"github.com/pawsfam/pawhaven/internal/pkg/server"
	"github.com/pawsfam/pawhaven/internal/pkg/validator"
	"github.com/pawsfam/pawhaven/services/shipping/gateway"
	"github.com/pawsfam/pawhaven/services/shipping/handler"
	"github.com/pawsfam/pawhaven/services/shipping/repository"
	"github.com/pawsfam/pawhaven/services/shipping/usecase"
)

func main() {
	appName := "shipping-service"
	configPath := "config/shipping.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	gaz, err := gazetteer.NewBuiltin(configs.Shipping.GeohashPrecision)
	if err != nil {
		zapLogger.Fatal("Failed to build gazetteer", zap.Error(err))
	}

	appMetrics := metrics.New(metrics.DefaultConfig(appName))

	// Initialize repository, gateway and usecase
	shippingRepo := repository.NewShippingRepository(postgresClient.GetDB(), redisClient)
	shippingGW := gateway.NewShippingGW(natsClient, appMetrics)
	shippingUC := usecase.NewShippingUC(configs.Shipping, shippingRepo, shippingGW, gaz, appMetrics)

	// Initialize handlers
	h := handler.NewHandler(shippingUC, natsClient, appMetrics)
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(echomiddleware.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.MetricsMiddleware(appMetrics))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	e.GET("/metrics", middleware.MetricsEndpoint(appMetrics))

	// Register service routes
	routes := handler.RouteConfig{
		AdminAuth: middleware.AdminAuthMiddleware(configs.JWT),
		APIKeys:   middleware.ServiceAPIKeys(configs.APIKey),
	}
	if configs.Shipping.RateLimit > 0 {
		routes.RateLimiter = middleware.IPRateLimiter(configs.Shipping.RateLimit, configs.Shipping.RateLimitWindow, redisClient.GetClient())
	}
	h.RegisterRoutes(e, routes)

	// Start server; components close in reverse order after the listener stops
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(5 * time.Second)
		}
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		return postgresClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		h.StopNATSConsumers()
		return nil
	})

	err = srv.Start()
	if err != nil {
		zapLogger.Error("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
	// The logger outlives every shutdown hook
	_ = zapLogger.Close()
	if err != nil {
		os.Exit(1)
	}
}
